package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/launchersettings/internal/settings"
	"github.com/wizzomafizzo/launchersettings/internal/testutil"
)

func TestBuildRows_SkipsUnconstructableRecords(t *testing.T) {
	t.Parallel()

	ctx, getLogOutput := testutil.NewTestContext(t)
	records := []*settings.PluginSettings{
		{ID: "a"},
		nil,
		{ID: "b"},
	}

	rows := BuildRows(ctx, records, nil)

	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].ID())
	assert.Equal(t, "b", rows[1].ID())
	assert.Contains(t, getLogOutput(), "skipping plugin row")
	assert.Contains(t, getLogOutput(), `"index":1`)
}

func TestBuildRows_Empty(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)

	assert.Empty(t, BuildRows(ctx, nil, nil))
}
