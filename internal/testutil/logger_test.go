package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wizzomafizzo/launchersettings/internal/logging"
)

func TestNewTestContext_CapturesOutput(t *testing.T) {
	t.Parallel()

	ctx, getLogOutput := NewTestContext(t)

	logging.Get(ctx).Debug().Str("plugin", "calc").Msg("captured")

	assert.Contains(t, getLogOutput(), "captured")
	assert.Contains(t, getLogOutput(), `"plugin":"calc"`)
}
