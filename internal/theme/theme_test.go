package theme

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/launchersettings/internal/testutil"
)

type fakeSource struct {
	err   error
	dark  bool
	calls int
}

func (f *fakeSource) GetDarkTheme(context.Context) (bool, error) {
	f.calls++
	return f.dark, f.err
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "", want: ModeSystem},
		{input: "system", want: ModeSystem},
		{input: "Dark", want: ModeDark},
		{input: " light ", want: ModeLight},
		{input: "sepia", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid theme")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_FixedModesIgnoreSource(t *testing.T) {
	t.Parallel()

	source := &fakeSource{dark: true}

	assert.True(t, New(context.Background(), ModeDark, source).IsDark())
	assert.False(t, New(context.Background(), ModeLight, source).IsDark())
	assert.Equal(t, 0, source.calls)
}

func TestResolver_SystemModeReadsSourceEveryCall(t *testing.T) {
	t.Parallel()

	source := &fakeSource{}
	r := New(context.Background(), ModeSystem, source)

	assert.False(t, r.IsDark())
	source.dark = true
	assert.True(t, r.IsDark())
	assert.Equal(t, 2, source.calls)
	assert.Equal(t, ModeSystem, r.Mode())
}

func TestResolver_SystemModeNilSource(t *testing.T) {
	t.Parallel()

	assert.False(t, New(context.Background(), ModeSystem, nil).IsDark())
}

func TestResolver_SourceErrorFallsBackToLight(t *testing.T) {
	t.Parallel()

	ctx, getLogOutput := testutil.NewTestContext(t)
	r := New(ctx, ModeSystem, &fakeSource{dark: true, err: errors.New("db locked")})

	assert.False(t, r.IsDark())
	assert.True(t, strings.Contains(getLogOutput(), "failed to read theme preference"))
}
