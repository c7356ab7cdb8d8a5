package viewmodel

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/launchersettings/internal/notify"
	"github.com/wizzomafizzo/launchersettings/internal/settings"
)

const testWorkDir = "/opt/launcher"

func fixedWorkDir() (string, error) { return testWorkDir, nil }

func newTestPlugin(t *testing.T, s *settings.PluginSettings, isDark func() bool) *Plugin {
	t.Helper()

	p, err := NewPlugin(s, isDark, WithWorkingDir(fixedWorkDir))
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

// recordChanges collects the property names raised by p.
func recordChanges(p *Plugin) *[]string {
	var names []string
	p.Subscribe(func(c notify.Change) {
		names = append(names, c.Property)
	})
	return &names
}

func TestNewPlugin_NilSettings(t *testing.T) {
	t.Parallel()

	p, err := NewPlugin(nil, func() bool { return false })

	require.Error(t, err)
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	var constructionErr *ConstructionError
	require.ErrorAs(t, err, &constructionErr)
	assert.Equal(t, "settings", constructionErr.Param)
}

func TestPlugin_PassThroughProperties(t *testing.T) {
	t.Parallel()

	p := newTestPlugin(t, &settings.PluginSettings{
		ID:          "id-1",
		Name:        "Calculator",
		Description: "Does maths",
		Author:      "Microsoft",
		WeightBoost: 3,
	}, nil)

	assert.Equal(t, "id-1", p.ID())
	assert.Equal(t, "Calculator", p.Name())
	assert.Equal(t, "Does maths", p.Description())
	assert.Equal(t, "Microsoft", p.Author())
	assert.Equal(t, 3, p.WeightBoost())
	assert.Equal(t, "Calculator. Does maths", p.String())
}

func TestPlugin_EnabledAndGlobalCombinations(t *testing.T) {
	t.Parallel()

	for _, disabled := range []bool{false, true} {
		for _, isGlobal := range []bool{false, true} {
			t.Run(fmt.Sprintf("disabled=%v/global=%v", disabled, isGlobal), func(t *testing.T) {
				t.Parallel()

				p := newTestPlugin(t, &settings.PluginSettings{Disabled: disabled, IsGlobal: isGlobal}, nil)

				assert.Equal(t, !disabled, p.Enabled())
				assert.Equal(t, isGlobal && !disabled, p.IsGlobalAndEnabled())
			})
		}
	}
}

func TestPlugin_ShowNotAccessibleWarning(t *testing.T) {
	t.Parallel()

	keywords := []string{"", " ", "\t\n", "=", "~", "calc"}

	for _, disabled := range []bool{false, true} {
		for _, isGlobal := range []bool{false, true} {
			for _, keyword := range keywords {
				name := fmt.Sprintf("disabled=%v/global=%v/keyword=%q", disabled, isGlobal, keyword)
				t.Run(name, func(t *testing.T) {
					t.Parallel()

					p := newTestPlugin(t, &settings.PluginSettings{
						Disabled:      disabled,
						IsGlobal:      isGlobal,
						ActionKeyword: keyword,
					}, nil)

					want := !disabled && !isGlobal && strings.TrimSpace(keyword) == ""
					assert.Equal(t, want, p.ShowNotAccessibleWarning())
				})
			}
		}
	}
}

func TestPlugin_ShowNotAllowedKeywordWarning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		keyword string
		blocked bool
	}{
		{keyword: "~", blocked: true},
		{keyword: `\`, blocked: true},
		{keyword: `\\`, blocked: true},
		{keyword: `\\\`, blocked: false},
		{keyword: " ~", blocked: false},
		{keyword: "", blocked: false},
		{keyword: "=", blocked: false},
		{keyword: "//", blocked: false},
	}

	for _, tt := range tests {
		for _, disabled := range []bool{false, true} {
			t.Run(fmt.Sprintf("keyword=%q/disabled=%v", tt.keyword, disabled), func(t *testing.T) {
				t.Parallel()

				p := newTestPlugin(t, &settings.PluginSettings{
					Disabled:      disabled,
					ActionKeyword: tt.keyword,
				}, nil)

				assert.Equal(t, !disabled && tt.blocked, p.ShowNotAllowedKeywordWarning())
			})
		}
	}
}

func TestPlugin_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("enabled local plugin without keyword is not accessible", func(t *testing.T) {
		t.Parallel()

		p := newTestPlugin(t, &settings.PluginSettings{}, nil)

		assert.True(t, p.ShowNotAccessibleWarning())
		assert.False(t, p.ShowNotAllowedKeywordWarning())
	})

	t.Run("tilde keyword is not allowed", func(t *testing.T) {
		t.Parallel()

		p := newTestPlugin(t, &settings.PluginSettings{ActionKeyword: "~"}, nil)

		assert.True(t, p.ShowNotAllowedKeywordWarning())
	})

	t.Run("disabled plugin suppresses warnings", func(t *testing.T) {
		t.Parallel()

		p := newTestPlugin(t, &settings.PluginSettings{Disabled: true, ActionKeyword: "~"}, nil)

		assert.False(t, p.ShowNotAccessibleWarning())
		assert.False(t, p.ShowNotAllowedKeywordWarning())
		assert.InDelta(t, 0.5, p.DisabledOpacity(), 0)
	})

	t.Run("enabled plugin is fully opaque", func(t *testing.T) {
		t.Parallel()

		p := newTestPlugin(t, &settings.PluginSettings{}, nil)

		assert.InDelta(t, 1.0, p.DisabledOpacity(), 0)
	})
}

func TestPlugin_SettersNotify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		set  func(p *Plugin)
		name string
		want []string
	}{
		{
			name: "Disabled",
			set:  func(p *Plugin) { p.SetDisabled(true) },
			want: []string{
				PropDisabled,
				PropShowNotAccessibleWarning,
				PropShowNotAllowedKeywordWarning,
				PropEnabled,
				PropDisabledOpacity,
				PropIsGlobalAndEnabled,
			},
		},
		{
			name: "Enabled writes Disabled",
			set:  func(p *Plugin) { p.SetEnabled(false) },
			want: []string{
				PropDisabled,
				PropShowNotAccessibleWarning,
				PropShowNotAllowedKeywordWarning,
				PropEnabled,
				PropDisabledOpacity,
				PropIsGlobalAndEnabled,
			},
		},
		{
			name: "IsGlobal",
			set:  func(p *Plugin) { p.SetIsGlobal(true) },
			want: []string{PropIsGlobal, PropShowNotAccessibleWarning, PropIsGlobalAndEnabled},
		},
		{
			name: "WeightBoost",
			set:  func(p *Plugin) { p.SetWeightBoost(10) },
			want: []string{PropWeightBoost, PropShowNotAccessibleWarning, PropShowNotAllowedKeywordWarning},
		},
		{
			name: "ActionKeyword",
			set:  func(p *Plugin) { p.SetActionKeyword("calc") },
			want: []string{PropActionKeyword, PropShowNotAccessibleWarning, PropShowNotAllowedKeywordWarning},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := newTestPlugin(t, &settings.PluginSettings{}, nil)
			got := recordChanges(p)

			tt.set(p)

			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestPlugin_SettersIgnoreSameValue(t *testing.T) {
	t.Parallel()

	s := &settings.PluginSettings{
		Disabled:      true,
		IsGlobal:      true,
		WeightBoost:   7,
		ActionKeyword: "=",
	}
	p := newTestPlugin(t, s, nil)
	got := recordChanges(p)

	p.SetDisabled(true)
	p.SetEnabled(false)
	p.SetIsGlobal(true)
	p.SetWeightBoost(7)
	p.SetActionKeyword("=")

	assert.Empty(t, *got)
}

func TestPlugin_SettersWriteThrough(t *testing.T) {
	t.Parallel()

	s := &settings.PluginSettings{}
	p := newTestPlugin(t, s, nil)

	p.SetDisabled(true)
	p.SetIsGlobal(true)
	p.SetWeightBoost(-2)
	p.SetActionKeyword("~")

	assert.True(t, s.Disabled)
	assert.True(t, s.IsGlobal)
	assert.Equal(t, -2, s.WeightBoost)
	assert.Equal(t, "~", s.ActionKeyword)
}

func TestPlugin_ReadsCurrentRecordState(t *testing.T) {
	t.Parallel()

	s := &settings.PluginSettings{}
	p := newTestPlugin(t, s, nil)
	require.True(t, p.ShowNotAccessibleWarning())

	// Changes made behind the view model's back are visible on the next read.
	s.ActionKeyword = "calc"

	assert.False(t, p.ShowNotAccessibleWarning())
}

func TestPlugin_ListenerSeesNewValue(t *testing.T) {
	t.Parallel()

	p := newTestPlugin(t, &settings.PluginSettings{}, nil)

	var seen []bool
	p.SubscribeProperty(PropShowNotAccessibleWarning, func(c notify.Change) {
		seen = append(seen, c.Source.(*Plugin).ShowNotAccessibleWarning())
	})

	p.SetIsGlobal(true)
	p.SetIsGlobal(false)

	assert.Equal(t, []bool{false, true}, seen)
}

func TestPlugin_AdditionalOptions(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		p := newTestPlugin(t, &settings.PluginSettings{}, nil)

		assert.Empty(t, p.AdditionalOptions())
		assert.False(t, p.ShowAdditionalOptions())
		assert.False(t, p.ShowAdditionalOptions())
	})

	t.Run("non-empty", func(t *testing.T) {
		t.Parallel()

		p := newTestPlugin(t, &settings.PluginSettings{
			AdditionalOptions: []settings.AdditionalOption{{Key: "a"}, {Key: "b"}},
		}, nil)

		assert.True(t, p.ShowAdditionalOptions())
		assert.True(t, p.ShowAdditionalOptions())
		require.Len(t, p.AdditionalOptions(), 2)
		assert.Equal(t, "b", p.AdditionalOption("b").Key())
		assert.Nil(t, p.AdditionalOption("missing"))
	})

	t.Run("built once", func(t *testing.T) {
		t.Parallel()

		s := &settings.PluginSettings{AdditionalOptions: []settings.AdditionalOption{{Key: "a"}}}
		p := newTestPlugin(t, s, nil)

		first := p.AdditionalOptions()
		s.AdditionalOptions = append(s.AdditionalOptions, settings.AdditionalOption{Key: "late"})

		second := p.AdditionalOptions()
		require.Len(t, second, 1)
		assert.Same(t, first[0], second[0])
	})
}

func TestPlugin_ChildChangeBubbles(t *testing.T) {
	t.Parallel()

	s := &settings.PluginSettings{
		AdditionalOptions: []settings.AdditionalOption{
			{Key: "a"},
			{Key: "b", PluginOptionType: settings.OptionTextbox},
		},
	}
	p := newTestPlugin(t, s, nil)
	got := recordChanges(p)

	p.AdditionalOption("a").SetValue(true)
	p.AdditionalOption("a").SetValue(true)
	p.AdditionalOption("b").SetTextValue("x")

	assert.Equal(t, []string{PropAdditionalOptions, PropAdditionalOptions}, *got)
	assert.True(t, s.AdditionalOptions[0].Value)
	assert.Equal(t, "x", s.AdditionalOptions[1].TextValue)
}

func TestPlugin_IconPath(t *testing.T) {
	t.Parallel()

	s := &settings.PluginSettings{
		IconPathDark:  `Images\calculator.dark.png`,
		IconPathLight: `Images\calculator.light.png`,
	}

	dark := newTestPlugin(t, s, func() bool { return true })
	light := newTestPlugin(t, s, func() bool { return false })

	pluginsDir := filepath.Join(testWorkDir, "modules", "launcher", "Plugins")
	assert.Equal(t, filepath.Join(pluginsDir, "Images", "calculator.dark.png"), dark.IconPath())
	assert.Equal(t, filepath.Join(pluginsDir, "Images", "calculator.light.png"), light.IconPath())
}

func TestPlugin_IconPathQueriesThemeEveryRead(t *testing.T) {
	t.Parallel()

	darkMode := false
	calls := 0
	p := newTestPlugin(t, &settings.PluginSettings{IconPathDark: "d.png", IconPathLight: "l.png"}, func() bool {
		calls++
		return darkMode
	})

	assert.Equal(t, "l.png", filepath.Base(p.IconPath()))
	darkMode = true
	assert.Equal(t, "d.png", filepath.Base(p.IconPath()))
	assert.Equal(t, 2, calls)
}

func TestPlugin_IconPathNilThemeUsesLight(t *testing.T) {
	t.Parallel()

	p := newTestPlugin(t, &settings.PluginSettings{IconPathDark: "d.png", IconPathLight: "l.png"}, nil)

	assert.Equal(t, "l.png", filepath.Base(p.IconPath()))
}

func TestPlugin_IconPathWorkingDirError(t *testing.T) {
	t.Parallel()

	var logOutput strings.Builder
	p, err := NewPlugin(&settings.PluginSettings{ID: "x", IconPathLight: "l.png"}, nil,
		WithWorkingDir(func() (string, error) { return "", errors.New("gone") }),
		WithLogger(zerolog.New(&logOutput).Level(zerolog.DebugLevel)),
	)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("modules", "launcher", "Plugins", "l.png"), p.IconPath())
	assert.Contains(t, logOutput.String(), "working directory unavailable")
}

func TestPlugin_WithLoggerTracesWrites(t *testing.T) {
	t.Parallel()

	var logOutput strings.Builder
	p, err := NewPlugin(&settings.PluginSettings{ID: "calc"}, nil,
		WithLogger(zerolog.New(&logOutput).Level(zerolog.DebugLevel)))
	require.NoError(t, err)

	p.SetActionKeyword("=")

	assert.Contains(t, logOutput.String(), `"property":"ActionKeyword"`)
	assert.Contains(t, logOutput.String(), `"plugin":"calc"`)
}
