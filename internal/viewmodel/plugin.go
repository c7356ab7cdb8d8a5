// Package viewmodel exposes launcher plugin settings as observable view state
// for a settings editor.
//
// A Plugin never owns the record it wraps: writes go straight through to the
// record and every derived property is recomputed on read. The only cached
// state is the list of additional option view models, which is built once and
// never rebuilt, so the record's AdditionalOptions slice must not change
// length or be reassigned after the Plugin is created.
package viewmodel

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/wizzomafizzo/launchersettings/internal/constants"
	"github.com/wizzomafizzo/launchersettings/internal/notify"
	"github.com/wizzomafizzo/launchersettings/internal/settings"
)

const (
	enabledOpacity  = 1.0
	disabledOpacity = 0.5
)

// notAllowedKeywords are action keywords the launcher reserves.
var notAllowedKeywords = []string{"~", `\`, `\\`}

// Option configures a Plugin.
type Option func(*Plugin)

// WithLogger traces property writes to logger at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Plugin) {
		p.logger = logger
	}
}

// WithWorkingDir overrides how the process working directory is resolved
// when building IconPath.
func WithWorkingDir(workDir func() (string, error)) Option {
	return func(p *Plugin) {
		if workDir != nil {
			p.workDir = workDir
		}
	}
}

// Plugin is the view model for one plugin row in the settings editor.
type Plugin struct {
	settings *settings.PluginSettings
	isDark   func() bool
	workDir  func() (string, error)
	notifier *notify.Notifier
	logger   zerolog.Logger

	additionalOptions      []*AdditionalOption
	additionalOptionsBuilt bool
}

// NewPlugin creates a view model over s. isDark is queried on every IconPath
// read; a nil isDark always selects the light icon.
func NewPlugin(s *settings.PluginSettings, isDark func() bool, opts ...Option) (*Plugin, error) {
	if s == nil {
		return nil, &ConstructionError{Param: "settings", Message: "PluginSettings object is nil"}
	}

	if isDark == nil {
		isDark = func() bool { return false }
	}

	p := &Plugin{
		settings: s,
		isDark:   isDark,
		workDir:  os.Getwd,
		logger:   zerolog.Nop(),
	}
	p.notifier = notify.New(p)

	for _, opt := range opts {
		opt(p)
	}

	for _, option := range p.AdditionalOptions() {
		option.Subscribe(func(notify.Change) {
			p.notifier.Emit(PropAdditionalOptions)
		})
	}

	return p, nil
}

// Subscribe registers a listener for changes to any property.
func (p *Plugin) Subscribe(listener notify.Listener) *notify.Subscription {
	return p.notifier.Subscribe(listener)
}

// SubscribeProperty registers a listener for changes to one property.
func (p *Plugin) SubscribeProperty(property string, listener notify.Listener) *notify.Subscription {
	return p.notifier.SubscribeProperty(property, listener)
}

func (p *Plugin) ID() string          { return p.settings.ID }
func (p *Plugin) Name() string        { return p.settings.Name }
func (p *Plugin) Description() string { return p.settings.Description }
func (p *Plugin) Author() string      { return p.settings.Author }

func (p *Plugin) Disabled() bool {
	return p.settings.Disabled
}

func (p *Plugin) SetDisabled(value bool) {
	if p.settings.Disabled == value {
		return
	}

	p.settings.Disabled = value
	p.changed(PropDisabled, value,
		PropShowNotAccessibleWarning,
		PropShowNotAllowedKeywordWarning,
		PropEnabled,
		PropDisabledOpacity,
		PropIsGlobalAndEnabled,
	)
}

// Enabled is the inverse of Disabled.
func (p *Plugin) Enabled() bool {
	return !p.Disabled()
}

// SetEnabled writes Disabled.
func (p *Plugin) SetEnabled(value bool) {
	p.SetDisabled(!value)
}

// DisabledOpacity is the row opacity hint for the UI.
func (p *Plugin) DisabledOpacity() float64 {
	if p.Disabled() {
		return disabledOpacity
	}
	return enabledOpacity
}

func (p *Plugin) IsGlobal() bool {
	return p.settings.IsGlobal
}

func (p *Plugin) SetIsGlobal(value bool) {
	if p.settings.IsGlobal == value {
		return
	}

	p.settings.IsGlobal = value
	p.changed(PropIsGlobal, value,
		PropShowNotAccessibleWarning,
		PropIsGlobalAndEnabled,
	)
}

func (p *Plugin) IsGlobalAndEnabled() bool {
	return p.IsGlobal() && p.Enabled()
}

func (p *Plugin) WeightBoost() int {
	return p.settings.WeightBoost
}

func (p *Plugin) SetWeightBoost(value int) {
	if p.settings.WeightBoost == value {
		return
	}

	p.settings.WeightBoost = value
	p.changed(PropWeightBoost, value,
		PropShowNotAccessibleWarning,
		PropShowNotAllowedKeywordWarning,
	)
}

func (p *Plugin) ActionKeyword() string {
	return p.settings.ActionKeyword
}

func (p *Plugin) SetActionKeyword(value string) {
	if p.settings.ActionKeyword == value {
		return
	}

	p.settings.ActionKeyword = value
	p.changed(PropActionKeyword, value,
		PropShowNotAccessibleWarning,
		PropShowNotAllowedKeywordWarning,
	)
}

// AdditionalOptions returns the option view models, building them on first use.
// The list is never rebuilt.
func (p *Plugin) AdditionalOptions() []*AdditionalOption {
	if !p.additionalOptionsBuilt {
		options := make([]*AdditionalOption, 0, len(p.settings.AdditionalOptions))
		for i := range p.settings.AdditionalOptions {
			// Cannot fail: the element address is never nil.
			option, _ := NewAdditionalOption(&p.settings.AdditionalOptions[i])
			options = append(options, option)
		}
		p.additionalOptions = options
		p.additionalOptionsBuilt = true
	}

	return p.additionalOptions
}

// AdditionalOption returns the option view model with the given key, or nil.
func (p *Plugin) AdditionalOption(key string) *AdditionalOption {
	for _, option := range p.AdditionalOptions() {
		if option.Key() == key {
			return option
		}
	}
	return nil
}

func (p *Plugin) ShowAdditionalOptions() bool {
	return len(p.AdditionalOptions()) > 0
}

// IconPath returns the theme-appropriate icon under the plugins directory.
// The file is not checked for existence.
func (p *Plugin) IconPath() string {
	icon := p.settings.IconPathLight
	if p.isDark() {
		icon = p.settings.IconPathDark
	}

	root, err := p.workDir()
	if err != nil {
		p.logger.Debug().Err(err).Str("plugin", p.ID()).Msg("working directory unavailable for icon path")
		root = ""
	}

	return filepath.Join(root, normalizeSeparators(constants.PluginsDir), normalizeSeparators(icon))
}

// ShowNotAccessibleWarning is true when an enabled plugin can never be
// reached: it is not global and has no action keyword.
func (p *Plugin) ShowNotAccessibleWarning() bool {
	return p.Enabled() && !p.IsGlobal() && strings.TrimSpace(p.ActionKeyword()) == ""
}

// ShowNotAllowedKeywordWarning is true when an enabled plugin uses a reserved keyword.
func (p *Plugin) ShowNotAllowedKeywordWarning() bool {
	return p.Enabled() && slices.Contains(notAllowedKeywords, p.ActionKeyword())
}

func (p *Plugin) String() string {
	return p.Name() + ". " + p.Description()
}

// changed logs a write and emits property followed by its dependents.
func (p *Plugin) changed(property string, value any, dependents ...string) {
	p.logger.Debug().
		Str("plugin", p.ID()).
		Str("property", property).
		Interface("value", value).
		Msg("plugin property changed")

	p.notifier.Emit(property)
	p.notifier.Emit(dependents...)
}

// normalizeSeparators converts both slash styles to the host separator.
func normalizeSeparators(path string) string {
	return filepath.FromSlash(strings.ReplaceAll(path, `\`, "/"))
}
