// Package theme decides whether the settings editor renders in dark mode.
package theme

import (
	"context"
	"fmt"
	"strings"

	"github.com/wizzomafizzo/launchersettings/internal/logging"
)

// Mode selects how the theme is resolved.
type Mode string

const (
	// ModeSystem defers to the stored editor preference.
	ModeSystem Mode = "system"
	// ModeLight always selects the light theme.
	ModeLight Mode = "light"
	// ModeDark always selects the dark theme.
	ModeDark Mode = "dark"
)

// ParseMode parses a mode name. An empty name is ModeSystem.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case "", ModeSystem:
		return ModeSystem, nil
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	default:
		return "", fmt.Errorf("invalid theme %q: must be one of: system, light, dark", name)
	}
}

// PreferenceSource reports the stored dark theme preference.
type PreferenceSource interface {
	GetDarkTheme(ctx context.Context) (bool, error)
}

// Resolver answers the dark theme question for view models.
type Resolver struct {
	ctx    context.Context //nolint:containedctx // predicate signature takes no context
	source PreferenceSource
	mode   Mode
}

// New creates a resolver. source may be nil, in which case ModeSystem
// resolves to light.
func New(ctx context.Context, mode Mode, source PreferenceSource) *Resolver {
	return &Resolver{ctx: ctx, mode: mode, source: source}
}

// Mode returns the configured mode.
func (r *Resolver) Mode() Mode {
	return r.mode
}

// IsDark reports whether the dark theme is active. It is evaluated on every
// call; errors reading the stored preference fall back to light.
func (r *Resolver) IsDark() bool {
	switch r.mode {
	case ModeDark:
		return true
	case ModeLight:
		return false
	case ModeSystem:
	}

	if r.source == nil {
		return false
	}

	dark, err := r.source.GetDarkTheme(r.ctx)
	if err != nil {
		logging.Get(r.ctx).Warn().Err(err).Msg("failed to read theme preference, using light theme")
		return false
	}
	return dark
}
