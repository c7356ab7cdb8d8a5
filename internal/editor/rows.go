package editor

import (
	"context"

	"github.com/wizzomafizzo/launchersettings/internal/logging"
	"github.com/wizzomafizzo/launchersettings/internal/settings"
	"github.com/wizzomafizzo/launchersettings/internal/viewmodel"
)

// BuildRows creates one view model per record. Records that cannot be
// wrapped are logged and left out so they are never displayed.
func BuildRows(
	ctx context.Context, records []*settings.PluginSettings, isDark func() bool, opts ...viewmodel.Option,
) []*viewmodel.Plugin {
	logger := logging.Get(ctx)

	rows := make([]*viewmodel.Plugin, 0, len(records))
	for i, record := range records {
		row, err := viewmodel.NewPlugin(record, isDark, opts...)
		if err != nil {
			logger.Warn().Err(err).Int("index", i).Msg("skipping plugin row")
			continue
		}
		rows = append(rows, row)
	}

	return rows
}
