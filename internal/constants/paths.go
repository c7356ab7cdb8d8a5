// Package constants contains file names and path segments shared across launchersettings.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "launchersettings"

	// LogFilename is the default log file name.
	LogFilename = "launchersettings.log"

	// StateFilename is the editor state database file name.
	StateFilename = "state.db"

	// ConfigFilename is the default config file name.
	ConfigFilename = "launchersettings.yml"

	// SettingsFilename is the launcher settings file the editor modifies.
	SettingsFilename = "settings.json"

	// PluginsDir is the plugin install directory relative to the process
	// working directory. The literal is kept with backslash separators and
	// normalized per platform when joined.
	PluginsDir = `modules\launcher\Plugins`
)
