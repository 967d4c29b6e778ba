// Package paths resolves the default locations of worklog's files.
package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDir = "worklog"

// Config returns the default configuration file path under the user
// configuration directory ($XDG_CONFIG_HOME on Unix).
func Config() string {
	return filepath.Join(xdg.ConfigHome, appDir, "config.yaml")
}

// Database returns the default database path under the user data
// directory ($XDG_DATA_HOME on Unix, %LOCALAPPDATA% on Windows).
func Database() string {
	return filepath.Join(xdg.DataHome, appDir, "db.sqlite3")
}
