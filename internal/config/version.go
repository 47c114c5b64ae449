package config

import (
	"os"
	"runtime/debug"
	"strings"
)

// buildVersion is set at link time: -ldflags "-X marketdash/internal/config.buildVersion=1.4.0"
var buildVersion = ""

// GetVersion returns the dashboard build version shown in the page footer.
// APP_VERSION wins, then the linker value, then the module version, then "dev".
func GetVersion() string {
	if v := strings.TrimSpace(os.Getenv("APP_VERSION")); v != "" {
		return v
	}
	if buildVersion != "" {
		return buildVersion
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}
