package ui

import (
	"fmt"

	"github.com/ghscout/ghscout/internal/theme"
	"github.com/ghscout/ghscout/internal/version"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// versionInfo holds the global version info set by SetVersionInfo
var versionInfo = VersionInfo{
	Commit:    version.Commit,
	Date:      version.Date,
	GoVersion: version.GoVersion,
	Tagline:   version.Tagline,
	Version:   version.Version,
}

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader renders the app name (plus build info in dev mode), the tagline
// and an optional subtitle such as a dialog title.
func renderHeader(devMode bool, subtitle string) string {
	appNameLine := theme.AppNameStyle.Render("ghscout")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.Date,
			versionInfo.GoVersion))
	}

	result := appNameLine + "\n"
	result += theme.TaglineStyle.Render(versionInfo.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	result += "\n"
	return result
}
