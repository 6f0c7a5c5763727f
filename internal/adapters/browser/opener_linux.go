//go:build linux

package browser

import "os/exec"

var defaultOpeners = []string{
	"xdg-open",
	"wslview",
	"sensible-browser",
	"firefox",
}

func findPlatformBrowser(target string) (string, []string) {
	for _, opener := range defaultOpeners {
		if _, err := exec.LookPath(opener); err == nil {
			return opener, []string{target}
		}
	}
	return "", nil
}
