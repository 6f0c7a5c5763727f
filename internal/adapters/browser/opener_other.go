//go:build !linux && !darwin && !windows

package browser

func findPlatformBrowser(target string) (string, []string) {
	return "xdg-open", []string{target}
}
