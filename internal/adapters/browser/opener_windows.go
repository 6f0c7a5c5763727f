//go:build windows

package browser

func findPlatformBrowser(target string) (string, []string) {
	return "rundll32", []string{"url.dll,FileProtocolHandler", target}
}
