package browser

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"

	"github.com/ghscout/ghscout/internal/logging"
)

// Opener implements ports.URLOpener
type Opener struct {
	browser string // from --browser, takes precedence over the environment
}

// NewOpener creates a new browser opener. browser may be empty.
func NewOpener(browser string) *Opener {
	return &Opener{browser: browser}
}

// Open opens target in a browser.
// Priority: --browser → $GHSCOUT_BROWSER → $BROWSER → platform default
func (o *Opener) Open(target string) error {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("refusing to open %q: not a web address", target)
	}

	name, args := findBrowser(target, o.browser)
	if name == "" {
		return fmt.Errorf("no browser found. Set --browser, $GHSCOUT_BROWSER or $BROWSER")
	}

	logging.Logger.Info("Opening browser", "browser", name, "url", target)

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Browser exited with error", "error", err, "browser", name)
		}
	}()

	return nil
}

func findBrowser(target string, cliBrowser string) (string, []string) {
	if cliBrowser != "" {
		return cliBrowser, []string{target}
	}

	if browser := os.Getenv("GHSCOUT_BROWSER"); browser != "" {
		return browser, []string{target}
	}

	// $BROWSER may hold a colon separated list; take the first entry
	if browser := os.Getenv("BROWSER"); browser != "" {
		return strings.Split(browser, ":")[0], []string{target}
	}

	return findPlatformBrowser(target)
}
