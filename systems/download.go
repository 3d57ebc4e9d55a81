package systems

import (
	"fmt"
	"log"
	"net/url"

	cfg "github.com/automoto/folio/config"
	"github.com/pkg/browser"
	"github.com/yohamta/donburi/ecs"
)

// openURL opens a link in the system browser; tests replace it.
var openURL = browser.OpenURL

// DownloadURL resolves the portfolio file for lang against the site URL.
func DownloadURL(site string, lang cfg.Language) (string, error) {
	dl, ok := cfg.Downloads[lang]
	if !ok {
		return "", fmt.Errorf("no download for language %q", lang)
	}
	base, err := url.Parse(site)
	if err != nil {
		return "", fmt.Errorf("parse site url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("site url %q is not absolute", site)
	}
	ref, err := url.Parse(dl.Path)
	if err != nil {
		return "", fmt.Errorf("parse download path: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}

// OpenDownload opens the portfolio for the current language. Failures are
// logged; the game carries on.
func OpenDownload(ecs *ecs.ECS) {
	lang := GetOrCreateUIState(ecs).Language
	link, err := DownloadURL(cfg.App.SiteURL, lang)
	if err != nil {
		log.Printf("Warning: Could not build download link: %v", err)
		return
	}
	if err := openURL(link); err != nil {
		log.Printf("Warning: Could not open %s: %v", link, err)
	}
}
