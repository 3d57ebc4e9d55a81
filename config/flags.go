package config

import (
	"flag"
	"fmt"
)

// Flags are the command line options of the game binary
type Flags struct {
	Lang        string // skip the language selection modal when set
	FontPath    string // optional TTF with Japanese glyphs
	ContentPath string // optional external content YAML
	Watch       bool   // reload ContentPath when it changes
	SiteURL     string
	Width       int
	Height      int
	Debug       bool
}

// ParseFlags parses args (without the program name) into Flags.
func ParseFlags(args []string) (Flags, error) {
	var f Flags
	fs := flag.NewFlagSet(App.Name, flag.ContinueOnError)
	fs.StringVar(&f.Lang, "lang", "", "Start language (en or jp); skips the selection modal")
	fs.StringVar(&f.FontPath, "font", "", "TrueType font file used for Japanese glyphs instead of the bundled M+ 1p")
	fs.StringVar(&f.ContentPath, "content", "", "External content YAML replacing the embedded one")
	fs.BoolVar(&f.Watch, "watch", false, "Reload -content when the file changes")
	fs.StringVar(&f.SiteURL, "site", App.SiteURL, "Base URL for portfolio downloads")
	fs.IntVar(&f.Width, "width", Screen.DefaultWidth, "Initial window width")
	fs.IntVar(&f.Height, "height", Screen.DefaultHeight, "Initial window height")
	fs.BoolVar(&f.Debug, "debug", false, "Outline collision boxes and button hit areas")
	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}

	if f.Lang != "" {
		if _, err := ParseLanguage(f.Lang); err != nil {
			return Flags{}, err
		}
	}
	if f.Watch && f.ContentPath == "" {
		return Flags{}, fmt.Errorf("-watch requires -content")
	}
	if f.Width <= 0 || f.Height <= 0 {
		return Flags{}, fmt.Errorf("invalid window size %dx%d", f.Width, f.Height)
	}
	return f, nil
}
