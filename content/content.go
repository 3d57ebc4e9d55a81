// Package content holds the bilingual portfolio text: interface strings,
// trigger labels and the dialogue section shown for each topic.
package content

import (
	_ "embed"
	"fmt"
	"os"

	cfg "github.com/automoto/folio/config"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultYAML []byte

// Topic identifies one of the five portfolio sections
type Topic string

const (
	About   Topic = "about"
	Skills  Topic = "skills"
	Improve Topic = "improve"
	BestMe  Topic = "bestme"
	Tidbits Topic = "tidbits"
)

// Topics lists every topic in trigger order
var Topics = []Topic{About, Skills, Improve, BestMe, Tidbits}

// Interface string keys
const (
	Welcome           = "welcome"
	LanguageName      = "language_name"
	Toggle            = "toggle"
	Title             = "title"
	DownloadHeading   = "download_heading"
	DownloadText      = "download_text"
	DownloadButton    = "download_button"
	Close             = "close"
	MoveLeft          = "move_left"
	Jump              = "jump"
	MoveRight         = "move_right"
	Instructions      = "instructions"
	InstructionsShort = "instructions_short"
)

// Section is the dialogue body for one topic
type Section struct {
	Title string   `yaml:"title"`
	Lines []string `yaml:"lines"`
}

// Empty reports whether the section has nothing to show
func (s Section) Empty() bool {
	return s.Title == "" && len(s.Lines) == 0
}

// Locale is everything displayed in one language
type Locale struct {
	Strings  map[string]string `yaml:"strings"`
	Labels   map[Topic]string  `yaml:"labels"`
	Sections map[Topic]Section `yaml:"sections"`
}

// Feed maps each language to its locale. It is read-only once built.
type Feed struct {
	Locales map[cfg.Language]Locale
}

// Parse decodes a content document.
func Parse(data []byte) (*Feed, error) {
	var locales map[cfg.Language]Locale
	if err := yaml.Unmarshal(data, &locales); err != nil {
		return nil, fmt.Errorf("content: unmarshal: %w", err)
	}
	if len(locales) == 0 {
		return nil, fmt.Errorf("content: no locales defined")
	}
	for lang := range locales {
		if !lang.Valid() {
			return nil, fmt.Errorf("content: unsupported language %q", lang)
		}
	}
	return &Feed{Locales: locales}, nil
}

// Load reads and parses a content document from disk.
func Load(path string) (*Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: load %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded feed.
func Default() *Feed {
	f, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return f
}

// Section returns the dialogue section for topic in lang. ok is false when
// the pair has no content; there is no fallback to another language.
func (f *Feed) Section(lang cfg.Language, topic Topic) (Section, bool) {
	if f == nil {
		return Section{}, false
	}
	s, ok := f.Locales[lang].Sections[topic]
	if !ok || s.Empty() {
		return Section{}, false
	}
	return s, true
}

// Label returns the trigger label for topic, falling back to English and
// then to the topic id.
func (f *Feed) Label(lang cfg.Language, topic Topic) string {
	if f != nil {
		if l := f.Locales[lang].Labels[topic]; l != "" {
			return l
		}
		if l := f.Locales[cfg.English].Labels[topic]; l != "" {
			return l
		}
	}
	return string(topic)
}

// String returns an interface string, falling back to English and then to key.
func (f *Feed) String(lang cfg.Language, key string) string {
	if f != nil {
		if s := f.Locales[lang].Strings[key]; s != "" {
			return s
		}
		if s := f.Locales[cfg.English].Strings[key]; s != "" {
			return s
		}
	}
	return key
}
