package fonts

import (
	"testing"
	"unicode"

	"github.com/automoto/folio/content"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// feedRunes collects every distinct rune shown by the embedded content.
func feedRunes(feed *content.Feed) map[rune]string {
	runes := map[rune]string{}
	add := func(where, s string) {
		for _, r := range s {
			if unicode.IsSpace(r) {
				continue
			}
			if _, ok := runes[r]; !ok {
				runes[r] = where
			}
		}
	}
	for lang, locale := range feed.Locales {
		for k, s := range locale.Strings {
			add(string(lang)+"/strings/"+k, s)
		}
		for topic, s := range locale.Labels {
			add(string(lang)+"/labels/"+string(topic), s)
		}
		for topic, sec := range locale.Sections {
			where := string(lang) + "/sections/" + string(topic)
			add(where, sec.Title)
			for _, line := range sec.Lines {
				add(where, line)
			}
		}
	}
	return runes
}

func TestEveryContentRuneHasGlyph(t *testing.T) {
	fallback, err := truetype.Parse(JapaneseTTF)
	if err != nil {
		t.Fatalf("parse fallback: %v", err)
	}
	runes := feedRunes(content.Default())
	if len(runes) == 0 {
		t.Fatal("embedded content has no text")
	}

	tests := []struct {
		name string
		ttf  []byte
	}{
		{"regular", goregular.TTF},
		{"bold", gobold.TTF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary, err := truetype.Parse(tt.ttf)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			for r, where := range runes {
				if primary.Index(r) == 0 && fallback.Index(r) == 0 {
					t.Errorf("%q (U+%04X) from %s has no glyph", r, r, where)
				}
			}
		})
	}
}

func TestJapaneseComesFromFallback(t *testing.T) {
	primary, err := truetype.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	fallback, err := truetype.Parse(JapaneseTTF)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range "自己紹介ジャンプ" {
		if primary.Index(r) != 0 {
			t.Fatalf("%q unexpectedly in the Go font", r)
		}
		if fallback.Index(r) == 0 {
			t.Fatalf("%q missing from the fallback", r)
		}
	}
}

func TestMissingRuneIsReportedAbsent(t *testing.T) {
	if err := LoadFontWithSize(Body, goregular.TTF, 16); err != nil {
		t.Fatal(err)
	}
	face := Body.Get()
	if _, ok := face.GlyphAdvance('A'); !ok {
		t.Fatal("'A' reported missing")
	}
	if _, ok := face.GlyphAdvance('自'); ok {
		t.Fatal("'自' reported present in the Go font")
	}
}

func TestLoadDefaultsMeasuresJapanese(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	fb, err := truetype.Parse(JapaneseTTF)
	if err != nil {
		t.Fatal(err)
	}
	want := text.Advance("自己紹介", text.NewGoXFace(truetype.NewFace(fb, &truetype.Options{Size: 16})))
	got := FaceMeasurer{}.Measure("自己紹介", Trigger16)
	if want <= 0 || got != want {
		t.Fatalf("Measure = %v, want the fallback advance %v", got, want)
	}
}
