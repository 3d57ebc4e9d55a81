package fonts

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type FontName string

const (
	Body        FontName = "body"
	Title       FontName = "title"
	Heading     FontName = "heading"
	Button      FontName = "button"
	ButtonSmall FontName = "button-small"
	Hint        FontName = "hint"
	HintSmall   FontName = "hint-small"
	Trigger12   FontName = "trigger-12"
	Trigger14   FontName = "trigger-14"
	Trigger16   FontName = "trigger-16"
	Error       FontName = "error"
)

// Get returns the raw font face.
func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns the face wrapped for text/v2 and ebitenui, with the fallback
// font appended when one is loaded.
func (f FontName) Face() text.Face {
	if face, ok := faces[f]; ok {
		return face
	}
	var face text.Face = text.NewGoXFace(getFont(f))
	if fb, ok := fallbacks[f]; ok {
		multi, err := text.NewMultiFace(face, text.NewGoXFace(fb))
		if err == nil {
			face = multi
		}
	}
	faces[f] = face
	return face
}

var (
	fonts     = map[FontName]font.Face{}
	fallbacks = map[FontName]font.Face{}
	faces     = map[FontName]text.Face{}
	sizes     = map[FontName]float64{}
	fallback  *truetype.Font
)

// LoadFontWithSize parses ttf and registers it under name.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = cmapFace{
		Face: truetype.NewFace(fontData, &truetype.Options{Size: size}),
		font: fontData,
	}
	sizes[name] = size
	if fallback != nil {
		fallbacks[name] = truetype.NewFace(fallback, &truetype.Options{Size: size})
	}
	delete(faces, name)
	return nil
}

// LoadFallback registers a font used for glyphs the primary fonts lack,
// typically Japanese. Already loaded fonts pick it up.
func LoadFallback(ttf []byte) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse fallback font: %w", err)
	}
	fallback = fontData
	for name, size := range sizes {
		fallbacks[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
		delete(faces, name)
	}
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

// cmapFace reports runes missing from the font's cmap as absent. A bare
// truetype face answers them with the notdef glyph, which keeps a multi
// face from ever reaching the fallback.
type cmapFace struct {
	font.Face
	font *truetype.Font
}

func (c cmapFace) has(r rune) bool {
	return c.font.Index(r) != 0
}

func (c cmapFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	if !c.has(r) {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	return c.Face.Glyph(dot, r)
}

func (c cmapFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	if !c.has(r) {
		return fixed.Rectangle26_6{}, 0, false
	}
	return c.Face.GlyphBounds(r)
}

func (c cmapFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	if !c.has(r) {
		return 0, false
	}
	return c.Face.GlyphAdvance(r)
}
