package fonts

import (
	ebitenfonts "github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// JapaneseTTF is the default fallback font.
var JapaneseTTF = ebitenfonts.MPlus1pRegular_ttf

// Measurer reports the rendered width of a label in pixels.
type Measurer interface {
	Measure(label string, name FontName) float64
}

// FaceMeasurer measures with the registered faces.
type FaceMeasurer struct{}

func (FaceMeasurer) Measure(label string, name FontName) float64 {
	return text.Advance(label, name.Face())
}

// LoadDefaults registers every face the game draws with, using the Go fonts
// and M+ 1p for the Japanese glyphs they lack. LoadFallback afterwards
// replaces M+.
func LoadDefaults() error {
	if err := LoadFallback(JapaneseTTF); err != nil {
		return err
	}
	regular := []struct {
		name FontName
		size float64
	}{
		{Body, 16},
		{Heading, 20},
		{Hint, 10},
		{HintSmall, 8},
		{Error, 20},
	}
	bold := []struct {
		name FontName
		size float64
	}{
		{Title, 18},
		{Button, 11},
		{ButtonSmall, 9},
		{Trigger12, 12},
		{Trigger14, 14},
		{Trigger16, 16},
	}
	for _, f := range regular {
		if err := LoadFontWithSize(f.name, goregular.TTF, f.size); err != nil {
			return err
		}
	}
	for _, f := range bold {
		if err := LoadFontWithSize(f.name, gobold.TTF, f.size); err != nil {
			return err
		}
	}
	return nil
}
