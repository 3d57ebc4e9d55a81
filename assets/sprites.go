package assets

import (
	"fmt"
	"image"
	"image/color"

	cfg "github.com/automoto/folio/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSize is the side of a player sprite in source pixels. Sprites are
// scaled up with nearest filtering.
const SpriteSize = 16

var palette = map[byte]color.RGBA{
	'h': {R: 59, G: 36, B: 24, A: 255},    // hair
	's': {R: 241, G: 194, B: 160, A: 255}, // skin
	'e': {R: 20, G: 20, B: 30, A: 255},    // eyes
	'm': {R: 196, G: 84, B: 84, A: 255},   // mouth
	'r': {R: 255, G: 111, B: 97, A: 255},  // top
	'b': {R: 52, G: 73, B: 128, A: 255},   // trousers
	'k': {R: 34, G: 34, B: 34, A: 255},    // shoes
}

var head = []string{
	".....hhhhhh.....",
	"....hhhhhhhh....",
	"....hhsssshh....",
	"....hsessesh....",
	"....hssssssh....",
	"....hhssmssh....",
	".....hssssh.....",
}

var playerArt = map[cfg.StateID][]string{
	cfg.Idle: append(append([]string{}, head...),
		"......rrrr......",
		"....rrrrrrrr....",
		"...srrrrrrrrs...",
		"...s.rrrrrr.s...",
		".....bbbbbb.....",
		".....bb..bb.....",
		".....bb..bb.....",
		".....bb..bb.....",
		"....kkk..kkk....",
	),
	cfg.Running: append(append([]string{}, head...),
		"......rrrr......",
		"....rrrrrrrr....",
		"...srrrrrrrr....",
		"....srrrrrrs....",
		".....bbbbbb.....",
		"....bb....bb....",
		"...bb......bb...",
		"..bb........bb..",
		".kk..........kk.",
	),
	cfg.Jump: {
		"s....hhhhhh....s",
		"s...hhhhhhhh...s",
		".s..hhsssshh..s.",
		".s..hsessesh..s.",
		"..s.hssssssh.s..",
		"..s.hhssmssh.s..",
		"...r.hssssh.r...",
		"...rrrrrrrrrr...",
		"....rrrrrrrr....",
		".....rrrrrr.....",
		".....bbbbbb.....",
		"....bb....bb....",
		"....bbb..bbb....",
		".....kk..kk.....",
		"................",
		"................",
	},
}

// PlayerPixels rasterizes the sprite for a player variant.
func PlayerPixels(state cfg.StateID) (*image.RGBA, error) {
	rows, ok := playerArt[state]
	if !ok {
		return nil, fmt.Errorf("no sprite for player state %s", state)
	}
	if len(rows) != SpriteSize {
		return nil, fmt.Errorf("sprite %s has %d rows", state, len(rows))
	}

	img := image.NewRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
	for y, row := range rows {
		if len(row) != SpriteSize {
			return nil, fmt.Errorf("sprite %s row %d has %d columns", state, y, len(row))
		}
		for x := 0; x < len(row); x++ {
			if c, ok := palette[row[x]]; ok {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img, nil
}

// Background size in source pixels; it is cover-fitted to the window.
const (
	BackgroundWidth  = 200
	BackgroundHeight = 150
)

// BackgroundPixels paints the scene backdrop: a sky gradient, two hill
// bands and a strip of grass along the bottom.
func BackgroundPixels() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BackgroundWidth, BackgroundHeight))
	top := color.RGBA{R: 135, G: 206, B: 235, A: 255}
	bottom := color.RGBA{R: 224, G: 246, B: 255, A: 255}
	farHill := color.RGBA{R: 134, G: 190, B: 120, A: 255}
	nearHill := color.RGBA{R: 96, G: 160, B: 88, A: 255}
	grass := color.RGBA{R: 70, G: 128, B: 60, A: 255}
	soil := color.RGBA{R: 120, G: 86, B: 58, A: 255}

	grassY := BackgroundHeight - 14
	for y := 0; y < BackgroundHeight; y++ {
		t := float64(y) / float64(BackgroundHeight)
		sky := lerp(top, bottom, t)
		for x := 0; x < BackgroundWidth; x++ {
			c := sky
			switch {
			case y >= grassY+4:
				c = soil
			case y >= grassY:
				c = grass
			case y >= hill(x, 0.05, 14, grassY-18):
				c = nearHill
			case y >= hill(x, 0.03, 20, grassY-34):
				c = farHill
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// hill returns the top edge of a stepped hill band at column x.
func hill(x int, freq float64, height, base int) int {
	// triangle wave, stepped every 4 px for a pixel-art edge
	phase := float64(x/4*4) * freq
	frac := phase - float64(int(phase))
	if frac > 0.5 {
		frac = 1 - frac
	}
	return base - int(frac*2*float64(height))
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

type SpriteLoader struct {
	cache      map[cfg.StateID]*ebiten.Image
	background *ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{
		cache: make(map[cfg.StateID]*ebiten.Image),
	}
}

// MustLoadPlayer returns the cached image for a player variant.
func (l *SpriteLoader) MustLoadPlayer(state cfg.StateID) *ebiten.Image {
	if img, ok := l.cache[state]; ok {
		return img
	}
	pixels, err := PlayerPixels(state)
	if err != nil {
		panic(err)
	}
	img := ebiten.NewImageFromImage(pixels)
	l.cache[state] = img
	return img
}

// Background returns the backdrop image.
func (l *SpriteLoader) Background() *ebiten.Image {
	if l.background == nil {
		l.background = ebiten.NewImageFromImage(BackgroundPixels())
	}
	return l.background
}

var spriteLoader = NewSpriteLoader()

func GetPlayerImage(state cfg.StateID) *ebiten.Image {
	return spriteLoader.MustLoadPlayer(state)
}

func GetBackground() *ebiten.Image {
	return spriteLoader.Background()
}

// Ground shadow size in source pixels, drawn 1:1 at full scale.
const (
	ShadowWidth  = 100
	ShadowHeight = 10
)

// ShadowPixels paints a soft ellipse that fades from the centre outwards.
func ShadowPixels(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ShadowWidth, ShadowHeight))
	rx, ry := float64(ShadowWidth)/2, float64(ShadowHeight)/2
	for y := 0; y < ShadowHeight; y++ {
		for x := 0; x < ShadowWidth; x++ {
			dx := (float64(x) + 0.5 - rx) / rx
			dy := (float64(y) + 0.5 - ry) / ry
			d := dx*dx + dy*dy
			if d >= 1 {
				continue
			}
			f := 1 - d
			// premultiplied
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(float64(c.R) * f),
				G: uint8(float64(c.G) * f),
				B: uint8(float64(c.B) * f),
				A: uint8(float64(c.A) * f),
			})
		}
	}
	return img
}

var shadowImage *ebiten.Image

func GetShadow() *ebiten.Image {
	if shadowImage == nil {
		shadowImage = ebiten.NewImageFromImage(ShadowPixels(cfg.Player.ShadowColor))
	}
	return shadowImage
}
