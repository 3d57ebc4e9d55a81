package systems

import (
	"github.com/automoto/folio/assets"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/fonts"
	"github.com/automoto/folio/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground cover-fits the backdrop to the screen, or fills it with
// the fallback colour when there is no backdrop.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	drawBackground(screen, assets.GetBackground())
}

func drawBackground(screen, bg *ebiten.Image) {
	b := screen.Bounds()
	if bg == nil {
		screen.Fill(cfg.Screen.BackgroundFallback)
		return
	}
	src := bg.Bounds()
	scale, ox, oy := gamemath.CoverFit(float64(src.Dx()), float64(src.Dy()), float64(b.Dx()), float64(b.Dy()))
	if scale == 0 {
		screen.Fill(cfg.Screen.BackgroundFallback)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.Filter = ebiten.FilterNearest
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(ox, oy)
	screen.DrawImage(bg, drawOp)
}

// DrawPlayer draws the ground shadow, then the sprite for the player's
// current variant, mirrored when facing left.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	vp := GetOrCreateViewport(ecs)
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		o := components.Object.Get(e)

		drawShadow(screen, o.X+o.W/2, groundLine(vp.Height)-cfg.Player.ShadowLift, player.ShadowScale)

		img := assets.GetPlayerImage(player.Variant)
		size := float64(img.Bounds().Dx())

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.Filter = ebiten.FilterNearest
		if !player.FacingRight {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(size, 0)
		}
		drawOp.GeoM.Scale(o.W/size, o.H/size)
		drawOp.GeoM.Translate(o.X, o.Y)
		screen.DrawImage(img, drawOp)
	})
}

// drawShadow draws the shadow centred horizontally on cx with its top at
// y. scale shrinks it around its centre and also sets its opacity.
func drawShadow(screen *ebiten.Image, cx, y, scale float64) {
	shadow := assets.GetShadow()
	w := float64(assets.ShadowWidth)
	h := float64(assets.ShadowHeight)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.Filter = ebiten.FilterLinear
	drawOp.GeoM.Translate(-w/2, -h/2)
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(cx, y+h/2)
	drawOp.ColorScale.ScaleAlpha(float32(scale))
	screen.DrawImage(shadow, drawOp)
}

// DrawError draws the halted error screen.
func DrawError(screen *ebiten.Image, err error) {
	drawErrorLine(screen, "Game Error: "+err.Error(), 0)
	drawErrorLine(screen, "Check console for details", 1)
}

// drawErrorLine draws line n with its baseline on the error grid.
func drawErrorLine(screen *ebiten.Image, s string, n int) {
	face := fonts.Error.Face()
	op := &text.DrawOptions{}
	op.GeoM.Translate(cfg.Error.X, cfg.Error.Y+float64(n)*cfg.Error.LineHeight-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(cfg.Error.Color)
	text.Draw(screen, s, face, op)
}
