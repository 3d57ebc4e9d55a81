package systems

import (
	"image/color"

	"github.com/automoto/folio/components"
	"github.com/automoto/folio/shared/gamemath"
	"github.com/automoto/folio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and the control hit areas.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateUIState(ecs).Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvTrigger) {
				c = color.RGBA{255, 0, 255, 255} // Magenta
			}
			outline(screen, gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}, c)
		}
	}

	controls := GetOrCreateControls(ecs)
	for _, r := range []gamemath.Rect{controls.Left, controls.Jump, controls.Right} {
		outline(screen, r, color.RGBA{255, 0, 0, 255})
	}
}

func outline(screen *ebiten.Image, r gamemath.Rect, c color.RGBA) {
	if r.Empty() {
		return
	}
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
