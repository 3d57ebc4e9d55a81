package systems

import (
	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// ApplyViewport sets the world size to the window's outside size. A zero
// dimension falls back to the default. It reports whether the size changed;
// on a change the player is resized and clamped and the collision space is
// rebuilt.
func ApplyViewport(ecs *ecs.ECS, width, height int) bool {
	if width <= 0 {
		width = cfg.Screen.DefaultWidth
	}
	if height <= 0 {
		height = cfg.Screen.DefaultHeight
	}

	vp := GetOrCreateViewport(ecs)
	w, h := float64(width), float64(height)
	if vp.Width == w && vp.Height == h {
		return false
	}
	vp.Width, vp.Height = w, h

	// Size first: the clamp depends on it
	UpdatePlayerSize(ecs, w)
	clampPlayers(ecs, w)
	factory.ResizeSpace(ecs, width, height)
	return true
}

// GetOrCreateViewport returns the singleton Viewport component. A new one
// starts at the default size.
func GetOrCreateViewport(ecs *ecs.ECS) *components.ViewportData {
	entry, ok := components.Viewport.First(ecs.World)
	if !ok {
		entry = archetypes.Viewport.Spawn(ecs)
		components.Viewport.SetValue(entry, components.ViewportData{
			Width:  float64(cfg.Screen.DefaultWidth),
			Height: float64(cfg.Screen.DefaultHeight),
		})
	}
	return components.Viewport.Get(entry)
}
