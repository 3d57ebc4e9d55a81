package factory

import (
	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// ResizeSpace replaces the collision space with one of the new size and
// moves every object into it. Creates the space if there is none.
func ResizeSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	cell := cfg.World.CollisionCell
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		entry = CreateSpace(ecs, width, height, cell, cell)
	} else {
		components.Space.Set(entry, resolv.NewSpace(width, height, cell, cell))
	}

	space := components.Space.Get(entry)
	for e := range components.Object.Iter(ecs.World) {
		// Add re-registers the object's cells in the new space
		space.Add(components.Object.Get(e).Object)
	}
	return entry
}
