package factory

import (
	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at (x, y) with a square box of the given
// side and adds it to the collision space.
func CreatePlayer(ecs *ecs.ECS, x, y, size float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, size, size)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player

	components.Player.SetValue(player, components.PlayerData{
		FacingRight: true,
		Variant:     cfg.Idle,
		ShadowScale: 1,
	})
	components.Physics.SetValue(player, components.PhysicsData{})

	addToSpace(ecs, obj)
	return player
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if entry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(entry).Add(obj)
	}
}
