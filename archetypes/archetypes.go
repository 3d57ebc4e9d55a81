package archetypes

import (
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
	)
	Trigger = newArchetype(
		tags.Trigger,
		components.Trigger,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Viewport = newArchetype(
		components.Viewport,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
	)
	Controls = newArchetype(
		components.Controls,
	)
	Dialogue = newArchetype(
		components.Dialogue,
	)
	UIState = newArchetype(
		components.UIState,
	)
	Content = newArchetype(
		components.Content,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
