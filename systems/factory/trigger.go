package factory

import (
	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/assets"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTrigger spawns one topic trigger. index staggers the oscillation
// phase. The box starts square and is resized by the first draw.
func CreateTrigger(ecs *ecs.ECS, spawn assets.TriggerSpawn, index int, viewW, viewH float64) *donburi.Entry {
	trigger := archetypes.Trigger.Spawn(ecs)

	x := spawn.FactorX * viewW
	y := spawn.FactorY * viewH
	size := cfg.World.TriggerHeight

	obj := resolv.NewObject(x, y, size, size)
	components.Object.SetValue(trigger, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvTrigger)
	obj.Data = trigger

	components.Trigger.SetValue(trigger, components.TriggerData{
		Topic:     spawn.Topic,
		Order:     spawn.Order,
		FactorX:   spawn.FactorX,
		FactorY:   spawn.FactorY,
		MoveSpeed: cfg.World.MoveSpeed,
		Amplitude: cfg.World.MoveAmplitude,
		Phase:     float64(index) * cfg.World.PhaseStep,
		X:         x,
		Y:         y,
		Width:     size,
		Height:    size,
	})

	addToSpace(ecs, obj)
	return trigger
}

// CreateTriggers spawns every trigger of the layout, in layout order.
func CreateTriggers(ecs *ecs.ECS, layout assets.Layout, viewW, viewH float64) []*donburi.Entry {
	entries := make([]*donburi.Entry, 0, len(layout.Triggers))
	for i, spawn := range layout.Triggers {
		entries = append(entries, CreateTrigger(ecs, spawn, i, viewW, viewH))
	}
	return entries
}
