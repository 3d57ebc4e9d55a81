package systems

import (
	"time"

	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// now is the wall clock; tests replace it.
var now = time.Now

// tps reports the configured ticks per second; tests replace it.
var tps = ebiten.TPS

// UpdateClock advances the tick clock. Must run first.
func UpdateClock(ecs *ecs.ECS) {
	advanceClock(GetOrCreateClock(ecs), now(), tps())
}

// advanceClock steps the simulation by one fixed tick so catch-up ticks
// run back to back move as far as regular ones. When ticks follow the
// display rate the wall-clock gap is used, clamped.
func advanceClock(c *components.ClockData, t time.Time, ticksPerSecond int) {
	var step float64
	switch {
	case ticksPerSecond > 0:
		step = 1 / float64(ticksPerSecond)
	case !c.Start.IsZero():
		// A stalled window must not launch the player
		step = gamemath.Clamp(t.Sub(c.Now).Seconds(), 0, cfg.Screen.MaxFrameDelta)
	}
	if c.Start.IsZero() {
		c.Start = t
	}
	c.Now = t
	c.Delta = step
	c.Elapsed += step
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = archetypes.Clock.Spawn(ecs)
	}
	return components.Clock.Get(entry)
}
