package systems

import (
	"testing"
	"time"

	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
)

func TestAdvanceClockFixedStep(t *testing.T) {
	var c components.ClockData
	start := time.Unix(100, 0)

	advanceClock(&c, start, 60)
	if !c.Start.Equal(start) || !approx(c.Delta, 1.0/60) {
		t.Fatalf("first tick = %+v, want one step from start", c)
	}

	// Catch-up ticks arrive with no wall time between them
	advanceClock(&c, start, 60)
	advanceClock(&c, start, 60)
	if !approx(c.Delta, 1.0/60) {
		t.Errorf("delta = %v, want 1/60", c.Delta)
	}
	if !approx(c.Elapsed, 3.0/60) {
		t.Errorf("elapsed = %v, want 3/60", c.Elapsed)
	}

	// A long stall still steps once
	advanceClock(&c, start.Add(5*time.Second), 60)
	if !approx(c.Delta, 1.0/60) || !approx(c.Elapsed, 4.0/60) {
		t.Errorf("after stall delta %v elapsed %v", c.Delta, c.Elapsed)
	}
	if !c.Now.Equal(start.Add(5 * time.Second)) {
		t.Errorf("now = %v, want the wall clock", c.Now)
	}
}

func TestAdvanceClockDisplaySynced(t *testing.T) {
	var c components.ClockData
	start := time.Unix(100, 0)

	advanceClock(&c, start, -1)
	if c.Delta != 0 {
		t.Fatalf("first tick delta = %v, want 0", c.Delta)
	}

	advanceClock(&c, start.Add(16*time.Millisecond), -1)
	if !approx(c.Delta, 0.016) {
		t.Errorf("delta = %v, want 0.016", c.Delta)
	}

	advanceClock(&c, start.Add(5*time.Second), -1)
	if c.Delta != cfg.Screen.MaxFrameDelta {
		t.Errorf("delta = %v, want clamped to %v", c.Delta, cfg.Screen.MaxFrameDelta)
	}

	// A clock going backwards never yields a negative step
	advanceClock(&c, start.Add(4*time.Second), -1)
	if c.Delta != 0 {
		t.Errorf("delta = %v, want 0", c.Delta)
	}
}

func TestUpdateClockUsesTPS(t *testing.T) {
	e := newTestECS()
	oldNow, oldTPS := now, tps
	tick := time.Unix(500, 0)
	now = func() time.Time { return tick }
	tps = func() int { return 30 }
	t.Cleanup(func() { now, tps = oldNow, oldTPS })

	UpdateClock(e)
	UpdateClock(e)

	if c := GetOrCreateClock(e); !approx(c.Delta, 1.0/30) || !approx(c.Elapsed, 2.0/30) {
		t.Errorf("delta %v elapsed %v, want 1/30 and 2/30", c.Delta, c.Elapsed)
	}
}

func TestJumpOnCatchUpTick(t *testing.T) {
	var c components.ClockData
	start := time.Unix(100, 0)
	advanceClock(&c, start, 60)
	advanceClock(&c, start, 60)

	player, physics, obj := groundedAt(100)
	restY := obj.Y
	stepPlayer(player, physics, obj, PlayerIntent{Jump: true}, c.Delta, 800, 600)

	if physics.Grounded {
		t.Fatal("jump was swallowed by the ground snap")
	}
	if rise := restY - obj.Y; !approx(rise, cfg.Player.JumpForce/60) {
		t.Fatalf("rose %v px, want %v", rise, cfg.Player.JumpForce/60)
	}
}
