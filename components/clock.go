package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData tracks simulated and wall-clock time for the tick.
type ClockData struct {
	Start time.Time
	Now   time.Time // wall clock, used for trigger cooldowns
	Delta float64   // seconds simulated by this tick

	// Simulated seconds so far, drives the trigger oscillation
	Elapsed float64
}

var Clock = donburi.NewComponentType[ClockData]()
