package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData holds the player's velocity in pixels per second.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Grounded bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
