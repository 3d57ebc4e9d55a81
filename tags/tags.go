package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Trigger = donburi.NewTag().SetName("Trigger")
)

// Resolv tags for overlap checks
const (
	ResolvPlayer  = "Player"
	ResolvTrigger = "Trigger"
)
