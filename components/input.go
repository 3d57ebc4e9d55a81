package components

import (
	cfg "github.com/automoto/folio/config"
	"github.com/yohamta/donburi"
)

// VirtualButtons are the on-screen control flags set by pointer and touch
// handling. They stay set until the pointer is released.
type VirtualButtons struct {
	Left  bool
	Right bool
	Jump  bool
}

// Any reports whether at least one virtual button is held.
func (v VirtualButtons) Any() bool {
	return v.Left || v.Right || v.Jump
}

// InputData stores the held state of every action for the current and
// previous tick, plus the actions that went down this tick.
// JustPressed is cleared once per tick after every consumer has run.
type InputData struct {
	Current     [cfg.ActionCount]bool
	Previous    [cfg.ActionCount]bool
	JustPressed [cfg.ActionCount]bool

	// 1-based index of the topic key pressed this tick, 0 for none
	TopicKey int

	Virtual VirtualButtons
}

var Input = donburi.NewComponentType[InputData]()
