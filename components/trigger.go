package components

import (
	"time"

	"github.com/automoto/folio/content"
	"github.com/yohamta/donburi"
)

// TriggerData is one floating topic label. Position and size are in
// screen pixels; the size is whatever the last draw measured.
type TriggerData struct {
	Topic content.Topic
	Order int // overlap resolution order, later wins

	// Base position as a fraction of the viewport
	FactorX float64
	FactorY float64

	MoveSpeed float64
	Amplitude float64
	Phase     float64

	X, Y          float64
	Width, Height float64

	Opened        bool
	Triggered     bool // LastTriggered is meaningful
	LastTriggered time.Time
}

// Ready reports whether the cooldown since the last attempt has elapsed.
func (t *TriggerData) Ready(now time.Time, cooldown time.Duration) bool {
	return !t.Triggered || now.Sub(t.LastTriggered) >= cooldown
}

var Trigger = donburi.NewComponentType[TriggerData]()
