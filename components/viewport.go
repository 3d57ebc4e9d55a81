package components

import (
	"github.com/yohamta/donburi"
)

// ViewportData is the current world size, equal to the window's outside size.
type ViewportData struct {
	Width  float64
	Height float64
}

var Viewport = donburi.NewComponentType[ViewportData]()
