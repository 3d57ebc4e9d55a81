package components

import (
	"github.com/automoto/folio/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ControlsData holds the on-screen panel and button rectangles as last
// laid out. Hit testing uses these.
type ControlsData struct {
	Panel gamemath.Rect
	Left  gamemath.Rect
	Jump  gamemath.Rect
	Right gamemath.Rect
}

var Controls = donburi.NewComponentType[ControlsData]()
