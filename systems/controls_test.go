package systems

import (
	"testing"

	"github.com/automoto/folio/components"
	"github.com/automoto/folio/shared/gamemath"
)

func TestLayoutControlsDesktop(t *testing.T) {
	var c components.ControlsData
	LayoutControls(&c, 800)

	want := map[string]gamemath.Rect{
		"panel": {X: 190, Y: 10, W: 420, H: 70},
		"left":  {X: 277, Y: 22, W: 70, H: 28},
		"jump":  {X: 355, Y: 22, W: 90, H: 28},
		"right": {X: 453, Y: 22, W: 70, H: 28},
	}
	got := map[string]gamemath.Rect{"panel": c.Panel, "left": c.Left, "jump": c.Jump, "right": c.Right}
	for name, w := range want {
		if got[name] != w {
			t.Errorf("%s = %+v, want %+v", name, got[name], w)
		}
	}
}

func TestLayoutControlsMobile(t *testing.T) {
	var c components.ControlsData
	LayoutControls(&c, 400)

	if !approx(c.Panel.W, 294) || c.Panel.H != 80 {
		t.Errorf("panel = %+v, want 294 wide and 80 high", c.Panel)
	}
	if c.Left.Y != 20 || c.Left.W != 49 || c.Left.H != 20 || c.Jump.W != 63 {
		t.Errorf("buttons left %+v jump %+v, want scaled to 0.7", c.Left, c.Jump)
	}
	if c.Left.X != 113.5 || c.Jump.X != 168.5 || c.Right.X != 237.5 {
		t.Errorf("button x = %v %v %v, want 113.5 168.5 237.5", c.Left.X, c.Jump.X, c.Right.X)
	}
}

func TestLayoutControlsNarrowPanelKeepsMargin(t *testing.T) {
	var c components.ControlsData
	LayoutControls(&c, 300)
	if c.Panel.X != 10 || c.Panel.W != 280 {
		t.Errorf("panel = %+v, want 10px margins", c.Panel)
	}
}

func TestPressVirtualAt(t *testing.T) {
	var c components.ControlsData
	LayoutControls(&c, 800)

	tests := []struct {
		name string
		x, y float64
		want components.VirtualButtons
		hit  bool
	}{
		{"left top-left corner", 277, 22, components.VirtualButtons{Left: true}, true},
		{"left right edge", 347, 50, components.VirtualButtons{Left: true}, true},
		{"gap between buttons", 350, 30, components.VirtualButtons{}, false},
		{"jump centre", 400, 36, components.VirtualButtons{Jump: true}, true},
		{"right", 500, 30, components.VirtualButtons{Right: true}, true},
		{"below the buttons", 400, 51, components.VirtualButtons{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input components.InputData
			if got := PressVirtualAt(&c, &input, tt.x, tt.y); got != tt.hit {
				t.Fatalf("hit = %v, want %v", got, tt.hit)
			}
			if input.Virtual != tt.want {
				t.Errorf("virtual = %+v, want %+v", input.Virtual, tt.want)
			}
		})
	}
}

func TestPressVirtualAtBeforeLayout(t *testing.T) {
	var c components.ControlsData
	var input components.InputData
	if PressVirtualAt(&c, &input, 0, 0) {
		t.Fatal("unlaid-out buttons caught a press at the origin")
	}
	if input.Virtual.Any() {
		t.Fatalf("virtual = %+v", input.Virtual)
	}
}

func TestReleaseVirtual(t *testing.T) {
	input := components.InputData{Virtual: components.VirtualButtons{Left: true, Jump: true}}
	ReleaseVirtual(&input)
	if input.Virtual.Any() {
		t.Fatal("every flag should be released")
	}
}
