package systems

import (
	"image/color"
	"math"

	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/content"
	"github.com/automoto/folio/fonts"
	"github.com/automoto/folio/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// GetOrCreateControls returns the singleton Controls component, creating if needed.
func GetOrCreateControls(ecs *ecs.ECS) *components.ControlsData {
	entry, ok := components.Controls.First(ecs.World)
	if !ok {
		entry = archetypes.Controls.Spawn(ecs)
	}
	return components.Controls.Get(entry)
}

// LayoutControls computes the control panel and its three buttons for a
// viewport width. The panel is centred and never wider than the viewport
// less a margin on each side.
func LayoutControls(c *components.ControlsData, width float64) {
	scale := UIScale(width)
	mobile := BreakpointFor(width) == Mobile

	panelW := math.Min(cfg.Controls.PanelWidth*scale, width-2*cfg.Controls.PanelMargin)
	panelH := cfg.Controls.PanelHeight
	buttonY := cfg.Controls.PanelY + cfg.Controls.ButtonOffset
	if mobile {
		panelH = cfg.Controls.PanelHeightMobile
		buttonY = cfg.Controls.PanelY + cfg.Controls.ButtonOffsetMobile
	}
	c.Panel = gamemath.Rect{X: (width - panelW) / 2, Y: cfg.Controls.PanelY, W: panelW, H: panelH}

	bh := math.Round(cfg.Controls.ButtonHeight * scale)
	gap := math.Round(cfg.Controls.ButtonGap * scale)
	mw := math.Round(cfg.Controls.MoveButtonWidth * scale)
	jw := math.Round(cfg.Controls.JumpButtonWidth * scale)
	startX := (width - (2*mw + jw + 2*gap)) / 2

	c.Left = gamemath.Rect{X: startX, Y: buttonY, W: mw, H: bh}
	c.Jump = gamemath.Rect{X: startX + mw + gap, Y: buttonY, W: jw, H: bh}
	c.Right = gamemath.Rect{X: startX + mw + jw + 2*gap, Y: buttonY, W: mw, H: bh}
}

// PressVirtualAt sets the flag of the button under (x, y), edges included.
// It reports whether a button was hit.
func PressVirtualAt(c *components.ControlsData, input *components.InputData, x, y float64) bool {
	switch {
	case c.Left.Contains(x, y):
		input.Virtual.Left = true
	case c.Jump.Contains(x, y):
		input.Virtual.Jump = true
	case c.Right.Contains(x, y):
		input.Virtual.Right = true
	default:
		return false
	}
	return true
}

// UpdateControls maps mouse and touch presses on the on-screen buttons to
// the virtual flags. Releasing anywhere, the cursor leaving the window or
// the window losing focus clears all of them. While a modal is open the
// buttons are inert.
func UpdateControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if ModalOpen(ecs) {
		ReleaseVirtual(input)
		return
	}

	vp := GetOrCreateViewport(ecs)
	c := GetOrCreateControls(ecs)
	LayoutControls(c, vp.Width)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		PressVirtualAt(c, input, float64(x), float64(y))
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		PressVirtualAt(c, input, float64(x), float64(y))
	}

	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	touchIDs = inpututil.AppendJustReleasedTouchIDs(touchIDs[:0])
	released = released || len(touchIDs) > 0

	if !released && input.Virtual.Any() {
		x, y := ebiten.CursorPosition()
		view := gamemath.Rect{W: vp.Width, H: vp.Height}
		held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		released = !ebiten.IsFocused() || (held && !view.Contains(float64(x), float64(y)))
	}
	if released {
		ReleaseVirtual(input)
	}
}

// DrawControls draws the panel, the three buttons and the key hint line.
// The layout is recomputed so hit testing always matches what is shown.
func DrawControls(ecs *ecs.ECS, screen *ebiten.Image) {
	vp := GetOrCreateViewport(ecs)
	c := GetOrCreateControls(ecs)
	LayoutControls(c, vp.Width)

	lang := GetOrCreateUIState(ecs).Language
	feed := Feed(ecs)

	p := c.Panel
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), cfg.Controls.PanelFill, false)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), 2, cfg.Controls.PanelBorder, false)

	font := buttonFont(vp.Width)
	drawButton(screen, c.Left, feed.String(lang, content.MoveLeft), font, cfg.Controls.MoveFill, cfg.Controls.MoveShadow, cfg.Controls.MoveText)
	drawButton(screen, c.Jump, feed.String(lang, content.Jump), font, cfg.Controls.JumpFill, cfg.Controls.JumpShadow, cfg.Controls.JumpText)
	drawButton(screen, c.Right, feed.String(lang, content.MoveRight), font, cfg.Controls.MoveFill, cfg.Controls.MoveShadow, cfg.Controls.MoveText)

	hint := feed.String(lang, content.Instructions)
	inset := cfg.Controls.InstructionInset
	if BreakpointFor(vp.Width) == Mobile {
		hint = feed.String(lang, content.InstructionsShort)
		inset = cfg.Controls.InstructionInsetMobile
	}
	// inset is to the baseline; centre the line just above it
	hf := hintFont(vp.Width)
	drawCentered(screen, hint, hf, vp.Width/2, p.Y+p.H-inset-hf.Face().Metrics().HAscent/2, cfg.Controls.InstructionColor)
}

func drawButton(screen *ebiten.Image, r gamemath.Rect, label string, font fonts.FontName, fill, shadow, textColor color.RGBA) {
	off := float32(cfg.Controls.ButtonShadowOffset)
	vector.FillRect(screen, float32(r.X), float32(r.Y)+off, float32(r.W), float32(r.H), shadow, false)
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	drawCentered(screen, label, font, r.X+r.W/2, r.Y+r.H/2, textColor)
}
