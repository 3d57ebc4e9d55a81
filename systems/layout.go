package systems

import (
	"math"

	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/fonts"
)

// Breakpoint is the responsive size class picked from the viewport width.
type Breakpoint int

const (
	Desktop Breakpoint = iota
	Tablet
	Mobile
)

func BreakpointFor(width float64) Breakpoint {
	switch {
	case width < cfg.Screen.MobileBreakpoint:
		return Mobile
	case width < cfg.Screen.TabletBreakpoint:
		return Tablet
	default:
		return Desktop
	}
}

func pick(width, mobile, tablet, desktop float64) float64 {
	switch BreakpointFor(width) {
	case Mobile:
		return mobile
	case Tablet:
		return tablet
	default:
		return desktop
	}
}

// PlayerSize returns the side of the square player box for a viewport width.
func PlayerSize(width float64) float64 {
	return math.Round(cfg.Player.BaseSize * pick(width, cfg.Player.MobileScale, cfg.Player.TabletScale, 1))
}

// UIScale scales the trigger boxes and the control panel.
func UIScale(width float64) float64 {
	return pick(width, cfg.World.MobileScale, cfg.World.TabletScale, 1)
}

// AmplitudeMultiplier shrinks the trigger float on narrow screens.
func AmplitudeMultiplier(width float64) float64 {
	return pick(width, cfg.World.MobileAmplitude, cfg.World.TabletAmplitude, 1)
}

func triggerFont(width float64) fonts.FontName {
	switch BreakpointFor(width) {
	case Mobile:
		return fonts.Trigger12
	case Tablet:
		return fonts.Trigger14
	default:
		return fonts.Trigger16
	}
}

func buttonFont(width float64) fonts.FontName {
	if BreakpointFor(width) == Mobile {
		return fonts.ButtonSmall
	}
	return fonts.Button
}

func hintFont(width float64) fonts.FontName {
	if BreakpointFor(width) == Mobile {
		return fonts.HintSmall
	}
	return fonts.Hint
}
