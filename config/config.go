package config

import (
	"image/color"
	"math"
	"time"

	"golang.org/x/image/colornames"
)

// ScreenConfig contains window and viewport configuration
type ScreenConfig struct {
	Title string

	// Fallback size used when the window reports a zero dimension
	DefaultWidth  int
	DefaultHeight int

	// Responsive breakpoints on viewport width
	MobileBreakpoint float64 // width < MobileBreakpoint is mobile
	TabletBreakpoint float64 // MobileBreakpoint <= width < TabletBreakpoint is tablet

	// Largest wall-clock gap a display-synced tick may integrate (seconds)
	MaxFrameDelta float64

	BackgroundFallback color.RGBA
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	StartX float64
	StartY float64

	// Movement, in pixels per second
	MaxSpeed  float64
	JumpForce float64
	Gravity   float64 // pixels per second squared

	// Ground line sits GroundOffset above the bottom of the viewport
	GroundOffset float64
	GroundBuffer float64

	// Size = round(BaseSize * scale) with scale picked by breakpoint
	BaseSize    float64
	MobileScale float64
	TabletScale float64

	// Speed above which a grounded player shows the run variant
	RunThreshold float64

	// Shadow
	ShadowWidth    float64
	ShadowHeight   float64
	ShadowLift     float64 // distance above the ground line
	ShadowFalloff  float64 // height at which the shadow reaches its minimum
	ShadowMinScale float64
	ShadowColor    color.RGBA
}

// WorldConfig contains trigger layout and gating configuration
type WorldConfig struct {
	// Horizontal oscillation
	MoveSpeed     float64 // radians per second
	MoveAmplitude float64 // pixels
	PhaseStep     float64 // phase offset between consecutive triggers

	// Amplitude multiplier by breakpoint
	MobileAmplitude float64
	TabletAmplitude float64

	// Minimum time between two dialogue attempts on the same trigger
	Cooldown time.Duration

	// Trigger box size: width = label + round(Padding*scale), height = round(Height*scale)
	TriggerPadding float64
	TriggerHeight  float64
	MobileScale    float64
	TabletScale    float64

	// Cosmetic vertical bob, draw time only
	BobPeriod    float64 // seconds per radian
	BobAmplitude float64

	// Trigger styling
	ShadowOffset  float64
	BorderWidth   float64
	Fill          color.RGBA
	Shadow        color.RGBA
	Border        color.RGBA
	OpenedFill    color.RGBA
	OpenedShadow  color.RGBA
	OpenedBorder  color.RGBA
	LabelColor    color.RGBA
	CollisionCell int
}

// ControlsConfig contains the on-screen control panel layout
type ControlsConfig struct {
	PanelWidth        float64
	PanelMargin       float64 // panel never gets closer than this to either edge
	PanelY            float64
	PanelHeight       float64
	PanelHeightMobile float64
	PanelFill         color.RGBA
	PanelBorder       color.RGBA

	ButtonOffset       float64 // distance from panel top to buttons
	ButtonOffsetMobile float64
	ButtonHeight       float64
	ButtonGap          float64
	MoveButtonWidth    float64
	JumpButtonWidth    float64
	ButtonShadowOffset float64

	MoveFill   color.RGBA
	MoveShadow color.RGBA
	MoveText   color.RGBA
	JumpFill   color.RGBA
	JumpShadow color.RGBA
	JumpText   color.RGBA

	InstructionInset       float64 // distance from panel bottom to the instruction baseline
	InstructionInsetMobile float64
	InstructionColor       color.RGBA
}

// DialogueConfig contains modal dialogue configuration
type DialogueConfig struct {
	FadeDuration   float32 // seconds
	BackdropAlpha  float32
	SelectionAlpha float32 // backdrop behind the language selection modal
	WidthFraction  float64
	MaxWidth       int
	TopFraction    float64
	Padding        int
	Spacing        int
	BorderWidth    int
	BottomMargin   int     // dialogue never extends closer than this to the bottom
	SelectorWidth  int     // max width of the language choice
	Bullet         string

	Background  color.RGBA
	Border      color.RGBA
	TextColor   color.RGBA
	CloseButton color.RGBA
	CloseShadow color.RGBA
	EnglishFill color.RGBA
	JapanFill   color.RGBA
}

// SidebarConfig styles the portfolio sidebar
type SidebarConfig struct {
	Margin    int
	Padding   int
	Spacing   int
	TextWidth int // wrap width of the download blurb

	Background    color.RGBA
	TitleColor    color.RGBA
	TextColor     color.RGBA
	Button        color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
}

// ErrorConfig describes the halted error screen
type ErrorConfig struct {
	X, Y       float64
	LineHeight float64
	Color      color.RGBA
}

// AppConfig holds application wide settings
type AppConfig struct {
	Name    string // gdata application name
	SiteURL string // base URL the download paths are resolved against
}

// Download describes the portfolio file offered for one language
type Download struct {
	Path     string
	FileName string
}

// Global configuration instances
var Screen ScreenConfig
var Player PlayerConfig
var World WorldConfig
var Controls ControlsConfig
var Dialogue DialogueConfig
var Sidebar SidebarConfig
var Error ErrorConfig
var App AppConfig
var Downloads map[Language]Download

// Shared colors
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 74, G: 222, B: 128, A: 255}  // #4ade80
	DarkGreen    = color.RGBA{R: 26, G: 92, B: 26, A: 255}    // #1a5c1a
	ForestGreen  = color.RGBA{R: 22, G: 101, B: 52, A: 255}   // #166534
	Coral        = color.RGBA{R: 255, G: 111, B: 97, A: 255}  // #ff6f61
	DarkCoral    = color.RGBA{R: 179, G: 77, B: 66, A: 255}   // #b34d42
	Violet       = color.RGBA{R: 168, G: 85, B: 247, A: 255}  // #a855f7
	Charcoal     = color.RGBA{R: 51, G: 51, B: 51, A: 255}    // #333333
	SlateBlue    = color.RGBA{R: 51, G: 68, B: 85, A: 255}    // #334455
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Screen = ScreenConfig{
		Title:              "Tejashree's Portfolio",
		DefaultWidth:       800,
		DefaultHeight:      600,
		MobileBreakpoint:   500,
		TabletBreakpoint:   800,
		MaxFrameDelta:      0.1,
		BackgroundFallback: SlateBlue,
	}

	// Speeds are per second; at 60 ticks per second they equal
	// 5 px, 32 px and 1 px per tick.
	Player = PlayerConfig{
		StartX:         100,
		StartY:         100,
		MaxSpeed:       300,
		JumpForce:      1920,
		Gravity:        3600,
		GroundOffset:   50,
		GroundBuffer:   5,
		BaseSize:       128,
		MobileScale:    0.6,
		TabletScale:    0.8,
		RunThreshold:   0.1,
		ShadowWidth:    100,
		ShadowHeight:   10,
		ShadowLift:     10,
		ShadowFalloff:  200,
		ShadowMinScale: 0.3,
		ShadowColor:    color.RGBA{R: 0, G: 0, B: 0, A: 102},
	}

	World = WorldConfig{
		MoveSpeed:       0.5,
		MoveAmplitude:   60,
		PhaseStep:       math.Pi / 2,
		MobileAmplitude: 0.4,
		TabletAmplitude: 0.7,
		Cooldown:        time.Second,
		TriggerPadding:  30,
		TriggerHeight:   40,
		MobileScale:     0.7,
		TabletScale:     0.85,
		BobPeriod:       0.5,
		BobAmplitude:    5,
		ShadowOffset:    4,
		BorderWidth:     3,
		Fill:            White,
		Shadow:          Charcoal,
		Border:          Black,
		OpenedFill:      Green,
		OpenedShadow:    DarkGreen,
		OpenedBorder:    ForestGreen,
		LabelColor:      Black,
		CollisionCell:   32,
	}

	Controls = ControlsConfig{
		PanelWidth:             420,
		PanelMargin:            10,
		PanelY:                 10,
		PanelHeight:            70,
		PanelHeightMobile:      80,
		PanelFill:              color.RGBA{R: 255, G: 248, B: 220, A: 242},
		PanelBorder:            color.RGBA{R: 200, G: 180, B: 140, A: 204},
		ButtonOffset:           12,
		ButtonOffsetMobile:     10,
		ButtonHeight:           28,
		ButtonGap:              8,
		MoveButtonWidth:        70,
		JumpButtonWidth:        90,
		ButtonShadowOffset:     3,
		MoveFill:               color.RGBA{R: 45, G: 45, B: 45, A: 255},
		MoveShadow:             color.RGBA{R: 26, G: 26, B: 26, A: 255},
		MoveText:               White,
		JumpFill:               Green,
		JumpShadow:             color.RGBA{R: 34, G: 197, B: 94, A: 255},
		JumpText:               color.RGBA{R: 26, G: 26, B: 26, A: 255},
		InstructionInset:       10,
		InstructionInsetMobile: 8,
		InstructionColor:       colornames.Dimgray,
	}

	Dialogue = DialogueConfig{
		FadeDuration:   0.2,
		BackdropAlpha:  0.5,
		SelectionAlpha: 0.7,
		WidthFraction:  0.8,
		MaxWidth:       600,
		TopFraction:    0.2,
		Padding:        25,
		Spacing:        10,
		BorderWidth:    2,
		BottomMargin:   20,
		SelectorWidth:  500,
		Bullet:         "• ",
		Background:     Black,
		Border:         White,
		TextColor:      White,
		CloseButton:    Coral,
		CloseShadow:    DarkCoral,
		EnglishFill:    Coral,
		JapanFill:      Violet,
	}

	Sidebar = SidebarConfig{
		Margin:        10,
		Padding:       12,
		Spacing:       6,
		TextWidth:     180,
		Background:    color.RGBA{R: 20, G: 20, B: 30, A: 200},
		TitleColor:    White,
		TextColor:     color.RGBA{R: 220, G: 220, B: 220, A: 255},
		Button:        color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:   color.RGBA{R: 80, G: 80, B: 100, A: 255},
		ButtonPressed: color.RGBA{R: 40, G: 40, B: 60, A: 255},
	}

	Error = ErrorConfig{
		X:          50,
		Y:          50,
		LineHeight: 30,
		Color:      Red,
	}

	App = AppConfig{
		Name:    "folio",
		SiteURL: "http://localhost:8080",
	}

	Downloads = map[Language]Download{
		English:  {Path: "/tejashree-portfolio-eng.pdf", FileName: "Tejashree-Portfolio-EN.pdf"},
		Japanese: {Path: "/tejashree-portfolio-jp.pdf", FileName: "Tejashree-Portfolio-JP.pdf"},
	}
}
