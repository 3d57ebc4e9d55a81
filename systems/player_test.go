package systems

import (
	"testing"

	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/systems/factory"
	"github.com/solarlune/resolv"
)

// groundedAt returns a player box resting on the ground of a 800x600 world.
func groundedAt(x float64) (*components.PlayerData, *components.PhysicsData, *resolv.Object) {
	obj := resolv.NewObject(x, 600-cfg.Player.GroundOffset-128, 128, 128)
	return &components.PlayerData{FacingRight: true}, &components.PhysicsData{Grounded: true}, obj
}

func TestStepPlayerHorizontal(t *testing.T) {
	tests := []struct {
		name      string
		startX    float64
		intent    PlayerIntent
		wantX     float64
		wantRight bool
	}{
		{"right", 100, PlayerIntent{Right: true}, 175, true},
		{"left", 100, PlayerIntent{Left: true}, 25, false},
		{"right wins over left", 100, PlayerIntent{Left: true, Right: true}, 175, true},
		{"clamped at left wall", 10, PlayerIntent{Left: true}, 0, false},
		{"clamped at right wall", 700, PlayerIntent{Right: true}, 672, true},
		{"idle", 100, PlayerIntent{}, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, physics, obj := groundedAt(tt.startX)
			stepPlayer(player, physics, obj, tt.intent, 0.25, 800, 600)

			if obj.X != tt.wantX {
				t.Errorf("X = %v, want %v", obj.X, tt.wantX)
			}
			if player.FacingRight != tt.wantRight {
				t.Errorf("FacingRight = %v, want %v", player.FacingRight, tt.wantRight)
			}
		})
	}
}

func TestStepPlayerJump(t *testing.T) {
	player, physics, obj := groundedAt(100)
	restY := obj.Y

	stepPlayer(player, physics, obj, PlayerIntent{Jump: true}, 0.25, 800, 600)
	if physics.SpeedY != -cfg.Player.JumpForce {
		t.Fatalf("SpeedY = %v, want %v", physics.SpeedY, -cfg.Player.JumpForce)
	}
	if obj.Y != restY-cfg.Player.JumpForce*0.25 {
		t.Fatalf("Y = %v, want %v", obj.Y, restY-cfg.Player.JumpForce*0.25)
	}
	if physics.Grounded || player.Variant != cfg.Jump {
		t.Fatalf("player should be airborne in the jump variant, got grounded=%v variant=%v", physics.Grounded, player.Variant)
	}

	// No double jump: holding jump in the air only adds gravity
	speed := physics.SpeedY
	stepPlayer(player, physics, obj, PlayerIntent{Jump: true}, 0.25, 800, 600)
	if physics.SpeedY != speed+cfg.Player.Gravity*0.25 {
		t.Fatalf("SpeedY = %v, want %v", physics.SpeedY, speed+cfg.Player.Gravity*0.25)
	}
	if player.ShadowScale >= 1 {
		t.Errorf("ShadowScale = %v, want < 1 in the air", player.ShadowScale)
	}
}

func TestStepPlayerLandsAndStaysPut(t *testing.T) {
	player, physics, obj := groundedAt(100)
	physics.Grounded = false
	physics.SpeedY = 400
	obj.Y = 600 - cfg.Player.GroundOffset - 128 - 50

	stepPlayer(player, physics, obj, PlayerIntent{}, 0.25, 800, 600)
	rest := 600 - cfg.Player.GroundOffset - 128
	if obj.Y != rest || !physics.Grounded || physics.SpeedY != 0 {
		t.Fatalf("after landing Y=%v grounded=%v speedY=%v, want Y=%v grounded speedY=0", obj.Y, physics.Grounded, physics.SpeedY, rest)
	}

	for i := 0; i < 3; i++ {
		stepPlayer(player, physics, obj, PlayerIntent{}, 0.25, 800, 600)
		if obj.Y != rest {
			t.Fatalf("tick %d: Y drifted to %v", i, obj.Y)
		}
	}
	if player.Variant != cfg.Idle || player.ShadowScale != 1 {
		t.Errorf("variant = %v shadow = %v, want idle and 1", player.Variant, player.ShadowScale)
	}
}

func TestStepPlayerRunningVariant(t *testing.T) {
	player, physics, obj := groundedAt(100)
	stepPlayer(player, physics, obj, PlayerIntent{Left: true}, 0.25, 800, 600)
	if player.Variant != cfg.Running {
		t.Errorf("variant = %v, want running", player.Variant)
	}
}

func TestBreakpointScales(t *testing.T) {
	tests := []struct {
		width      float64
		breakpoint Breakpoint
		player     float64
		ui         float64
		amplitude  float64
	}{
		{1200, Desktop, 128, 1, 1},
		{800, Desktop, 128, 1, 1},
		{799, Tablet, 102, 0.85, 0.7},
		{600, Tablet, 102, 0.85, 0.7},
		{500, Tablet, 102, 0.85, 0.7},
		{499, Mobile, 77, 0.7, 0.4},
		{400, Mobile, 77, 0.7, 0.4},
	}
	for _, tt := range tests {
		if got := BreakpointFor(tt.width); got != tt.breakpoint {
			t.Errorf("BreakpointFor(%v) = %v, want %v", tt.width, got, tt.breakpoint)
		}
		if got := PlayerSize(tt.width); got != tt.player {
			t.Errorf("PlayerSize(%v) = %v, want %v", tt.width, got, tt.player)
		}
		if got := UIScale(tt.width); !approx(got, tt.ui) {
			t.Errorf("UIScale(%v) = %v, want %v", tt.width, got, tt.ui)
		}
		if got := AmplitudeMultiplier(tt.width); !approx(got, tt.amplitude) {
			t.Errorf("AmplitudeMultiplier(%v) = %v, want %v", tt.width, got, tt.amplitude)
		}
	}
}

func TestApplyViewport(t *testing.T) {
	e := newTestECS()
	factory.ResizeSpace(e, 800, 600)
	player := factory.CreatePlayer(e, 700, 300, PlayerSize(800))
	obj := components.Object.Get(player).Object

	if !ApplyViewport(e, 400, 300) {
		t.Fatal("a new size should be applied")
	}
	if obj.W != 77 || obj.H != 77 {
		t.Errorf("player size = %vx%v, want 77x77", obj.W, obj.H)
	}
	if obj.X != 400-77 {
		t.Errorf("player X = %v, want clamped to %v", obj.X, 400-77)
	}
	space, _ := components.Space.First(e.World)
	if n := len(components.Space.Get(space).Objects()); n != 1 {
		t.Errorf("resized space holds %d objects, want the player", n)
	}

	if ApplyViewport(e, 400, 300) {
		t.Error("the same size should not count as a change")
	}

	ApplyViewport(e, 0, 0)
	vp := GetOrCreateViewport(e)
	if vp.Width != 800 || vp.Height != 600 {
		t.Errorf("zero size = %vx%v, want the 800x600 fallback", vp.Width, vp.Height)
	}
}
