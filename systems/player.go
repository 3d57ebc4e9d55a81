package systems

import (
	"math"

	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerIntent is what the input asks of the player this tick.
type PlayerIntent struct {
	Left, Right, Jump bool
}

func intentFrom(input *components.InputData) PlayerIntent {
	return PlayerIntent{
		Left:  IsMovingLeft(input),
		Right: IsMovingRight(input),
		Jump:  IsJumping(input),
	}
}

func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	clock := GetOrCreateClock(ecs)
	vp := GetOrCreateViewport(ecs)

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		playerObject := components.Object.Get(playerEntry).Object

		stepPlayer(player, physics, playerObject, intentFrom(input), clock.Delta, vp.Width, vp.Height)
		playerObject.Update()
	})
}

// stepPlayer integrates one tick of movement. Speeds are per second and
// dt is in seconds.
func stepPlayer(player *components.PlayerData, physics *components.PhysicsData, obj *resolv.Object, intent PlayerIntent, dt, worldWidth, worldHeight float64) {
	// Horizontal: right wins when both are held
	switch {
	case intent.Right:
		physics.SpeedX = cfg.Player.MaxSpeed
		player.FacingRight = true
	case intent.Left:
		physics.SpeedX = -cfg.Player.MaxSpeed
		player.FacingRight = false
	default:
		physics.SpeedX = 0
	}

	obj.X += physics.SpeedX * dt
	obj.X = gamemath.Clamp(obj.X, 0, worldWidth-obj.W)

	// Vertical
	if intent.Jump && physics.Grounded {
		physics.SpeedY -= cfg.Player.JumpForce
	}
	obj.Y += physics.SpeedY * dt
	if !physics.Grounded {
		physics.SpeedY += cfg.Player.Gravity * dt
	}

	ground := groundLine(worldHeight)
	if obj.Y >= ground-obj.H-cfg.Player.GroundBuffer {
		obj.Y = ground - obj.H
		physics.SpeedY = 0
		physics.Grounded = true
	} else {
		physics.Grounded = false
	}

	player.Variant = variantFor(physics)
	player.ShadowScale = shadowScaleFor(physics, obj, worldHeight)
}

func groundLine(worldHeight float64) float64 {
	return worldHeight - cfg.Player.GroundOffset
}

func variantFor(physics *components.PhysicsData) cfg.StateID {
	switch {
	case !physics.Grounded:
		return cfg.Jump
	case math.Abs(physics.SpeedX) > cfg.Player.RunThreshold:
		return cfg.Running
	default:
		return cfg.Idle
	}
}

// shadowScaleFor is 1 on the ground and shrinks with the height above the
// resting position.
func shadowScaleFor(physics *components.PhysicsData, obj *resolv.Object, worldHeight float64) float64 {
	if physics.Grounded {
		return 1
	}
	dist := groundLine(worldHeight) - obj.H - obj.Y
	return gamemath.ShadowScale(dist, cfg.Player.ShadowFalloff, cfg.Player.ShadowMinScale)
}

// UpdatePlayerSize resizes the player box for the viewport width. Must
// run before any clamp that uses the new size.
func UpdatePlayerSize(ecs *ecs.ECS, width float64) {
	size := PlayerSize(width)
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		obj := components.Object.Get(playerEntry).Object
		obj.W = size
		obj.H = size
	})
}

func clampPlayers(ecs *ecs.ECS, width float64) {
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		obj := components.Object.Get(playerEntry).Object
		obj.X = gamemath.Clamp(obj.X, 0, width-obj.W)
	})
}
