package systems

import (
	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE every system that reads input.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	pollInput(input, ebiten.IsKeyPressed, gamepadPressed)

	for i, key := range cfg.Input.TopicKeys {
		if inpututil.IsKeyJustPressed(key) {
			input.TopicKey = i + 1
		}
	}
}

// pollInput swaps the frame buffers, reads every binding and records the
// actions that went down this frame.
func pollInput(input *components.InputData, keyPressed func(ebiten.Key) bool, buttonPressed func(ebiten.StandardGamepadButton) bool) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if keyPressed(key) {
				input.Current[actionID] = true
			}
		}
		if buttonPressed == nil {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if buttonPressed(btn) {
				input.Current[actionID] = true
			}
		}
	}

	for id := range input.Current {
		if input.Current[id] && !input.Previous[id] {
			input.JustPressed[id] = true
		}
	}
}

func gamepadPressed(btn ebiten.StandardGamepadButton) bool {
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
			return true
		}
	}
	return false
}

// ClearJustPressed forgets this frame's just-pressed actions.
// Must be the LAST system of the tick.
func ClearJustPressed(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.JustPressed = [cfg.ActionCount]bool{}
	input.TopicKey = 0
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

func IsMovingLeft(input *components.InputData) bool {
	return input.Current[cfg.ActionMoveLeft] || input.Virtual.Left
}

func IsMovingRight(input *components.InputData) bool {
	return input.Current[cfg.ActionMoveRight] || input.Virtual.Right
}

func IsJumping(input *components.InputData) bool {
	return input.Current[cfg.ActionJump] || input.Virtual.Jump
}

// WasJustPressed reports whether the action went down during this frame.
func WasJustPressed(input *components.InputData, id cfg.ActionID) bool {
	return input.JustPressed[id]
}

// ReleaseVirtual clears every on-screen control flag.
func ReleaseVirtual(input *components.InputData) {
	input.Virtual = components.VirtualButtons{}
}
