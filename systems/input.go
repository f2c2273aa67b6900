package systems

import (
	"github.com/automoto/propertyanimation/components"
	cfg "github.com/automoto/propertyanimation/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and every standard-layout gamepad into the
// InputData singleton.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	PollInput(ecs, func(b cfg.InputBinding) bool {
		for _, key := range b.Keys {
			if ebiten.IsKeyPressed(key) {
				return true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range b.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					return true
				}
			}
		}
		return false
	})
}

// PollInput swaps the input buffers and records which bindings pressed reports as held.
func PollInput(ecs *ecs.ECS, pressed func(cfg.InputBinding) bool) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		if pressed(binding) {
			input.Current[actionID] = true
		}
	}
}

// JustPressedActions returns the actions that went down this frame, in action order.
func JustPressedActions(ecs *ecs.ECS) []cfg.ActionID {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return nil
	}
	input := components.Input.Get(entry)

	var pressed []cfg.ActionID
	for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
		if GetAction(input, id).JustPressed {
			pressed = append(pressed, id)
		}
	}
	return pressed
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
