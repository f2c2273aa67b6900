package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical demo action
type ActionID int

// Actions are in button bar order
const (
	ActionNone ActionID = iota
	ActionRotate
	ActionTranslate
	ActionScale
	ActionFade
	ActionColorize
	ActionShower
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// ButtonIndex is the position of the action's button in the bar, or -1 for none.
func (a ActionID) ButtonIndex() int {
	if a <= ActionNone || a > ActionShower {
		return -1
	}
	return int(a) - 1
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionRotate: {
				Keys: []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyR},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionTranslate: {
				Keys: []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyT},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionScale: {
				Keys: []ebiten.Key{ebiten.KeyDigit3, ebiten.KeyS},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionFade: {
				Keys: []ebiten.Key{ebiten.KeyDigit4, ebiten.KeyF},
				// Left bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionColorize: {
				Keys: []ebiten.Key{ebiten.KeyDigit5, ebiten.KeyC},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionShower: {
				Keys: []ebiten.Key{ebiten.KeyDigit6, ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
