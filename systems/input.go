package systems

import (
	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports which actions are held this tick.
type InputSource interface {
	Poll(current *[cfg.ActionCount]bool)
}

// KeyboardSource polls ebiten keyboard and gamepad state through the
// configured bindings.
type KeyboardSource struct {
	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
}

func (k *KeyboardSource) Poll(current *[cfg.ActionCount]bool) {
	k.gamepadIDs = ebiten.AppendGamepadIDs(k.gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
			}
		}

		for _, gpID := range k.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
				}
			}
		}
	}

	left, right, up, down := analogStickState(k.gamepadIDs)
	current[cfg.ActionMoveLeft] = current[cfg.ActionMoveLeft] || left
	current[cfg.ActionMoveRight] = current[cfg.ActionMoveRight] || right
	current[cfg.ActionMoveUp] = current[cfg.ActionMoveUp] || up
	current[cfg.ActionMoveDown] = current[cfg.ActionMoveDown] || down
}

// analogStickState reads the left analog stick from all gamepads.
func analogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return left, right, up, down
}

// NewInputSystem samples src once per tick into the Input component.
// Must run BEFORE UpdateHero in the system order.
func NewInputSystem(src InputSource) ecs.System {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		src.Poll(&input.Current)
	}
}

// GetAction returns the ActionState for an action ID.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Input))
		components.Input.SetValue(ent, components.InputData{})
	}

	ent, _ := components.Input.First(ecs.World)
	return components.Input.Get(ent)
}
