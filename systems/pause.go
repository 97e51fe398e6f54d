package systems

import (
	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause. This system should run AFTER the input system
// but BEFORE the gameplay systems.
func UpdatePause(ecs *ecs.ECS) {
	level := getLevel(ecs)
	if level == nil || level.GameOver {
		return
	}
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionPause).JustPressed {
		level.Paused = !level.Paused
	}
}

// WithGameplayChecks wraps a system to skip execution while paused or after
// the game is over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if level := getLevel(e); level != nil && (level.Paused || level.GameOver) {
			return
		}
		system(e)
	}
}

// UpdateTick advances the level tick counter of the running game.
func UpdateTick(ecs *ecs.ECS) {
	if level := getLevel(ecs); level != nil {
		level.Tick++
	}
}

func getLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func getRegistry(ecs *ecs.ECS) *components.PlatformRegistryData {
	entry, ok := components.PlatformRegistry.First(ecs.World)
	if !ok {
		return nil
	}
	return components.PlatformRegistry.Get(entry)
}

func getCamera(ecs *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}
