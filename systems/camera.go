package systems

import (
	"github.com/automoto/runngun/components"
	"github.com/automoto/runngun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the hero. It runs after everything that moves or
// culls, so culling this tick used last tick's view.
func UpdateCamera(e *ecs.ECS) {
	camera := getCamera(e)
	if camera == nil {
		return
	}
	heroEntry, ok := tags.Hero.First(e.World)
	if !ok {
		return
	}
	camera.Update(components.Object.Get(heroEntry).Position())
}
