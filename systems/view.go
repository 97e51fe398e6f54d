package systems

import (
	"github.com/automoto/runngun/components"
	"github.com/automoto/runngun/shared/leveldata"
	"github.com/automoto/runngun/shared/visual"
	"github.com/automoto/runngun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVisualStates picks the pose renderers draw for each character.
func UpdateVisualStates(ecs *ecs.ECS) {
	if heroEntry, ok := tags.Hero.First(ecs.World); ok {
		hero := components.Hero.Get(heroEntry)
		in := motionInput(heroEntry)
		in.Moving = hero.Moving
		in.Up = hero.AimUp
		in.Down = hero.AimDown
		view := components.View.Get(heroEntry)
		view.State = visual.Next(view.State, in)
	}

	tags.Runner.Each(ecs.World, func(e *donburi.Entry) {
		in := motionInput(e)
		in.Moving = components.Physics.Get(e).SpeedX != 0
		view := components.View.Get(e)
		view.State = visual.Next(view.State, in)
	})
}

func motionInput(e *donburi.Entry) visual.Input {
	physics := components.Physics.Get(e)
	return visual.Input{
		Jumping: physics.Motion == components.MotionJump,
		Falling: physics.Motion == components.MotionFlyDown,
		InWater: InWater(physics),
		Dead:    components.Entity.Get(e).Dead,
	}
}

// InWater reports whether a body is resting on water.
func InWater(physics *components.PhysicsData) bool {
	if physics.Motion != components.MotionStay || physics.Ground == nil || !physics.Ground.Valid() {
		return false
	}
	return components.Platform.Get(physics.Ground).Surface == leveldata.PlatformWater
}
