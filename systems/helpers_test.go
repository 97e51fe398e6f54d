package systems

import (
	"testing"

	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/shared/leveldata"
	"github.com/automoto/runngun/systems/factory"
	"github.com/automoto/runngun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fakeInput holds the actions returned by held for each polled tick.
type fakeInput struct {
	tick int
	held func(tick int) []cfg.ActionID
}

func (f *fakeInput) Poll(current *[cfg.ActionCount]bool) {
	if f.held != nil {
		for _, id := range f.held(f.tick) {
			current[id] = true
		}
	}
	f.tick++
}

func holdAlways(ids ...cfg.ActionID) *fakeInput {
	return &fakeInput{held: func(int) []cfg.ActionID { return ids }}
}

func pressAt(at int, ids ...cfg.ActionID) *fakeInput {
	return &fakeInput{held: func(tick int) []cfg.ActionID {
		if tick == at {
			return ids
		}
		return nil
	}}
}

// newTestWorld returns an empty world with a space, level, input and camera.
func newTestWorld(t *testing.T, width, height float64) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	level := &leveldata.Level{Name: "test", Width: width, Height: height}
	factory.CreateSpace(e, int(width), int(height), 128, 128)
	factory.CreateLevel(e, level, 1)
	factory.CreateInput(e)
	factory.CreateCamera(e, level)
	return e
}

var physicsSystems = []ecs.System{UpdateHero, UpdateRunners, UpdatePlatformCollisions}

func runTicks(e *ecs.ECS, n int, src InputSource, systems ...ecs.System) {
	poll := NewInputSystem(src)
	for i := 0; i < n; i++ {
		poll(e)
		for _, system := range systems {
			system(e)
		}
	}
}

func platform(e *ecs.ECS, kind leveldata.PlatformKind, x, y, w, h float64) *donburi.Entry {
	return factory.CreatePlatform(e, factory.PlatformConfig{Surface: kind, X: x, Y: y, W: w, H: h})
}

func activeRunner(e *ecs.ECS, x, y float64) *donburi.Entry {
	r := factory.CreateRunner(e, factory.RunnerConfig{X: x, Y: y})
	components.Entity.Get(r).Active = true
	return r
}

func countBullets(e *ecs.ECS) int {
	n := 0
	tags.Bullet.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
