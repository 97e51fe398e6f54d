package systems

import (
	"github.com/automoto/runngun/components"
	"github.com/automoto/runngun/shared/collision"
	"github.com/automoto/runngun/shared/gamemath"
	"github.com/automoto/runngun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatformCollisions resolves the hero, then every live gravitable
// enemy, against the registered platforms in creation order.
func UpdatePlatformCollisions(ecs *ecs.ECS) {
	registry := getRegistry(ecs)
	if registry == nil {
		return
	}

	set := surfaceSet{
		entries:  make([]*donburi.Entry, 0, len(registry.Entries)),
		surfaces: make([]collision.Surface, 0, len(registry.Entries)),
	}
	for _, p := range registry.Entries {
		if !p.Valid() || !components.Entity.Get(p).Alive() {
			continue
		}
		data := components.Platform.Get(p)
		set.entries = append(set.entries, p)
		set.surfaces = append(set.surfaces, collision.Surface{
			Box:    components.Object.Get(p).CollisionBox(),
			Kind:   data.Kind,
			IsStep: data.IsStep,
		})
	}

	if hero, ok := tags.Hero.First(ecs.World); ok {
		collideBody(hero, set)
	}
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		collideBody(e, set)
	})
}

// surfaceSet pairs each collision surface with the platform it came from.
type surfaceSet struct {
	entries  []*donburi.Entry
	surfaces []collision.Surface
}

func collideBody(e *donburi.Entry, set surfaceSet) {
	entity := components.Entity.Get(e)
	if !entity.Gravitable || !entity.Alive() {
		return
	}

	b := &body{
		obj:       components.Object.Get(e),
		physics:   components.Physics.Get(e),
		platforms: set.entries,
	}
	b.physics.Ground = nil
	collision.ApplyAll(b, set.surfaces)
	b.obj.Update()
}

// body adapts an entity's object and physics to collision.Body.
type body struct {
	obj       *components.ObjectData
	physics   *components.PhysicsData
	platforms []*donburi.Entry
	surface   *donburi.Entry
}

func (b *body) CollisionBox() gamemath.Rect { return b.obj.CollisionBox() }
func (b *body) PrevPoint() gamemath.Point { return b.physics.Prev }
func (b *body) SetX(x float64) { b.obj.X = x }
func (b *body) SetY(y float64) { b.obj.Y = y }
func (b *body) IsJumpState() bool { return b.physics.IsJumpState() }
func (b *body) Resolving(i int) { b.surface = b.platforms[i] }

func (b *body) Stay(y float64) {
	stay(b.physics, b.obj, y)
	b.physics.Ground = b.surface
}
