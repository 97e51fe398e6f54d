package factory

import (
	"fmt"

	"github.com/automoto/runngun/archetypes"
	"github.com/automoto/runngun/components"
	"github.com/automoto/runngun/shared/collision"
	"github.com/automoto/runngun/shared/leveldata"
	"github.com/automoto/runngun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformConfig places one static surface.
type PlatformConfig struct {
	Surface    leveldata.PlatformKind
	X, Y, W, H float64
}

// BridgeConfig places one collapsing bridge segment watching Target.
type BridgeConfig struct {
	X, Y, W, H float64
	Target     *donburi.Entry
}

// surfaceKinds maps level surfaces to their collision behavior.
var surfaceKinds = map[leveldata.PlatformKind]struct {
	kind   collision.Kind
	isStep bool
}{
	leveldata.PlatformPlain:    {kind: collision.KindPlatform},
	leveldata.PlatformBox:      {kind: collision.KindBox},
	leveldata.PlatformStep:     {kind: collision.KindBox, isStep: true},
	leveldata.PlatformWater:    {kind: collision.KindBox},
	leveldata.PlatformBossWall: {kind: collision.KindBox},
	leveldata.PlatformBridge:   {kind: collision.KindBridge},
}

// CreatePlatform spawns a static surface and registers it for collision.
// Bridges must go through CreateBridge.
func CreatePlatform(ecs *ecs.ECS, c PlatformConfig) *donburi.Entry {
	sk, ok := surfaceKinds[c.Surface]
	if !ok || c.Surface == leveldata.PlatformBridge {
		panic(fmt.Sprintf("factory: cannot create platform of kind %q", c.Surface))
	}

	platform := archetypes.Platform.Spawn(ecs)
	components.Platform.SetValue(platform, components.PlatformData{
		Kind:    sk.kind,
		IsStep:  sk.isStep,
		Surface: c.Surface,
	})
	setupSurface(ecs, platform, c.X, c.Y, c.W, c.H, sk.kind)
	return platform
}

// CreateBridge spawns a bridge segment that collapses when its target comes
// close.
func CreateBridge(ecs *ecs.ECS, c BridgeConfig) *donburi.Entry {
	bridge := archetypes.Bridge.Spawn(ecs)
	data := components.PlatformData{
		Kind:    collision.KindBridge,
		Surface: leveldata.PlatformBridge,
	}
	data.SetTarget(c.Target)
	components.Platform.SetValue(bridge, data)
	setupSurface(ecs, bridge, c.X, c.Y, c.W, c.H, collision.KindBridge)
	return bridge
}

func setupSurface(ecs *ecs.ECS, e *donburi.Entry, x, y, w, h float64, kind collision.Kind) {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	if kind == collision.KindBox {
		obj.AddTags(tags.ResolvSolid)
	}
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	components.Entity.SetValue(e, components.EntityData{Active: true})
	components.View.SetValue(e, components.NewView())
	addToSpace(ecs, obj)

	registerPlatform(ecs, e)
}

func registerPlatform(ecs *ecs.ECS, e *donburi.Entry) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	components.PlatformRegistry.Get(levelEntry).Add(e)
}
