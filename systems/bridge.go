package systems

import (
	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBridges collapses every bridge whose target has come within
// ActivationDistance of its left edge. A collapsed bridge leaves the
// platform registry at once and fades out like any other death.
func UpdateBridges(ecs *ecs.ECS) {
	registry := getRegistry(ecs)

	var collapsed []*donburi.Entry
	tags.Bridge.Each(ecs.World, func(e *donburi.Entry) {
		if components.Entity.Get(e).Dead {
			return
		}
		target := components.Platform.Get(e).Target
		if target == nil || !target.Valid() {
			return
		}
		targetObj := components.Object.Get(target)
		obj := components.Object.Get(e)
		if targetObj.X+targetObj.W+cfg.Bridge.ActivationDistance > obj.X {
			collapsed = append(collapsed, e)
		}
	})

	for _, e := range collapsed {
		Kill(e)
		if registry != nil {
			registry.Remove(e)
		}
		log.Debug("bridge collapsed", "x", components.Object.Get(e).X)
	}
}
