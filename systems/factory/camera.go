package factory

import (
	"github.com/automoto/runngun/archetypes"
	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/shared/camera"
	"github.com/automoto/runngun/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera for level using the global camera settings.
func CreateCamera(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)
	c := camera.Config{
		ScreenWidth:  float64(cfg.C.Width),
		ScreenHeight: float64(cfg.C.Height),
		WorldWidth:   level.Width,
		WorldHeight:  level.Height,
		BackScrollX:  cfg.Camera.BackScrollX,
		ScrollY:      cfg.Camera.ScrollY,
	}.CenterAnchor()
	if cfg.Camera.AnchorX != nil {
		c.AnchorX = *cfg.Camera.AnchorX
	}
	if cfg.Camera.AnchorY != nil {
		c.AnchorY = *cfg.Camera.AnchorY
	}
	tracker := camera.NewTracker(c)
	components.Camera.Set(entry, &components.CameraData{Tracker: tracker})
	return entry
}
