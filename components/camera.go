package components

import (
	"github.com/automoto/runngun/shared/camera"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	*camera.Tracker
}

var Camera = donburi.NewComponentType[CameraData]()
