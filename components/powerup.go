package components

import (
	"github.com/automoto/runngun/shared/leveldata"
	"github.com/yohamta/donburi"
)

type PowerupData struct {
	Kind leveldata.PowerupKind
}

var Powerup = donburi.NewComponentType[PowerupData]()
