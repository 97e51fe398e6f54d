package components

import (
	"github.com/automoto/runngun/shared/leveldata"
	"github.com/yohamta/donburi"
)

type HeroData struct {
	FacingX      float64
	Aim          float64 // degrees
	InvulnFrames int
	Lives        int
	MaxLives     int

	// Weapon is the last powerup picked up; empty means the basic rifle.
	Weapon leveldata.PowerupKind

	// Held directions from the last input sample, used by the view.
	Moving, AimUp, AimDown bool
}

var Hero = donburi.NewComponentType[HeroData]()
