package components

import (
	"github.com/automoto/runngun/shared/leveldata"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind    leveldata.EnemyKind
	FacingX float64
}

var Enemy = donburi.NewComponentType[EnemyData]()

type RunnerData struct {
	Speed            float64
	JumpForce        float64
	JumpBehaviorKoef float64 // chance to jump instead of falling off an edge
}

var Runner = donburi.NewComponentType[RunnerData]()

type TourelleData struct {
	Cooldown int // frames between shots
	Timer    int
	Aim      float64 // degrees
}

var Tourelle = donburi.NewComponentType[TourelleData]()
