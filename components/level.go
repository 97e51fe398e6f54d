package components

import (
	"math/rand/v2"

	"github.com/automoto/runngun/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level

	// Rand drives enemy decisions so runs with the same seed repeat.
	Rand     *rand.Rand
	Tick     int
	Paused   bool
	GameOver bool
}

var Level = donburi.NewComponentType[LevelData]()
