package systems

import (
	cfg "github.com/automoto/runngun/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system that calls restart when
// restart is pressed after the game is over.
func NewUpdateGameOver(restart func()) ecs.System {
	return func(e *ecs.ECS) {
		level := getLevel(e)
		if level == nil || !level.GameOver {
			return
		}
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionRestart).JustPressed {
			log.Info("restarting level", "level", level.CurrentLevel.Name)
			restart()
		}
	}
}
