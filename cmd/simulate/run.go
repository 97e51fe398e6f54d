package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/runngun/assets"
	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/scenes"
	"github.com/automoto/runngun/sim"
	"github.com/automoto/runngun/tags"
)

var (
	flagTicks       int
	flagScript      string
	flagSeed        uint64
	flagRealtime    bool
	flagTickRate    int
	flagReportEvery int
)

var runCmd = &cobra.Command{
	Use:   "run [level]",
	Short: "Run a level and print a summary",
	Long: `Run an embedded level by name, or a .yaml/.tmx level file by path.
Without a level the default level is used.

The run stops after --ticks ticks or when the game is over.

Examples:
  simulate run
  simulate run jungle --ticks 1200 --script walk.yaml
  simulate run ./levels/test.yaml --realtime --tickrate 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to simulate")
	runCmd.Flags().StringVar(&flagScript, "script", "", "Path to input script YAML")
	runCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed for enemy decisions (0 = config seed)")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks on a wall clock")
	runCmd.Flags().IntVar(&flagTickRate, "tickrate", 0, "Ticks per second for --realtime (0 = config tick rate)")
	runCmd.Flags().IntVar(&flagReportEvery, "report-every", 0, "Log hero state every N ticks (0 = never)")
}

func runRun(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	level, err := assets.NewLevelLoader().Resolve(name)
	if err != nil {
		return err
	}
	input, err := loadScript(flagScript)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = cfg.Debug.Seed
	}
	tickRate := flagTickRate
	if tickRate == 0 {
		tickRate = cfg.C.TickRate
	}

	world := scenes.NewSimulation(level, input, seed)
	loop := sim.NewGameLoop(world, tickRate)
	loop.SetLogger(logger)
	loop.SetMaxTicks(flagTicks)
	loop.OnTick(func(tick int) bool {
		s := snapshot(world)
		if flagReportEvery > 0 && tick%flagReportEvery == 0 {
			logger.Info("tick", "tick", tick, "x", s.heroX, "y", s.heroY, "lives", s.lives, "bullets", s.bullets)
		}
		return !s.gameOver
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("running level", "level", level.Name, "ticks", flagTicks, "seed", seed, "realtime", flagRealtime)
	if flagRealtime {
		err = loop.Run(ctx)
	} else {
		err = loop.RunFast(ctx)
	}
	if err != nil && ctx.Err() == nil {
		return err
	}

	printSummary(cmd, level.Name, loop.Ticks(), snapshot(world))
	return nil
}

type worldSnapshot struct {
	heroX, heroY     float64
	lives            int
	weapon           string
	offsetX, offsetY float64
	enemies          int
	bullets          int
	gameOver         bool
}

func snapshot(world *ecs.ECS) worldSnapshot {
	var s worldSnapshot
	if hero, ok := tags.Hero.First(world.World); ok {
		obj := components.Object.Get(hero)
		s.heroX, s.heroY = obj.X, obj.Y
		data := components.Hero.Get(hero)
		s.lives = data.Lives
		s.weapon = string(data.Weapon)
	}
	if s.weapon == "" {
		s.weapon = "rifle"
	}
	if entry, ok := components.Camera.First(world.World); ok {
		camera := components.Camera.Get(entry)
		s.offsetX, s.offsetY = camera.OffsetX, camera.OffsetY
	}
	tags.Enemy.Each(world.World, func(*donburi.Entry) { s.enemies++ })
	tags.Bullet.Each(world.World, func(*donburi.Entry) { s.bullets++ })
	if entry, ok := components.Level.First(world.World); ok {
		s.gameOver = components.Level.Get(entry).GameOver
	}
	return s
}

func printSummary(cmd *cobra.Command, level string, ticks int, s worldSnapshot) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "level:     %s\n", level)
	fmt.Fprintf(out, "ticks:     %d\n", ticks)
	fmt.Fprintf(out, "hero:      x=%.1f y=%.1f lives=%d weapon=%s\n", s.heroX, s.heroY, s.lives, s.weapon)
	fmt.Fprintf(out, "camera:    x=%.1f y=%.1f\n", s.offsetX, s.offsetY)
	fmt.Fprintf(out, "enemies:   %d\n", s.enemies)
	fmt.Fprintf(out, "bullets:   %d\n", s.bullets)
	fmt.Fprintf(out, "game over: %t\n", s.gameOver)
}
