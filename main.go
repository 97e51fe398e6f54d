package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/runngun/assets"
	"github.com/automoto/runngun/config"
	"github.com/automoto/runngun/fonts"
	"github.com/automoto/runngun/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", assets.DefaultLevel, "Embedded level name or path to a .yaml/.tmx level")
	configPath := flag.String("config", "", "Path to YAML config overrides")
	seed := flag.Uint64("seed", 0, "RNG seed for enemy decisions (0 = config seed)")
	debug := flag.Bool("debug", false, "Draw collision boxes and debug text")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runngun",
	})
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal("bad log level", "err", err)
	}
	logger.SetLevel(level)
	log.SetDefault(logger)

	if err := config.LoadOverrides(*configPath); err != nil {
		log.Fatal("could not load config", "err", err)
	}
	if *debug {
		config.Debug.DrawHitboxes = true
	}
	if *seed != 0 {
		config.Debug.Seed = *seed
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		log.Fatal("could not load fonts", "err", err)
	}

	lvl, err := assets.NewLevelLoader().Resolve(*levelName)
	if err != nil {
		log.Fatal("could not load level", "level", *levelName, "err", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("runngun - " + lvl.Name)
	ebiten.SetTPS(config.C.TickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(scenes.NewPlatformerScene(lvl, config.Debug.Seed))); err != nil {
		log.Fatal(err)
	}
}
