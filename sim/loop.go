// Package sim drives a world at a fixed tick rate, either paced by a wall
// clock ticker or as fast as the host allows.
package sim

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
)

var ErrInvalidTickRate = errors.New("tick rate must be positive")

// World is advanced one tick per Update. *ecs.ECS satisfies it.
type World interface {
	Update()
}

// TickFunc runs after every tick. Returning false stops the loop.
type TickFunc func(tick int) bool

type GameLoop struct {
	world    World
	tickRate int
	maxTicks int
	onTick   TickFunc
	ticks    int
	logger   *log.Logger
}

func NewGameLoop(world World, tickRate int) *GameLoop {
	return &GameLoop{
		world:    world,
		tickRate: tickRate,
		logger:   log.Default(),
	}
}

// SetMaxTicks stops the loop after n ticks. Zero runs until stopped.
func (g *GameLoop) SetMaxTicks(n int) { g.maxTicks = n }

func (g *GameLoop) OnTick(fn TickFunc) { g.onTick = fn }

func (g *GameLoop) SetLogger(l *log.Logger) { g.logger = l }

// Ticks returns how many ticks have run.
func (g *GameLoop) Ticks() int { return g.ticks }

// Run ticks on a wall clock ticker until ctx is done, the tick limit is
// reached or the tick hook stops it. It returns ctx.Err() on cancellation.
func (g *GameLoop) Run(ctx context.Context) error {
	if g.tickRate <= 0 {
		return ErrInvalidTickRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.logger.Info("game loop started", "tickRate", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			g.logger.Info("game loop stopped", "ticks", g.ticks)
			return ctx.Err()
		case <-ticker.C:
			if !g.tick() {
				g.logger.Info("game loop finished", "ticks", g.ticks)
				return nil
			}
		}
	}
}

// RunFast ticks back to back without pacing. It checks ctx between ticks.
func (g *GameLoop) RunFast(ctx context.Context) error {
	if g.maxTicks <= 0 && g.onTick == nil {
		return errors.New("fast loop needs a tick limit or a tick hook")
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !g.tick() {
			return nil
		}
	}
}

func (g *GameLoop) tick() bool {
	g.world.Update()
	g.ticks++

	if g.onTick != nil && !g.onTick(g.ticks) {
		return false
	}
	return g.maxTicks <= 0 || g.ticks < g.maxTicks
}
