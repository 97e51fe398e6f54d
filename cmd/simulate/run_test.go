package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/runngun/assets"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/scenes"
)

func TestSummaryReportsCameraOffset(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	level, err := assets.NewLevelLoader().Resolve("")
	require.NoError(t, err)
	input, err := loadScript("testdata/walk-right.yaml")
	require.NoError(t, err)

	world := scenes.NewSimulation(level, input, 1)
	for i := 0; i < 300; i++ {
		world.Update()
	}
	s := snapshot(world)
	require.Negative(t, s.offsetX, "walking right should scroll the camera")
	assert.Zero(t, s.offsetY, "vertical scrolling is off by default")

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	printSummary(cmd, level.Name, 300, s)

	assert.Contains(t, out.String(), fmt.Sprintf("camera:    x=%.1f y=%.1f\n", s.offsetX, s.offsetY))
	assert.Contains(t, out.String(), "ticks:     300\n")
}

func TestSnapshotDefaultsToRifle(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	level, err := assets.NewLevelLoader().Resolve("")
	require.NoError(t, err)

	s := snapshot(scenes.NewSimulation(level, &scriptSource{}, 1))
	assert.Equal(t, "rifle", s.weapon)
	assert.Equal(t, cfg.Hero.StartingLives, s.lives)
}
