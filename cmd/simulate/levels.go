package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automoto/runngun/assets"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List embedded levels",
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	levels, names := assets.NewLevelLoader().MustLoadLevels()

	maxNameLen := 4 // "Name" header
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-*s  %8s  %9s  %7s\n", maxNameLen, "Name", "Width", "Platforms", "Enemies")
	for i, level := range levels {
		fmt.Fprintf(out, "  %-*s  %8.0f  %9d  %7d\n",
			maxNameLen, names[i], level.Width, len(level.Platforms), len(level.Enemies))
	}
}
