package main

import (
	"log/slog"
	"os"

	"github.com/sofmeright/buildmatrix/src/cli/cmd"
)

func main() {
	// Minimal logger until the root command applies --verbose.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
