// Package main is the CLI entry point for the survey analyzer.
//
// One-shot commands: structure, search, subset, distribution.
// Long-running: repl (interactive mode) and serve (JSON API).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"survey-analyzer/internal/commands"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
