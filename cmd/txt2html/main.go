// Package main is the txt2html CLI executable.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/corvid-labs/txt2html/internal/command"
)

func main() { os.Exit(run()) }

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := command.RootCommand().ExecuteContext(ctx)
	if err != nil {
		return 1
	}
	return 0
}
