package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"chunkwise/internal/cli"
	"chunkwise/internal/service"
	"chunkwise/internal/visualize"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(service.NewVisualization(visualize.DefaultTheme))
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
