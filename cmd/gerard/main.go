package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/c-a-ray/gerard/internal/cli"
	"github.com/c-a-ray/gerard/internal/core"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := core.NewConfig()
	root := cli.NewRootCmd(cfg)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
