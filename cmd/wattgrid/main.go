package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wattgrid-hq/wattgrid-client/cmd/wattgrid/app"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wattgrid: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.NewWattGridCommand().ExecuteContext(ctx)
}
