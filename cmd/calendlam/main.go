package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/calendlam/calendlam/internal/adapters/driving/cli"
)

// version is set by the linker: -ldflags "-X main.version=..."
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
