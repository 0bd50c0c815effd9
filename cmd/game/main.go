package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/trajectory/internal/config"
	"github.com/tomz197/trajectory/internal/logging"
	"github.com/tomz197/trajectory/internal/loop"
	"golang.org/x/term"
)

func main() {
	settings, err := config.Load(config.GetEnv("SIM_CONFIG", ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	// Stdout is the canvas, so logs go to a file when one is configured
	logger, closer, err := logging.OpenFile(settings.LogFile, settings.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(ctx, reader, os.Stdout, loop.Options{
		Settings: settings,
		Logger:   logger,
	}); err != nil {
		_ = term.Restore(fd, oldState)
		logger.Error("simulation stopped", "err", err)
		fmt.Fprintf(os.Stderr, "simulation error: %v\n", err)
		os.Exit(1)
	}
}
