// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gogpu/spotlight"
)

// Exit codes returned by Main.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Main parses args, configures logging and runs ex until it completes or
// the process is interrupted. It returns the process exit code.
func Main(ex spotlight.Example, args []string) int {
	name := filepath.Base(os.Args[0])
	cfg, err := ParseFlags(name, args, os.Stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case err != nil:
		// The flag package has already reported parse errors.
		if errors.Is(err, ErrInvalidConfig) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		}
		return ExitUsage
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: open log: %v\n", name, err)
		return ExitError
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx, ex, cfg); err != nil && !errors.Is(err, context.Canceled) {
		// Printed after the terminal, if any, has been restored.
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return ExitError
	}
	return ExitOK
}

// setupLogging installs a text logger for spotlight per cfg and returns a
// function releasing the log file, if any.
func setupLogging(cfg Config) (func(), error) {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec // user-provided path
		if err != nil {
			return nil, err
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case cfg.Mode == ModeTerm:
		// The terminal is the display.
		spotlight.SetLogger(nil)
		return closeFn, nil
	}

	spotlight.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return func() {
		spotlight.SetLogger(nil)
		closeFn()
	}, nil
}
