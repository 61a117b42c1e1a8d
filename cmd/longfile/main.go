package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertwitch/longfile/internal/configuration"
	"github.com/desertwitch/longfile/internal/filesystem"
	"github.com/desertwitch/longfile/internal/io"
	"github.com/desertwitch/longfile/internal/redirect"
	"github.com/desertwitch/longfile/internal/schema"
	"github.com/desertwitch/longfile/internal/syscalls"
	"github.com/lmittmann/tint"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	configFile = flag.String("config", "", "read configuration from this KEY=VALUE file")
)

func setupLogging(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, os.Interrupt)

	go func() {
		<-sigChan
		cancel()
	}()
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: longfile [-config file] <command> [args...]\n\nCommands:\n")
	for _, name := range commandNames() {
		fmt.Fprintf(flag.CommandLine.Output(), "  %s\n", commands[name].usage)
	}
	fmt.Fprintf(flag.CommandLine.Output(), "\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Usage = usage
	flag.Parse()
	setupLogging(slog.LevelInfo)
	setupSignalHandlers(cancel)

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	var configFiles []string
	if *configFile != "" {
		configFiles = append(configFiles, *configFile)
	}

	config, err := configHandler.Load(configFiles...)
	if err != nil {
		slog.Error("Failed to load the configuration.",
			"err", err,
		)
		ExitCode = 2

		return
	}
	setupLogging(config.LogLevel)

	fsHandler := filesystem.NewHandler(&schema.OS{}, &syscalls.Native{}, config.Encoding)
	ioHandler := io.NewHandler(fsHandler)
	mover := redirect.NewMover(fsHandler, nil)

	app := NewApp(fsHandler, ioHandler, mover, config, os.Stdout)

	if err := app.Run(ctx, flag.Args()); err != nil {
		slog.Error("Command failed.",
			"version", Version,
			"err", err,
		)
		ExitCode = 1
	}
}
