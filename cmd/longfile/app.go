package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/desertwitch/longfile/internal/configuration"
	"github.com/desertwitch/longfile/internal/filesystem"
	lfio "github.com/desertwitch/longfile/internal/io"
	"github.com/desertwitch/longfile/internal/redirect"
)

type App struct {
	fsHandler *filesystem.Handler
	ioHandler *lfio.Handler
	mover     *redirect.Mover
	config    *configuration.AppConfiguration
	out       io.Writer
	now       func() time.Time
}

func NewApp(fsHandler *filesystem.Handler,
	ioHandler *lfio.Handler,
	mover *redirect.Mover,
	config *configuration.AppConfiguration,
	out io.Writer,
) *App {
	return &App{
		fsHandler: fsHandler,
		ioHandler: ioHandler,
		mover:     mover,
		config:    config,
		out:       out,
		now:       time.Now,
	}
}

type command struct {
	usage string
	args  []int
	run   func(app *App, ctx context.Context, args []string) error
}

//nolint:gochecknoglobals
var commands = map[string]command{
	"exists":   {"exists PATH", []int{1}, (*App).exists},
	"cat":      {"cat PATH", []int{1}, (*App).cat},
	"lines":    {"lines PATH", []int{1}, (*App).lines},
	"write":    {"write PATH TEXT", []int{2}, (*App).write},
	"append":   {"append PATH TEXT", []int{2}, (*App).append},
	"cp":       {"cp [-f] SRC DST", []int{2, 3}, (*App).copy},
	"mv":       {"mv SRC DST", []int{2}, (*App).move},
	"rm":       {"rm PATH", []int{1}, (*App).remove},
	"attrib":   {"attrib PATH [ATTR,...]", []int{1, 2}, (*App).attrib},
	"touch":    {"touch [-field creation|access|write] [-time RFC3339] PATH", []int{1, 2, 3, 4, 5}, (*App).touch},
	"stat":     {"stat PATH", []int{1}, (*App).stat},
	"fullpath": {"fullpath PATH", []int{1}, (*App).fullpath},
	"hash":     {"hash PATH", []int{1}, (*App).hash},
	"mkdir":    {"mkdir PATH", []int{1}, (*App).mkdir},
	"rmdir":    {"rmdir PATH", []int{1}, (*App).rmdir},
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Run executes the command named by the first argument.
func (app *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("(app) %w: no command given (one of %s)", ErrUsage, strings.Join(commandNames(), ", "))
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("(app) %w: %s", ErrUnknownCommand, args[0])
	}

	if !slices.Contains(cmd.args, len(args)-1) {
		return fmt.Errorf("(app) %w: usage: %s", ErrUsage, cmd.usage)
	}

	if err := cmd.run(app, ctx, args[1:]); err != nil {
		if errors.Is(err, ErrUsage) {
			return fmt.Errorf("(app-%s) %w (usage: %s)", args[0], err, cmd.usage)
		}

		return fmt.Errorf("(app-%s) %w", args[0], err)
	}

	return nil
}
