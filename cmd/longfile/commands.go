package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"time"

	"github.com/desertwitch/longfile/internal/schema"
	"github.com/dustin/go-humanize"
)

func (app *App) exists(_ context.Context, args []string) error {
	fmt.Fprintln(app.out, app.fsHandler.Exists(args[0]))

	return nil
}

func (app *App) cat(_ context.Context, args []string) error {
	text, err := app.fsHandler.ReadAllText(args[0], app.config.Encoding)
	if err != nil {
		return err
	}

	fmt.Fprint(app.out, text)

	return nil
}

func (app *App) lines(_ context.Context, args []string) error {
	lines, err := app.fsHandler.ReadAllLines(args[0], app.config.Encoding)
	if err != nil {
		return err
	}

	for i, line := range lines {
		fmt.Fprintf(app.out, "%d: %s\n", i+1, line)
	}

	return nil
}

func (app *App) write(_ context.Context, args []string) error {
	return app.fsHandler.WriteAllText(args[0], args[1], app.config.Encoding)
}

func (app *App) append(_ context.Context, args []string) error {
	return app.fsHandler.AppendAllText(args[0], args[1], app.config.Encoding)
}

func (app *App) copy(ctx context.Context, args []string) error {
	flags := newFlagSet("cp")
	overwrite := flags.Bool("f", false, "replace an existing destination")

	if err := flags.Parse(args); err != nil || flags.NArg() != 2 { //nolint:mnd
		return fmt.Errorf("%w: expected SRC and DST", ErrUsage)
	}

	src, dst := flags.Arg(0), flags.Arg(1)

	if !app.config.VerifyCopies {
		return app.fsHandler.Copy(src, dst, *overwrite)
	}

	sum, err := app.ioHandler.VerifiedCopy(ctx, src, dst, *overwrite)
	if err != nil {
		return err
	}

	slog.Debug("Copy verified:", "src", src, "dst", dst, "blake3", sum)

	return nil
}

func (app *App) move(_ context.Context, args []string) error {
	return app.mover.Move(args[0], args[1])
}

func (app *App) remove(_ context.Context, args []string) error {
	return app.fsHandler.Delete(args[0])
}

func (app *App) attrib(_ context.Context, args []string) error {
	if len(args) == 1 {
		attrs, err := app.fsHandler.GetAttributes(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(app.out, attrs)

		return nil
	}

	attrs, ok := schema.ParseAttributes(args[1])
	if !ok {
		return fmt.Errorf("%w: unknown attributes: %s", ErrUsage, args[1])
	}

	return app.fsHandler.SetAttributes(args[0], attrs)
}

func (app *App) touch(_ context.Context, args []string) error {
	flags := newFlagSet("touch")
	field := flags.String("field", "write", "timestamp to set: creation, access or write")
	stamp := flags.String("time", "", "timestamp in RFC3339 format (default now)")

	if err := flags.Parse(args); err != nil || flags.NArg() != 1 {
		return fmt.Errorf("%w: expected one PATH", ErrUsage)
	}

	path := flags.Arg(0)

	t := app.now()
	if *stamp != "" {
		parsed, err := time.Parse(time.RFC3339, *stamp)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		t = parsed
	}

	var set func(string, time.Time) error

	switch *field {
	case "creation":
		set = app.fsHandler.SetCreationTime
	case "access":
		set = app.fsHandler.SetLastAccessTime
	case "write":
		set = app.fsHandler.SetLastWriteTime
	default:
		return fmt.Errorf("%w: unknown timestamp: %s", ErrUsage, *field)
	}

	if _, err := app.fsHandler.GetAttributes(path); errors.Is(err, fs.ErrNotExist) {
		if err := app.fsHandler.WriteAllBytes(path, nil); err != nil {
			return err
		}
	}

	return set(path, t)
}

func (app *App) stat(_ context.Context, args []string) error {
	path := args[0]

	attrs, err := app.fsHandler.GetAttributes(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.out, "Path:       %s\n", app.fsHandler.GetFullPathName(path))
	fmt.Fprintf(app.out, "Attributes: %s\n", attrs)

	if attrs.Has(schema.AttributeDirectory) {
		return nil
	}

	size, err := app.fileSize(path)
	if err != nil {
		return err
	}

	creation, err := app.fsHandler.GetCreationTime(path)
	if err != nil {
		return err
	}

	access, err := app.fsHandler.GetLastAccessTime(path)
	if err != nil {
		return err
	}

	write, err := app.fsHandler.GetLastWriteTime(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.out, "Size:       %s (%d bytes)\n", humanize.IBytes(uint64(size)), size) //nolint:gosec
	fmt.Fprintf(app.out, "Created:    %s (%s)\n", creation.Format(time.RFC3339), humanize.RelTime(creation, app.now(), "ago", "from now"))
	fmt.Fprintf(app.out, "Accessed:   %s (%s)\n", access.Format(time.RFC3339), humanize.RelTime(access, app.now(), "ago", "from now"))
	fmt.Fprintf(app.out, "Modified:   %s (%s)\n", write.Format(time.RFC3339), humanize.RelTime(write, app.now(), "ago", "from now"))

	return nil
}

func (app *App) fileSize(path string) (int64, error) {
	h, err := app.fsHandler.OpenStream(path, schema.StreamRead)
	if err != nil {
		return 0, err
	}
	defer h.Close()

	size, err := h.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to seek: %w", err)
	}

	return size, nil
}

func (app *App) fullpath(_ context.Context, args []string) error {
	full := app.fsHandler.GetFullPathName(args[0])
	if full == "" {
		return fmt.Errorf("%w: cannot resolve: %s", ErrUsage, args[0])
	}

	fmt.Fprintln(app.out, full)

	return nil
}

func (app *App) hash(ctx context.Context, args []string) error {
	sum, err := app.ioHandler.Checksum(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(app.out, "%s  %s\n", sum, args[0])

	return nil
}

func (app *App) mkdir(_ context.Context, args []string) error {
	return app.fsHandler.CreateDirectory(args[0])
}

func (app *App) rmdir(_ context.Context, args []string) error {
	return app.fsHandler.RemoveDirectory(args[0])
}

func newFlagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	return flags
}
