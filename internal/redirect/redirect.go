// Package redirect routes file moves of a caller through the long-path move,
// keeping the caller's own move routine as fallback.
package redirect

import (
	"fmt"
	"log/slog"
	"os"
)

type moveProvider interface {
	Move(src string, dst string) error
}

// FallbackFunc is the move routine that is taken when the long-path move
// fails. Its result is the result of the redirected move.
type FallbackFunc func(src string, dst string) error

// Mover is a drop-in replacement for a caller's move routine.
type Mover struct {
	fsHandler moveProvider
	fallback  FallbackFunc
}

// NewMover returns a pointer to a new [Mover]. A nil fallback selects
// [os.Rename].
func NewMover(fsHandler moveProvider, fallback FallbackFunc) *Mover {
	if fallback == nil {
		fallback = os.Rename
	}

	return &Mover{
		fsHandler: fsHandler,
		fallback:  fallback,
	}
}

// Move moves a file through the long-path move. On failure the error is
// logged and the move is retried with the fallback.
func (m *Mover) Move(src string, dst string) error {
	slog.Debug("Redirecting move:", "src", src, "dst", dst)

	err := m.fsHandler.Move(src, dst)
	if err == nil {
		return nil
	}

	slog.Error("Long-path move failed (falling back):",
		"src", src,
		"dst", dst,
		"err", err,
	)

	if err := m.fallback(src, dst); err != nil {
		return fmt.Errorf("(redirect-move) fallback failed: %w", err)
	}

	return nil
}
