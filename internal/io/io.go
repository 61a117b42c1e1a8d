// Package io implements the integrity helpers on top of the long-path file
// operations: streaming checksums and verified copies.
package io

import (
	"github.com/desertwitch/longfile/internal/schema"
)

type fsProvider interface {
	Copy(src string, dst string, overwrite bool) error
	Delete(path string) error
	OpenStream(path string, mode schema.StreamMode) (schema.Handle, error)
}

// Handler is the principal implementation of the integrity helpers.
type Handler struct {
	fsHandler fsProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(fsHandler fsProvider) *Handler {
	return &Handler{
		fsHandler: fsHandler,
	}
}
