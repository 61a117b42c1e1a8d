package io

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/desertwitch/longfile/internal/schema"
	"github.com/zeebo/blake3"
)

//nolint:containedctx
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	select {
	case <-cr.ctx.Done():
		return 0, cr.ctx.Err()
	default:
		return cr.reader.Read(p)
	}
}

// Checksum streams a file of any path length through blake3 and returns the
// hex-encoded digest. Hashing stops once ctx is done.
func (i *Handler) Checksum(ctx context.Context, path string) (string, error) {
	f, err := i.fsHandler.OpenStream(path, schema.StreamRead)
	if err != nil {
		return "", fmt.Errorf("(io-checksum) failed to open file: %w", err)
	}
	defer f.Close()

	hasher := blake3.New()

	ctxReader := &contextReader{
		ctx:    ctx,
		reader: f,
	}

	if _, err := io.Copy(hasher, ctxReader); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("(io-checksum) hashing canceled: %w", err)
		}

		return "", fmt.Errorf("(io-checksum) failed to hash file: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// VerifiedCopy copies a file and compares the checksums of source and
// destination, returning the verified checksum. A destination that cannot be
// verified is removed again.
func (i *Handler) VerifiedCopy(ctx context.Context, src string, dst string, overwrite bool) (string, error) {
	srcChecksum, err := i.Checksum(ctx, src)
	if err != nil {
		return "", fmt.Errorf("(io-verifiedcopy) failed to hash source: %w", err)
	}

	if err := i.fsHandler.Copy(src, dst, overwrite); err != nil {
		return "", fmt.Errorf("(io-verifiedcopy) failed to copy file: %w", err)
	}

	dstChecksum, err := i.Checksum(ctx, dst)
	if err != nil {
		i.cleanFileAfterFailure(dst)

		return "", fmt.Errorf("(io-verifiedcopy) failed to hash destination: %w", err)
	}

	if srcChecksum != dstChecksum {
		i.cleanFileAfterFailure(dst)

		return "", fmt.Errorf("(io-verifiedcopy) %w: %s (src) != %s (dst)", ErrHashMismatch, srcChecksum, dstChecksum)
	}

	return dstChecksum, nil
}

// cleanFileAfterFailure removes a destination file that failed verification.
func (i *Handler) cleanFileAfterFailure(path string) {
	if err := i.fsHandler.Delete(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failure removing destination file cleaning after failure (skipped)",
			"path", path,
			"err", err,
		)
	}
}
