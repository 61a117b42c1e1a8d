package io

import "errors"

// ErrHashMismatch is an error that occurs when there is a source/destination hash
// mismatch, this usually means that there are underlying transfer/hardware issues.
var ErrHashMismatch = errors.New("hash mismatch")
