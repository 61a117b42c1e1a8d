package pathing

import "errors"

// ErrNoWorkingDir is an error that occurs when a relative path needs resolving
// but the current working directory cannot be determined.
var ErrNoWorkingDir = errors.New("cannot determine working directory")
