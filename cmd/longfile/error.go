package main

import "errors"

var (
	// ErrUnknownCommand occurs when the command given on the command line is
	// not known.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage occurs when a command is given the wrong arguments.
	ErrUsage = errors.New("wrong arguments")
)
