package tui

import "errors"

// ErrAborted signals the user aborted input (e.g., Ctrl+C) or chose to quit.
var ErrAborted = errors.New("tui: aborted")
