package highscore

import "errors"

// ErrNotFound is returned when no high scores have been stored yet
var ErrNotFound = errors.New("high scores not found")
