// FILE: internal/service/errors.go
package service

import "errors"

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrGameExists      = errors.New("game already exists")
	ErrNotHumanTurn    = errors.New("side to move is not a human player")
	ErrNotComputerTurn = errors.New("side to move is not a computer player")
	ErrNothingToUndo   = errors.New("not enough moves to undo")
)
