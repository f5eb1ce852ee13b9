// FILE: internal/core/errors.go
package core

import "errors"

// Sentinel error kinds for the rules engine. Callers discriminate with
// errors.Is; the HTTP layer maps them to string codes.
var (
	// ErrOutOfRange reports a coordinate outside [0,7] passed to a board
	// accessor or move. Never produced by coordinates the engine itself
	// generates.
	ErrOutOfRange = errors.New("coordinates out of range")

	// ErrInvalidMove reports a placement the rules reject: the target cell
	// is occupied or no direction captures. At the board level this is a
	// non-error outcome; the game orchestrator surfaces it as an error.
	ErrInvalidMove = errors.New("invalid move")

	// ErrWrongTurn reports a move attempted by the side not on turn.
	ErrWrongTurn = errors.New("not this player's turn")

	// ErrGameOver reports a move attempted after neither side can move.
	ErrGameOver = errors.New("the game is over")
)
