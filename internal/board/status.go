// FILE: internal/board/status.go
package board

import (
	"othello/internal/core"
)

// Status is a derived snapshot of mobility and piece counts for one board.
// It is always recomputed in full from a Board, never patched in place.
type Status struct {
	BlackCanMove bool
	WhiteCanMove bool
	BlackPieces  int
	WhitePieces  int
}

// EvaluateStatus computes the status of b from scratch. When the board is
// full the mobility probes are skipped: a full board never has a move for
// either side, so both flags stay false without running the scan.
func EvaluateStatus(b Board) Status {
	s := Status{}
	s.BlackPieces, s.WhitePieces = b.CountPieces()
	if s.BlackPieces+s.WhitePieces != Size*Size {
		s.BlackCanMove = b.CanMove(core.ColorBlack)
		s.WhiteCanMove = b.CanMove(core.ColorWhite)
	}
	return s
}

// CanMove reports the recorded mobility of player.
func (s Status) CanMove(player core.Color) bool {
	switch player {
	case core.ColorBlack:
		return s.BlackCanMove
	case core.ColorWhite:
		return s.WhiteCanMove
	default:
		return false
	}
}

// GameOver reports whether neither side has a legal move.
func (s Status) GameOver() bool {
	return !s.BlackCanMove && !s.WhiteCanMove
}

// Winner returns the side with strictly more pieces once the game is
// over. The second result is false while the game is ongoing and for a
// drawn final position.
func (s Status) Winner() (core.Color, bool) {
	if !s.GameOver() || s.BlackPieces == s.WhitePieces {
		return core.ColorNone, false
	}
	if s.BlackPieces > s.WhitePieces {
		return core.ColorBlack, true
	}
	return core.ColorWhite, true
}
