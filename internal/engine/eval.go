// FILE: internal/engine/eval.go
package engine

import (
	"math"

	"othello/internal/board"
	"othello/internal/core"
)

// Evaluation scores are signed from black's point of view: positive means
// black is ahead, negative means white is.
const (
	// ScoreMax is returned (signed for the winner) when the game is over
	// and decided.
	ScoreMax = math.MaxInt32
	// ScoreDraw is returned when the game is over with equal counts.
	ScoreDraw = 0
	// scoreOpponentBlocked is added (signed for the last mover) when the
	// opponent has no reply on the evaluated board.
	scoreOpponentBlocked = 4

	// Positional weights.
	scoreInside = 1
	scoreBorder = 4
	scoreCorner = 8
)

// Evaluate estimates how favorable b is, given that lastPlayer just
// moved. A finished game scores +-ScoreMax for the winner or ScoreDraw;
// otherwise each occupied cell contributes its positional weight signed
// by its owner, plus the blocked-opponent bonus.
func Evaluate(b board.Board, lastPlayer core.Color) int {
	status := board.EvaluateStatus(b)
	if status.GameOver() {
		if winner, ok := status.Winner(); ok {
			return signFor(winner, ScoreMax)
		}
		return ScoreDraw
	}

	total := 0
	b.Each(func(x, y int, c core.Color) {
		switch {
		case c == core.ColorNone:
		case corner(x, y):
			total += signFor(c, scoreCorner)
		case border(x, y):
			total += signFor(c, scoreBorder)
		default:
			total += signFor(c, scoreInside)
		}
	})

	if !status.CanMove(lastPlayer.Opponent()) {
		total += signFor(lastPlayer, scoreOpponentBlocked)
	}

	return total
}

// signFor applies the black-positive sign convention to a score.
func signFor(player core.Color, score int) int {
	if player == core.ColorWhite {
		return -score
	}
	return score
}

func corner(x, y int) bool {
	return (x == 0 || x == board.Size-1) && (y == 0 || y == board.Size-1)
}

func border(x, y int) bool {
	return x == 0 || x == board.Size-1 || y == 0 || y == board.Size-1
}
