// FILE: internal/core/core.go
package core

// Color identifies a side, or the absence of one. The zero value means an
// empty cell, so a [8][8]Color grid starts out empty.
type Color int8

const (
	ColorNone Color = iota
	ColorBlack
	ColorWhite
)

func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "b"
	case ColorWhite:
		return "w"
	default:
		return "-"
	}
}

// Opponent maps black to white and white to black. ColorNone has no
// opponent and maps to itself.
func (c Color) Opponent() Color {
	switch c {
	case ColorBlack:
		return ColorWhite
	case ColorWhite:
		return ColorBlack
	default:
		return ColorNone
	}
}

type State int

const (
	StateOngoing State = iota
	StateBlackWins
	StateWhiteWins
	StateDraw
)

func (s State) String() string {
	switch s {
	case StateBlackWins:
		return "black wins"
	case StateWhiteWins:
		return "white wins"
	case StateDraw:
		return "draw"
	default:
		return "ongoing"
	}
}

// StateOf derives the end state from a winner lookup: (winner, true) for a
// decided game, (anything, false) for a draw.
func StateOf(winner Color, decided bool) State {
	if !decided {
		return StateDraw
	}
	if winner == ColorBlack {
		return StateBlackWins
	}
	return StateWhiteWins
}
