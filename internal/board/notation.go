// FILE: internal/board/notation.go
package board

import (
	"fmt"
	"strings"

	"othello/internal/core"
)

// Position text format, by analogy with FEN: 8 ranks top to bottom
// separated by '/', each rank listing its 8 cells left to right with 'B'
// and 'W' for pieces and digits 1-8 for runs of empty cells, then a field
// for the side to move ('b', 'w', or '-' for a finished game).
const StartingPosition = "8/8/8/3WB3/3BW3/8/8/8 b"

// ParsePosition decodes a position string into a board and side to move.
func ParsePosition(s string) (Board, core.Color, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Board{}, core.ColorNone, fmt.Errorf("invalid position: expected 2 fields, got %d", len(parts))
	}

	var b Board

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != Size {
		return Board{}, core.ColorNone, fmt.Errorf("invalid position: expected %d ranks, got %d", Size, len(ranks))
	}

	for y := 0; y < Size; y++ {
		x := 0
		for _, ch := range ranks[y] {
			switch {
			case ch >= '1' && ch <= '8':
				x += int(ch - '0')
			case ch == 'B' || ch == 'W':
				if x >= Size {
					return Board{}, core.ColorNone, fmt.Errorf("invalid position: too many cells in rank %d", y+1)
				}
				if ch == 'B' {
					b.cells[x][y] = core.ColorBlack
				} else {
					b.cells[x][y] = core.ColorWhite
				}
				x++
			default:
				return Board{}, core.ColorNone, fmt.Errorf("invalid position: unexpected %q in rank %d", ch, y+1)
			}
		}
		if x != Size {
			return Board{}, core.ColorNone, fmt.Errorf("invalid position: rank %d has %d cells", y+1, x)
		}
	}

	var turn core.Color
	switch parts[1] {
	case "b":
		turn = core.ColorBlack
	case "w":
		turn = core.ColorWhite
	case "-":
		turn = core.ColorNone
	default:
		return Board{}, core.ColorNone, fmt.Errorf("invalid position: turn must be 'b', 'w' or '-'")
	}

	return b, turn, nil
}

// Position renders a board and side to move as a position string.
// ParsePosition(Position(b, turn)) reproduces both inputs.
func Position(b Board, turn core.Color) string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < Size; x++ {
			c := b.cells[x][y]
			if c == core.ColorNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			if c == core.ColorBlack {
				sb.WriteByte('B')
			} else {
				sb.WriteByte('W')
			}
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(turn.String())
	return sb.String()
}

// ParseMove decodes coordinate text like "d3": column letter a-h for x,
// row digit 1-8 for y with row 1 at the top.
func ParseMove(s string) (x, y int, err error) {
	if len(s) != 2 {
		return 0, 0, fmt.Errorf("invalid move %q: want column letter and row digit, e.g. d3", s)
	}
	col := s[0]
	if col >= 'A' && col <= 'H' {
		col += 'a' - 'A'
	}
	if col < 'a' || col > 'h' {
		return 0, 0, fmt.Errorf("invalid move %q: column must be a-h", s)
	}
	row := s[1]
	if row < '1' || row > '8' {
		return 0, 0, fmt.Errorf("invalid move %q: row must be 1-8", s)
	}
	return int(col - 'a'), int(row - '1'), nil
}

// FormatMove renders a cell address as coordinate text.
func FormatMove(x, y int) string {
	return fmt.Sprintf("%c%c", 'a'+byte(x), '1'+byte(y))
}
