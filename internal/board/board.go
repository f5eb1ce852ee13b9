// FILE: internal/board/board.go
package board

import (
	"fmt"

	"othello/internal/core"
)

// Size of the playing grid in both dimensions.
const Size = 8

// Board is an 8x8 Othello grid. It is a plain value: Play never mutates
// its receiver and returns a fresh Board instead, so search code can keep
// exploring branches from one ancestor without aliasing.
//
// Cells are addressed by x (column, 0-7 left to right) and y (row, 0-7
// top to bottom).
type Board struct {
	cells [Size][Size]core.Color
}

// Coord is a cell address on the grid.
type Coord struct {
	X, Y int
}

// heading is one of the 8 compass directions a capture ray can follow.
type heading struct {
	dx, dy int
}

var headings = [8]heading{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// positions holds the fixed cell enumeration: x outer, y inner. Minimax
// tie-breaking depends on this order, do not reorder.
var positions = func() []Coord {
	ps := make([]Coord, 0, Size*Size)
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			ps = append(ps, Coord{x, y})
		}
	}
	return ps
}()

// Positions enumerates all 64 cells in the fixed deterministic order.
// The returned slice is shared; callers must not modify it.
func Positions() []Coord {
	return positions
}

// New creates an empty board.
func New() Board {
	return Board{}
}

// NewStart creates a board ready to start a game: the four center cells
// hold two diagonal pairs, white on (3,3)/(4,4) and black on (3,4)/(4,3),
// with black to move first.
func NewStart() Board {
	var b Board
	b.cells[3][3] = core.ColorWhite
	b.cells[4][4] = core.ColorWhite
	b.cells[3][4] = core.ColorBlack
	b.cells[4][3] = core.ColorBlack
	return b
}

func checkCoordinates(x, y int) error {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return fmt.Errorf("%w: (%d,%d)", core.ErrOutOfRange, x, y)
	}
	return nil
}

// Get returns the content of a cell, ColorNone when empty.
func (b Board) Get(x, y int) (core.Color, error) {
	if err := checkCoordinates(x, y); err != nil {
		return core.ColorNone, err
	}
	return b.cells[x][y], nil
}

// Set overwrites the content of a cell. It performs bounds checking and
// nothing else; it is the construction primitive, not a move.
func (b *Board) Set(x, y int, c core.Color) error {
	if err := checkCoordinates(x, y); err != nil {
		return err
	}
	b.cells[x][y] = c
	return nil
}

// Each visits all 64 cells in the fixed enumeration order.
func (b Board) Each(fn func(x, y int, c core.Color)) {
	for _, p := range positions {
		fn(p.X, p.Y, b.cells[p.X][p.Y])
	}
}

// CountPieces tallies the pieces of each side.
func (b Board) CountPieces() (black, white int) {
	for _, p := range positions {
		switch b.cells[p.X][p.Y] {
		case core.ColorBlack:
			black++
		case core.ColorWhite:
			white++
		}
	}
	return black, white
}

// ray returns the cells strictly outward from (x, y) along h, in walking
// order, ending at the board edge. Capture detection walks it forward;
// applying flips revisits the captured prefix of the same sequence, so
// direction vectors are never re-derived.
func ray(x, y int, h heading) []Coord {
	cells := make([]Coord, 0, Size-1)
	for cx, cy := x+h.dx, y+h.dy; cx >= 0 && cx < Size && cy >= 0 && cy < Size; cx, cy = cx+h.dx, cy+h.dy {
		cells = append(cells, Coord{cx, cy})
	}
	return cells
}

// capturedRun walks r and reports how many leading opponent pieces would
// be captured by player: the run length when the first non-opponent cell
// is the player's own piece, zero when the run hits an empty cell or the
// board edge first.
func (b Board) capturedRun(player core.Color, r []Coord) int {
	opponent := player.Opponent()
	for i, c := range r {
		switch b.cells[c.X][c.Y] {
		case opponent:
			continue
		case player:
			return i
		default:
			return 0
		}
	}
	return 0
}

// Play attempts to place a piece for player at (x, y).
//
// It returns an error only for out-of-range coordinates. A placement on
// an occupied cell, or one that captures in no direction, is not an
// error: it yields (Board{}, false, nil). A legal placement yields the
// resulting board and true; the receiver is left untouched either way.
func (b Board) Play(player core.Color, x, y int) (Board, bool, error) {
	if err := checkCoordinates(x, y); err != nil {
		return Board{}, false, err
	}
	if b.cells[x][y] != core.ColorNone {
		return Board{}, false, nil
	}

	next := b
	captured := false
	for _, h := range headings {
		r := ray(x, y, h)
		run := b.capturedRun(player, r)
		if run == 0 {
			continue
		}
		captured = true
		// Flip back toward the origin.
		for i := run - 1; i >= 0; i-- {
			next.cells[r[i].X][r[i].Y] = player
		}
	}
	if !captured {
		return Board{}, false, nil
	}

	next.cells[x][y] = player
	return next, true, nil
}

// CanMove reports whether player has at least one legal move, probing the
// cells in enumeration order with the full Play legality check.
func (b Board) CanMove(player core.Color) bool {
	for _, p := range positions {
		if _, ok, _ := b.Play(player, p.X, p.Y); ok {
			return true
		}
	}
	return false
}
