// FILE: internal/board/board_test.go
package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"othello/internal/core"
)

func TestNew(t *testing.T) {
	t.Run("creates an empty board", func(t *testing.T) {
		b := New()
		b.Each(func(x, y int, c core.Color) {
			require.Equal(t, core.ColorNone, c, "cell (%d,%d) should be empty", x, y)
		})
	})
}

func TestNewStart(t *testing.T) {
	t.Run("places the four center pieces", func(t *testing.T) {
		b := NewStart()
		b.Each(func(x, y int, c core.Color) {
			switch {
			case x < 3 || x > 4 || y < 3 || y > 4:
				require.Equal(t, core.ColorNone, c, "cell (%d,%d) should be empty", x, y)
			case x == y:
				require.Equal(t, core.ColorWhite, c, "cell (%d,%d) should be white", x, y)
			default:
				require.Equal(t, core.ColorBlack, c, "cell (%d,%d) should be black", x, y)
			}
		})
	})

	t.Run("counts two pieces per side", func(t *testing.T) {
		black, white := NewStart().CountPieces()
		require.Equal(t, 2, black)
		require.Equal(t, 2, white)
	})
}

func TestGetSet(t *testing.T) {
	t.Run("round trips a cell", func(t *testing.T) {
		b := New()
		require.NoError(t, b.Set(1, 2, core.ColorBlack))

		c, err := b.Get(1, 2)
		require.NoError(t, err)
		require.Equal(t, core.ColorBlack, c)
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		b := New()
		require.ErrorIs(t, b.Set(8, 0, core.ColorBlack), core.ErrOutOfRange)
		require.ErrorIs(t, b.Set(0, 8, core.ColorBlack), core.ErrOutOfRange)
		require.ErrorIs(t, b.Set(-1, 0, core.ColorBlack), core.ErrOutOfRange)

		_, err := b.Get(0, 9)
		require.ErrorIs(t, err, core.ErrOutOfRange)
	})
}

func TestPositions(t *testing.T) {
	t.Run("enumerates all cells x-outer y-inner", func(t *testing.T) {
		ps := Positions()
		require.Len(t, ps, Size*Size)
		require.Equal(t, Coord{0, 0}, ps[0])
		require.Equal(t, Coord{0, 1}, ps[1])
		require.Equal(t, Coord{1, 0}, ps[Size])
		require.Equal(t, Coord{7, 7}, ps[Size*Size-1])
	})
}

func TestPlay(t *testing.T) {
	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		b := NewStart()
		_, _, err := b.Play(core.ColorBlack, 8, 3)
		require.ErrorIs(t, err, core.ErrOutOfRange)
	})

	t.Run("occupied cell is not an error, just not a move", func(t *testing.T) {
		b := NewStart()
		_, ok, err := b.Play(core.ColorBlack, 3, 3)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("placement without capture is not a move", func(t *testing.T) {
		b := NewStart()
		_, ok, err := b.Play(core.ColorBlack, 0, 0)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("captures a sandwiched piece", func(t *testing.T) {
		b := NewStart()
		next, ok, err := b.Play(core.ColorBlack, 4, 5)
		require.NoError(t, err)
		require.True(t, ok)

		c, err := next.Get(4, 4)
		require.NoError(t, err)
		require.Equal(t, core.ColorBlack, c, "sandwiched white piece should flip")

		black, white := next.CountPieces()
		require.Equal(t, 4, black)
		require.Equal(t, 1, white)
	})

	t.Run("never mutates the receiver", func(t *testing.T) {
		b := NewStart()
		before := b

		_, ok, err := b.Play(core.ColorBlack, 4, 5)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, before, b, "board should be unchanged after a legal move")

		_, ok, err = b.Play(core.ColorBlack, 0, 0)
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, before, b, "board should be unchanged after a rejected move")
	})

	t.Run("is deterministic for identical inputs", func(t *testing.T) {
		b := NewStart()
		first, ok1, err1 := b.Play(core.ColorBlack, 4, 5)
		second, ok2, err2 := b.Play(core.ColorBlack, 4, 5)
		require.NoError(t, err1)
		require.NoError(t, err2)
		require.Equal(t, ok1, ok2)
		require.Equal(t, first, second)
	})

	t.Run("captures in all eight directions", func(t *testing.T) {
		// Black ring on the edge of the 5x5 sub-square, white ring
		// inside it, center empty.
		var b Board
		for x := 0; x <= 4; x++ {
			for y := 0; y <= 4; y++ {
				if x == 0 || x == 4 || y == 0 || y == 4 {
					require.NoError(t, b.Set(x, y, core.ColorBlack))
				} else if x != 2 || y != 2 {
					require.NoError(t, b.Set(x, y, core.ColorWhite))
				}
			}
		}

		next, ok, err := b.Play(core.ColorBlack, 2, 2)
		require.NoError(t, err)
		require.True(t, ok)

		next.Each(func(x, y int, c core.Color) {
			if x < 5 && y < 5 {
				require.Equal(t, core.ColorBlack, c, "cell (%d,%d) should be black", x, y)
			} else {
				require.Equal(t, core.ColorNone, c, "cell (%d,%d) should stay empty", x, y)
			}
		})
	})

	t.Run("a run reaching the edge captures nothing", func(t *testing.T) {
		// White pieces up to the edge with no black terminator.
		var b Board
		require.NoError(t, b.Set(1, 0, core.ColorWhite))
		require.NoError(t, b.Set(0, 0, core.ColorWhite))

		_, ok, err := b.Play(core.ColorBlack, 2, 0)
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestCanMove(t *testing.T) {
	t.Run("both sides can open", func(t *testing.T) {
		b := NewStart()
		require.True(t, b.CanMove(core.ColorBlack))
		require.True(t, b.CanMove(core.ColorWhite))
	})

	t.Run("no moves on an empty board", func(t *testing.T) {
		b := New()
		require.False(t, b.CanMove(core.ColorBlack))
		require.False(t, b.CanMove(core.ColorWhite))
	})

	t.Run("isolated pieces allow no move", func(t *testing.T) {
		var b Board
		require.NoError(t, b.Set(0, 0, core.ColorBlack))
		require.NoError(t, b.Set(7, 7, core.ColorWhite))
		require.False(t, b.CanMove(core.ColorBlack))
		require.False(t, b.CanMove(core.ColorWhite))
	})
}
