// FILE: internal/engine/engine_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"othello/internal/board"
	"othello/internal/core"
)

func TestNewMinimax(t *testing.T) {
	require.Equal(t, 4, NewMinimax(4).Depth())
	require.Equal(t, 1, NewMinimax(0).Depth(), "depth should clamp to at least one ply")
	require.Equal(t, 1, NewMinimax(-3).Depth())
}

func TestComputeMove(t *testing.T) {
	t.Run("finds an opening move", func(t *testing.T) {
		m := NewMinimax(4)
		x, y, ok := m.ComputeMove(board.NewStart(), core.ColorBlack)
		require.True(t, ok)

		next, legal, err := board.NewStart().Play(core.ColorBlack, x, y)
		require.NoError(t, err)
		require.True(t, legal)

		black, _ := next.CountPieces()
		require.Equal(t, 4, black)
	})

	t.Run("reports when no move exists", func(t *testing.T) {
		var b board.Board
		require.NoError(t, b.Set(0, 0, core.ColorWhite))

		m := NewMinimax(2)
		_, _, ok := m.ComputeMove(b, core.ColorBlack)
		require.False(t, ok)
	})

	t.Run("ties go to the earliest cell in scan order", func(t *testing.T) {
		// The four black openings are symmetric and score identically at
		// depth one, so the first one enumerated must win.
		m := NewMinimax(1)
		x, y, ok := m.ComputeMove(board.NewStart(), core.ColorBlack)
		require.True(t, ok)
		require.Equal(t, 2, x)
		require.Equal(t, 3, y)
	})

	t.Run("prefers the larger capture at depth one", func(t *testing.T) {
		// White to move: (5,3) flips two black pieces, every alternative
		// flips one.
		var b board.Board
		require.NoError(t, b.Set(2, 2, core.ColorWhite))
		require.NoError(t, b.Set(2, 3, core.ColorWhite))
		require.NoError(t, b.Set(3, 2, core.ColorBlack))
		require.NoError(t, b.Set(3, 3, core.ColorBlack))
		require.NoError(t, b.Set(4, 3, core.ColorBlack))

		m := NewMinimax(1)
		x, y, ok := m.ComputeMove(b, core.ColorWhite)
		require.True(t, ok)
		require.Equal(t, 5, x)
		require.Equal(t, 3, y)
	})

	t.Run("is deterministic", func(t *testing.T) {
		m := NewMinimax(3)
		x1, y1, ok1 := m.ComputeMove(board.NewStart(), core.ColorBlack)
		x2, y2, ok2 := m.ComputeMove(board.NewStart(), core.ColorBlack)
		require.True(t, ok1)
		require.True(t, ok2)
		require.Equal(t, x1, x2)
		require.Equal(t, y1, y2)
	})

	t.Run("plays a full game against itself", func(t *testing.T) {
		b := board.NewStart()
		current := core.ColorBlack
		m := NewMinimax(2)

		for turns := 0; turns < 2*board.Size*board.Size; turns++ {
			status := board.EvaluateStatus(b)
			if status.GameOver() {
				break
			}
			if !status.CanMove(current) {
				current = current.Opponent()
				continue
			}

			x, y, ok := m.ComputeMove(b, current)
			require.True(t, ok, "engine must find a move for a mobile side")

			next, legal, err := b.Play(current, x, y)
			require.NoError(t, err)
			require.True(t, legal, "engine move at (%d,%d) must be legal", x, y)

			b = next
			current = current.Opponent()
		}

		require.True(t, board.EvaluateStatus(b).GameOver(), "self-play should reach a finished game")
	})
}
