// FILE: internal/board/status_test.go
package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"othello/internal/core"
)

func fillBoard(t *testing.T, pick func(x, y int) core.Color) Board {
	t.Helper()
	var b Board
	for _, p := range Positions() {
		require.NoError(t, b.Set(p.X, p.Y, pick(p.X, p.Y)))
	}
	return b
}

func TestEvaluateStatus(t *testing.T) {
	t.Run("start position", func(t *testing.T) {
		s := EvaluateStatus(NewStart())
		require.True(t, s.BlackCanMove)
		require.True(t, s.WhiteCanMove)
		require.Equal(t, 2, s.BlackPieces)
		require.Equal(t, 2, s.WhitePieces)
		require.False(t, s.GameOver())
	})

	t.Run("full board skips mobility probing", func(t *testing.T) {
		b := fillBoard(t, func(x, y int) core.Color { return core.ColorBlack })
		s := EvaluateStatus(b)
		require.False(t, s.BlackCanMove)
		require.False(t, s.WhiteCanMove)
		require.True(t, s.GameOver())
		require.Equal(t, 64, s.BlackPieces)
	})

	t.Run("game over when neither side can move", func(t *testing.T) {
		var b Board
		require.NoError(t, b.Set(0, 0, core.ColorBlack))
		require.NoError(t, b.Set(7, 7, core.ColorWhite))
		s := EvaluateStatus(b)
		require.True(t, s.GameOver())
	})
}

func TestStatusWinner(t *testing.T) {
	t.Run("no winner while the game is ongoing", func(t *testing.T) {
		s := EvaluateStatus(NewStart())
		_, ok := s.Winner()
		require.False(t, ok)
	})

	t.Run("no winner when counts are equal", func(t *testing.T) {
		b := fillBoard(t, func(x, y int) core.Color {
			if x%2 == 0 {
				return core.ColorBlack
			}
			return core.ColorWhite
		})
		s := EvaluateStatus(b)
		require.True(t, s.GameOver())
		_, ok := s.Winner()
		require.False(t, ok)
	})

	t.Run("majority side wins a finished game", func(t *testing.T) {
		b := fillBoard(t, func(x, y int) core.Color { return core.ColorBlack })
		winner, ok := EvaluateStatus(b).Winner()
		require.True(t, ok)
		require.Equal(t, core.ColorBlack, winner)
	})

	t.Run("white majority", func(t *testing.T) {
		var b Board
		require.NoError(t, b.Set(0, 0, core.ColorWhite))
		require.NoError(t, b.Set(0, 2, core.ColorWhite))
		require.NoError(t, b.Set(7, 7, core.ColorBlack))
		winner, ok := EvaluateStatus(b).Winner()
		require.True(t, ok)
		require.Equal(t, core.ColorWhite, winner)
	})
}

func TestStatusCanMove(t *testing.T) {
	s := Status{BlackCanMove: true}
	require.True(t, s.CanMove(core.ColorBlack))
	require.False(t, s.CanMove(core.ColorWhite))
	require.False(t, s.CanMove(core.ColorNone))
}
