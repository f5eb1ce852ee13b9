// FILE: internal/game/game_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"othello/internal/board"
	"othello/internal/core"
)

func TestNew(t *testing.T) {
	g := New()

	turn, ok := g.Turn()
	require.True(t, ok)
	require.Equal(t, core.ColorBlack, turn)

	black, white := g.CountPieces()
	require.Equal(t, 2, black)
	require.Equal(t, 2, white)

	require.False(t, g.GameOver())
	require.Equal(t, core.StateOngoing, g.State())
}

func TestLoad(t *testing.T) {
	t.Run("keeps the turn when the side can move", func(t *testing.T) {
		g := Load(board.NewStart(), core.ColorWhite)
		turn, ok := g.Turn()
		require.True(t, ok)
		require.Equal(t, core.ColorWhite, turn)
	})

	t.Run("yields the turn when the side is blocked", func(t *testing.T) {
		// Black can capture the lone white piece at (1,0) by playing
		// (2,0); white has no reply anywhere.
		var b board.Board
		require.NoError(t, b.Set(0, 0, core.ColorBlack))
		require.NoError(t, b.Set(1, 0, core.ColorWhite))

		g := Load(b, core.ColorWhite)
		turn, ok := g.Turn()
		require.True(t, ok)
		require.Equal(t, core.ColorBlack, turn)
	})

	t.Run("finished positions have no side to move", func(t *testing.T) {
		var b board.Board
		require.NoError(t, b.Set(0, 0, core.ColorBlack))
		require.NoError(t, b.Set(7, 7, core.ColorWhite))

		g := Load(b, core.ColorBlack)
		_, ok := g.Turn()
		require.False(t, ok)
		require.True(t, g.GameOver())
	})
}

func TestPlay(t *testing.T) {
	t.Run("applies a legal move and passes the turn", func(t *testing.T) {
		g := New()
		require.NoError(t, g.Play(core.ColorBlack, 2, 3))

		black, white := g.CountPieces()
		require.Equal(t, 4, black)
		require.Equal(t, 1, white)

		turn, ok := g.Turn()
		require.True(t, ok)
		require.Equal(t, core.ColorWhite, turn)
	})

	t.Run("rejects a move out of turn", func(t *testing.T) {
		g := New()
		err := g.Play(core.ColorWhite, 4, 2)
		require.ErrorIs(t, err, core.ErrWrongTurn)

		black, white := g.CountPieces()
		require.Equal(t, 2, black)
		require.Equal(t, 2, white)
	})

	t.Run("rejects an illegal placement", func(t *testing.T) {
		g := New()
		require.ErrorIs(t, g.Play(core.ColorBlack, 0, 0), core.ErrInvalidMove)
		require.ErrorIs(t, g.Play(core.ColorBlack, 3, 3), core.ErrInvalidMove)
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		g := New()
		require.ErrorIs(t, g.Play(core.ColorBlack, 8, 0), core.ErrOutOfRange)
	})

	t.Run("rejects any move once the game is over", func(t *testing.T) {
		var b board.Board
		require.NoError(t, b.Set(0, 0, core.ColorBlack))
		require.NoError(t, b.Set(7, 7, core.ColorWhite))

		g := Load(b, core.ColorBlack)
		require.ErrorIs(t, g.Play(core.ColorBlack, 1, 0), core.ErrGameOver)
	})

	t.Run("keeps the turn when the opponent is blocked", func(t *testing.T) {
		// After black captures (1,0) the board is all black; but with an
		// extra white pair on the bottom rank black still has a move and
		// white does not.
		var b board.Board
		require.NoError(t, b.Set(0, 0, core.ColorBlack))
		require.NoError(t, b.Set(1, 0, core.ColorWhite))
		require.NoError(t, b.Set(0, 7, core.ColorBlack))
		require.NoError(t, b.Set(1, 7, core.ColorWhite))

		g := Load(b, core.ColorBlack)
		require.NoError(t, g.Play(core.ColorBlack, 2, 0))

		turn, ok := g.Turn()
		require.True(t, ok)
		require.Equal(t, core.ColorBlack, turn, "black should move again while white is blocked")
	})

	t.Run("ends the game when neither side can answer", func(t *testing.T) {
		var b board.Board
		require.NoError(t, b.Set(0, 0, core.ColorBlack))
		require.NoError(t, b.Set(1, 0, core.ColorWhite))

		g := Load(b, core.ColorBlack)
		require.NoError(t, g.Play(core.ColorBlack, 2, 0))

		require.True(t, g.GameOver())
		_, ok := g.Turn()
		require.False(t, ok)

		winner, decided := g.Winner()
		require.True(t, decided)
		require.Equal(t, core.ColorBlack, winner)
		require.Equal(t, core.StateBlackWins, g.State())
	})
}
