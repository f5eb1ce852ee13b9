// FILE: internal/core/core_test.go
package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColor(t *testing.T) {
	t.Run("opponent mapping", func(t *testing.T) {
		require.Equal(t, ColorWhite, ColorBlack.Opponent())
		require.Equal(t, ColorBlack, ColorWhite.Opponent())
		require.Equal(t, ColorNone, ColorNone.Opponent())
	})

	t.Run("string encoding", func(t *testing.T) {
		require.Equal(t, "b", ColorBlack.String())
		require.Equal(t, "w", ColorWhite.String())
		require.Equal(t, "-", ColorNone.String())
	})
}

func TestStateOf(t *testing.T) {
	require.Equal(t, StateBlackWins, StateOf(ColorBlack, true))
	require.Equal(t, StateWhiteWins, StateOf(ColorWhite, true))
	require.Equal(t, StateDraw, StateOf(ColorNone, false))
}

func TestNewPlayer(t *testing.T) {
	t.Run("human players carry no depth", func(t *testing.T) {
		p := NewPlayer(PlayerConfig{Type: PlayerHuman}, ColorBlack)
		require.Equal(t, PlayerHuman, p.Type)
		require.Equal(t, ColorBlack, p.Color)
		require.Zero(t, p.Depth)
		require.NotEmpty(t, p.ID)
	})

	t.Run("computer players default the search depth", func(t *testing.T) {
		p := NewPlayer(PlayerConfig{Type: PlayerComputer}, ColorWhite)
		require.Equal(t, DefaultSearchDepth, p.Depth)

		p = NewPlayer(PlayerConfig{Type: PlayerComputer, Depth: 2}, ColorWhite)
		require.Equal(t, 2, p.Depth)
	})
}
