// FILE: internal/game/game.go
package game

import (
	"fmt"

	"othello/internal/board"
	"othello/internal/core"
)

// Game sequences turns over one board. It rejects moves out of turn and
// moves after termination; each accepted move replaces the board with the
// freshly computed successor and recomputes the status snapshot.
type Game struct {
	board  board.Board
	turn   core.Color // ColorNone once neither side can move
	status board.Status
}

// New creates a standard game: start position, black to move.
func New() *Game {
	return Load(board.NewStart(), core.ColorBlack)
}

// Load resumes a game from an arbitrary position. The turn is normalized
// against the position's mobility: a finished position has no side to
// move, and a blocked side yields the turn to its opponent.
func Load(b board.Board, turn core.Color) *Game {
	g := &Game{
		board:  b,
		status: board.EvaluateStatus(b),
	}
	switch {
	case g.status.GameOver():
		g.turn = core.ColorNone
	case g.status.CanMove(turn):
		g.turn = turn
	default:
		g.turn = turn.Opponent()
	}
	return g
}

// Play applies one move for player at (x, y).
//
// The turn advances using the recomputed mobility flags: to the opponent
// when the opponent can move, back to the mover when only the mover can,
// and to no one when the game is over.
func (g *Game) Play(player core.Color, x, y int) error {
	if g.turn == core.ColorNone {
		return core.ErrGameOver
	}
	if player != g.turn {
		return fmt.Errorf("%w: it's %s to move, not %s", core.ErrWrongTurn, g.turn, player)
	}

	next, ok, err := g.board.Play(player, x, y)
	if err != nil {
		return err
	}
	if !ok {
		return core.ErrInvalidMove
	}

	g.board = next
	g.status = board.EvaluateStatus(next)

	opponent := player.Opponent()
	switch {
	case g.status.CanMove(opponent):
		g.turn = opponent
	case g.status.CanMove(player):
		g.turn = player
	default:
		g.turn = core.ColorNone
	}
	return nil
}

// Board returns the current position.
func (g *Game) Board() board.Board {
	return g.board
}

// Turn returns the side to move; false once the game is over.
func (g *Game) Turn() (core.Color, bool) {
	if g.turn == core.ColorNone {
		return core.ColorNone, false
	}
	return g.turn, true
}

func (g *Game) GameOver() bool {
	return g.status.GameOver()
}

// Winner returns the majority side of a finished game; false while the
// game is ongoing and for a draw.
func (g *Game) Winner() (core.Color, bool) {
	return g.status.Winner()
}

func (g *Game) CountPieces() (black, white int) {
	return g.status.BlackPieces, g.status.WhitePieces
}

// State maps the game's status to the shared end-state enum.
func (g *Game) State() core.State {
	if !g.status.GameOver() {
		return core.StateOngoing
	}
	winner, decided := g.status.Winner()
	return core.StateOf(winner, decided)
}
