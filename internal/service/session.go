// FILE: internal/service/session.go
package service

import (
	"fmt"

	"othello/internal/board"
	"othello/internal/core"
	"othello/internal/game"
)

// Snapshot is one entry of a session's position history.
type Snapshot struct {
	Position     string     // Position text at this point
	PreviousMove string     // Move that created this position (empty for initial)
	NextTurn     core.Color // Side to move at this position, ColorNone when finished
}

// MoveResult tracks the outcome of a move.
type MoveResult struct {
	Move      string
	Player    core.Color
	GameState core.State
	Score     int
	Depth     int
}

// Session is one tracked game: the live rules engine plus the position
// history that backs undo, and the two configured players.
type Session struct {
	game       *game.Game
	snapshots  []Snapshot
	players    map[core.Color]*core.Player
	lastResult *MoveResult
}

func newSession(g *game.Game, blackPlayer, whitePlayer *core.Player) *Session {
	turn, _ := g.Turn()
	return &Session{
		game: g,
		snapshots: []Snapshot{
			{
				Position: board.Position(g.Board(), turn),
				NextTurn: turn,
			},
		},
		players: map[core.Color]*core.Player{
			core.ColorBlack: blackPlayer,
			core.ColorWhite: whitePlayer,
		},
	}
}

func (s *Session) Game() *game.Game {
	return s.game
}

func (s *Session) Player(color core.Color) *core.Player {
	return s.players[color]
}

// NextPlayer returns the player owning the side to move, nil once the
// game is over.
func (s *Session) NextPlayer() *core.Player {
	turn, ok := s.game.Turn()
	if !ok {
		return nil
	}
	return s.players[turn]
}

func (s *Session) CurrentSnapshot() Snapshot {
	return s.snapshots[len(s.snapshots)-1]
}

func (s *Session) CurrentPosition() string {
	return s.CurrentSnapshot().Position
}

func (s *Session) InitialPosition() string {
	return s.snapshots[0].Position
}

// Moves lists the move history, oldest first.
func (s *Session) Moves() []string {
	moves := []string{}
	for i := 1; i < len(s.snapshots); i++ {
		if s.snapshots[i].PreviousMove != "" {
			moves = append(moves, s.snapshots[i].PreviousMove)
		}
	}
	return moves
}

func (s *Session) LastResult() *MoveResult {
	return s.lastResult
}

func (s *Session) addSnapshot(move string) {
	turn, _ := s.game.Turn()
	s.snapshots = append(s.snapshots, Snapshot{
		Position:     board.Position(s.game.Board(), turn),
		PreviousMove: move,
		NextTurn:     turn,
	})
}

// undoMoves trims count entries from the history and rewinds the engine
// to the position that remains on top.
func (s *Session) undoMoves(count int) error {
	if count < 1 {
		return fmt.Errorf("invalid undo count: %d", count)
	}

	available := len(s.snapshots) - 1
	if available < count {
		return fmt.Errorf("%w: %d moves requested, %d available", ErrNothingToUndo, count, available)
	}

	s.snapshots = s.snapshots[:len(s.snapshots)-count]

	top := s.CurrentSnapshot()
	b, turn, err := board.ParsePosition(top.Position)
	if err != nil {
		return fmt.Errorf("corrupt history snapshot: %w", err)
	}
	s.game = game.Load(b, turn)
	s.lastResult = nil
	return nil
}
