// FILE: internal/service/service.go
package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"othello/internal/board"
	"othello/internal/core"
	"othello/internal/engine"
	"othello/internal/game"
	"othello/internal/storage"
)

// Service is the registry of running games with optional persistence.
// All move orchestration goes through here: it validates whose turn it
// is, drives the rules engine and the searcher, and keeps the history
// and the store in sync.
type Service struct {
	games  map[string]*Session
	mu     sync.RWMutex
	store  *storage.Store // nil if persistence disabled
	logger zerolog.Logger
}

// New creates a service instance with optional storage.
func New(store *storage.Store, logger zerolog.Logger) *Service {
	return &Service{
		games:  make(map[string]*Session),
		store:  store,
		logger: logger,
	}
}

// CreateGame registers a new game. An empty initialPosition starts from
// the standard opening; otherwise the position text is parsed and the
// game resumes from it.
func (s *Service) CreateGame(id string, blackConfig, whiteConfig core.PlayerConfig, initialPosition string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, id)
	}

	var g *game.Game
	if initialPosition == "" {
		g = game.New()
	} else {
		b, turn, err := board.ParsePosition(initialPosition)
		if err != nil {
			return err
		}
		g = game.Load(b, turn)
	}

	blackPlayer := core.NewPlayer(blackConfig, core.ColorBlack)
	whitePlayer := core.NewPlayer(whiteConfig, core.ColorWhite)

	session := newSession(g, blackPlayer, whitePlayer)
	s.games[id] = session

	s.logger.Info().
		Str("game_id", id).
		Str("position", session.InitialPosition()).
		Msg("game created")

	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:          id,
			InitialPosition: session.InitialPosition(),
			BlackPlayerID:   blackPlayer.ID,
			BlackType:       int(blackPlayer.Type),
			BlackDepth:      blackPlayer.Depth,
			WhitePlayerID:   whitePlayer.ID,
			WhiteType:       int(whitePlayer.Type),
			WhiteDepth:      whitePlayer.Depth,
			StartTimeUTC:    time.Now().UTC(),
		})
	}

	return nil
}

// GenerateGameID creates a new unique game ID.
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// GetGame retrieves a game by ID.
func (s *Service) GetGame(gameID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return session, nil
}

// MakeHumanMove applies a human move given in coordinate text.
func (s *Service) MakeHumanMove(gameID, moveText string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	player := session.NextPlayer()
	if player == nil {
		return nil, core.ErrGameOver
	}
	if player.Type != core.PlayerHuman {
		return nil, fmt.Errorf("%w: %s is a computer", ErrNotHumanTurn, player.Color)
	}

	x, y, err := board.ParseMove(moveText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidMove, err)
	}

	return s.applyMove(gameID, session, player, x, y)
}

// MakeComputerMove runs the searcher for the computer side on turn and
// applies the move it picks.
func (s *Service) MakeComputerMove(gameID string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	player := session.NextPlayer()
	if player == nil {
		return nil, core.ErrGameOver
	}
	if player.Type != core.PlayerComputer {
		return nil, fmt.Errorf("%w: %s is a human", ErrNotComputerTurn, player.Color)
	}

	searcher := engine.NewMinimax(player.Depth)
	x, y, ok := searcher.ComputeMove(session.game.Board(), player.Color)
	if !ok {
		// A side on turn always has a move; the turn normalization
		// guarantees it.
		return nil, fmt.Errorf("engine found no move for %s in game %s", player.Color, gameID)
	}

	return s.applyMove(gameID, session, player, x, y)
}

// applyMove drives one validated move through the engine, the history
// and the store. Caller holds the write lock.
func (s *Service) applyMove(gameID string, session *Session, player *core.Player, x, y int) (*MoveResult, error) {
	if err := session.game.Play(player.Color, x, y); err != nil {
		return nil, err
	}

	moveText := board.FormatMove(x, y)
	session.addSnapshot(moveText)

	result := &MoveResult{
		Move:      moveText,
		Player:    player.Color,
		GameState: session.game.State(),
		Score:     engine.Evaluate(session.game.Board(), player.Color),
		Depth:     player.Depth,
	}
	session.lastResult = result

	s.logger.Debug().
		Str("game_id", gameID).
		Str("move", moveText).
		Str("player", player.Color.String()).
		Int("score", result.Score).
		Msg("move applied")

	if s.store != nil {
		s.store.RecordMove(storage.MoveRecord{
			GameID:            gameID,
			MoveNumber:        len(session.Moves()),
			Move:              moveText,
			PositionAfterMove: session.CurrentPosition(),
			PlayerColor:       player.Color.String(),
			MoveTimeUTC:       time.Now().UTC(),
		})
	}

	return result, nil
}

// GetCurrentBoard returns the live position of a game.
func (s *Service) GetCurrentBoard(gameID string) (board.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.games[gameID]
	if !ok {
		return board.Board{}, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return session.game.Board(), nil
}

// SuggestMove runs the searcher for whichever side is on turn and
// returns the move it would pick, without playing it. Used for hints.
func (s *Service) SuggestMove(gameID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.games[gameID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	player := session.NextPlayer()
	if player == nil {
		return "", core.ErrGameOver
	}

	depth := player.Depth
	if depth == 0 {
		depth = core.DefaultSearchDepth
	}

	x, y, ok := engine.NewMinimax(depth).ComputeMove(session.game.Board(), player.Color)
	if !ok {
		return "", fmt.Errorf("no move available for %s in game %s", player.Color, gameID)
	}
	return board.FormatMove(x, y), nil
}

// UndoMoves removes the specified number of moves from game history.
func (s *Service) UndoMoves(gameID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	originalMoveCount := len(session.Moves())

	if err := session.undoMoves(count); err != nil {
		return err
	}

	if s.store != nil {
		s.store.DeleteUndoneMoves(gameID, originalMoveCount-count)
	}

	return nil
}

// DeleteGame removes a game from memory.
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	delete(s.games, gameID)
	s.logger.Info().Str("game_id", gameID).Msg("game deleted")
	return nil
}

// StorageHealth returns the storage component status.
func (s *Service) StorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// Close cleans up resources.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*Session)

	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
