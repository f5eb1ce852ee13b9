// FILE: internal/transport/http/types.go
package http

import (
	"othello/internal/core"
)

// Request types

type CreateGameRequest struct {
	Black    core.PlayerConfig `json:"black" validate:"required"`
	White    core.PlayerConfig `json:"white" validate:"required"`
	Position string            `json:"position,omitempty" validate:"omitempty,min=17,max=80"`
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,len=2"` // coordinate text: "d3"
}

type UndoRequest struct {
	Count int `json:"count,omitempty" validate:"omitempty,min=1,max=60"` // default: 1
}

// Response types

type GameResponse struct {
	GameID   string      `json:"gameId"`
	Position string      `json:"position"`
	Turn     string      `json:"turn"`  // "b", "w" or "-"
	State    string      `json:"state"` // "ongoing", "black_wins", etc
	Moves    []string    `json:"moves"`
	Counts   PieceCounts `json:"counts"`
	Players  PlayersInfo `json:"players"`
	LastMove *MoveInfo   `json:"lastMove,omitempty"`
}

type PieceCounts struct {
	Black int `json:"black"`
	White int `json:"white"`
}

type PlayersInfo struct {
	Black PlayerInfo `json:"black"`
	White PlayerInfo `json:"white"`
}

type PlayerInfo struct {
	Type  int `json:"type"` // 1=human, 2=computer
	Depth int `json:"depth,omitempty"`
}

type MoveInfo struct {
	Move   string `json:"move"`
	Player string `json:"player"` // "b" or "w"
	Score  int    `json:"score,omitempty"`
	Depth  int    `json:"depth,omitempty"`
}

type BoardResponse struct {
	Position string `json:"position"`
	Board    string `json:"board"` // ASCII representation
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

func stateToString(s core.State) string {
	switch s {
	case core.StateOngoing:
		return "ongoing"
	case core.StateBlackWins:
		return "black_wins"
	case core.StateWhiteWins:
		return "white_wins"
	case core.StateDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Error codes
const (
	CodeGameNotFound      = "GAME_NOT_FOUND"
	CodeGameExists        = "GAME_EXISTS"
	CodeInvalidMove       = "INVALID_MOVE"
	CodeWrongTurn         = "WRONG_TURN"
	CodeNotHumanTurn      = "NOT_HUMAN_TURN"
	CodeGameOver          = "GAME_OVER"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeInvalidContent    = "INVALID_CONTENT_TYPE"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInternalError     = "INTERNAL_ERROR"
)
