// FILE: internal/core/player.go
package core

import (
	"github.com/google/uuid"
)

type PlayerType int

const (
	PlayerHuman PlayerType = iota + 1
	PlayerComputer
)

// Player is the complete per-side entity with all state
type Player struct {
	ID    string     `json:"id"`
	Color Color      `json:"color"`
	Type  PlayerType `json:"type"`
	Depth int        `json:"depth,omitempty"` // Search depth, only for computer
}

// PlayerConfig for API requests and configuration
type PlayerConfig struct {
	Type  PlayerType `json:"type" validate:"required,oneof=1 2"`
	Depth int        `json:"depth,omitempty" validate:"omitempty,min=1,max=8"`
}

// DefaultSearchDepth is applied to computer players configured without one.
const DefaultSearchDepth = 4

// NewPlayer creates a Player from PlayerConfig
func NewPlayer(config PlayerConfig, color Color) *Player {
	player := &Player{
		ID:    uuid.New().String(),
		Color: color,
		Type:  config.Type,
	}

	if config.Type == PlayerComputer {
		player.Depth = config.Depth
		if player.Depth == 0 {
			player.Depth = DefaultSearchDepth
		}
	}

	return player
}
