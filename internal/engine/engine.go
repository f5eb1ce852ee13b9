// FILE: internal/engine/engine.go
package engine

import (
	"fmt"

	"othello/internal/board"
	"othello/internal/core"
)

// VirtualPlayer chooses a move for one side on a given board. Search
// strategies are interchangeable behind this interface; Minimax is the
// provided implementation.
type VirtualPlayer interface {
	// ComputeMove returns the chosen cell, or ok=false when the side has
	// no legal move anywhere.
	ComputeMove(b board.Board, me core.Color) (x, y int, ok bool)
}

// bestMove is a search-internal candidate: the ply-1 root move under
// consideration and the evaluation propagated up from the explored line.
type bestMove struct {
	x, y       int
	evaluation int
}

// Minimax is a fixed-depth, brute-force searcher. No pruning, no
// parallelism, no timeout: it explores every legal line to the configured
// depth and runs to completion.
type Minimax struct {
	depth int
}

// NewMinimax creates a searcher exploring the given number of plies,
// at least one.
func NewMinimax(depth int) *Minimax {
	if depth < 1 {
		depth = 1
	}
	return &Minimax{depth: depth}
}

// Depth returns the configured search depth.
func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) ComputeMove(b board.Board, me core.Color) (int, int, bool) {
	best := m.search(b, me, 1)
	if best == nil {
		return 0, 0, false
	}
	return best.x, best.y, true
}

// search explores every legal move of current at the given ply and
// returns the candidate most favorable to current, nil when current has
// no legal move. Candidates carry the evaluation of the deepest position
// reached on their line, propagated upward unchanged; each level only
// picks among its own candidates by current's sign.
func (m *Minimax) search(b board.Board, current core.Color, ply int) *bestMove {
	var best *bestMove
	for _, p := range board.Positions() {
		next, ok, err := b.Play(current, p.X, p.Y)
		if err != nil {
			// Enumerated coordinates are always in range.
			panic(fmt.Sprintf("minimax probed cell (%d,%d): %v", p.X, p.Y, err))
		}
		if !ok {
			continue
		}

		cand := bestMove{x: p.X, y: p.Y}
		if ply == m.depth {
			cand.evaluation = Evaluate(next, current)
		} else {
			opponent := current.Opponent()
			switch {
			case next.CanMove(opponent):
				cand.evaluation = m.search(next, opponent, ply+1).evaluation
			case next.CanMove(current):
				// Opponent is blocked but the game goes on: same side
				// moves again one ply deeper.
				cand.evaluation = m.search(next, current, ply+1).evaluation
			default:
				// Neither side can answer; evaluate the terminal position.
				cand.evaluation = Evaluate(next, current)
			}
		}

		best = betterFor(current, best, &cand)
	}
	return best
}

// betterFor picks the candidate more favorable to player. Equal scores
// keep the incumbent, so ties go to the earliest cell in the fixed
// enumeration order.
func betterFor(player core.Color, incumbent, challenger *bestMove) *bestMove {
	if incumbent == nil {
		return challenger
	}
	if signFor(player, challenger.evaluation) > signFor(player, incumbent.evaluation) {
		return challenger
	}
	return incumbent
}
