// FILE: internal/transport/http/game_handler.go
package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"othello/internal/board"
	"othello/internal/core"
	"othello/internal/service"
)

// CreateGame creates a new game with the specified player configuration
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	req, ok := c.Locals("validatedBody").(*CreateGameRequest)
	if !ok {
		return badRequest(c, "invalid request body", "missing create game payload")
	}

	gameID := h.svc.GenerateGameID()

	if err := h.svc.CreateGame(gameID, req.Black, req.White, req.Position); err != nil {
		return badRequest(c, "failed to create game", err.Error())
	}

	session, _ := h.svc.GetGame(gameID)
	response := h.buildGameResponse(gameID, session)

	// Play the opening computer moves right away so the caller sees a
	// position with a human on turn (or a finished game).
	h.runComputerMoves(gameID, &response)

	return c.Status(fiber.StatusCreated).JSON(response)
}

// GetGame retrieves current game state, executing computer moves if due
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	session, err := h.svc.GetGame(gameID)
	if err != nil {
		return gameNotFound(c)
	}

	response := h.buildGameResponse(gameID, session)
	h.runComputerMoves(gameID, &response)

	return c.JSON(response)
}

// MakeMove submits a human player move
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	req, ok := c.Locals("validatedBody").(*MoveRequest)
	if !ok {
		return badRequest(c, "invalid request body", "missing move payload")
	}

	result, err := h.svc.MakeHumanMove(gameID, req.Move)
	if err != nil {
		return h.moveError(c, err)
	}

	session, _ := h.svc.GetGame(gameID)
	response := h.buildGameResponse(gameID, session)
	response.LastMove = &MoveInfo{
		Move:   result.Move,
		Player: result.Player.String(),
	}

	// Computer replies, including any extra turns it gets while the
	// human side is blocked.
	h.runComputerMoves(gameID, &response)

	return c.JSON(response)
}

// UndoMove undoes one or more moves
func (h *HTTPHandler) UndoMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	count := 1
	if req, ok := c.Locals("validatedBody").(*UndoRequest); ok {
		count = req.Count
	}

	if err := h.svc.UndoMoves(gameID, count); err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return gameNotFound(c)
		}
		return badRequest(c, "cannot undo moves", err.Error())
	}

	session, _ := h.svc.GetGame(gameID)
	return c.JSON(h.buildGameResponse(gameID, session))
}

// DeleteGame ends and cleans up a game
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if err := h.svc.DeleteGame(gameID); err != nil {
		return gameNotFound(c)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetBoard returns an ASCII representation of the board
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	session, err := h.svc.GetGame(gameID)
	if err != nil {
		return gameNotFound(c)
	}

	return c.JSON(BoardResponse{
		Position: session.CurrentPosition(),
		Board:    asciiBoard(session.Game().Board()),
	})
}

// moveError maps service and rules errors to HTTP responses
func (h *HTTPHandler) moveError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return gameNotFound(c)
	case errors.Is(err, core.ErrGameOver):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "game is over",
			Code:    CodeGameOver,
			Details: err.Error(),
		})
	case errors.Is(err, service.ErrNotHumanTurn):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "not human player's turn",
			Code:    CodeNotHumanTurn,
			Details: err.Error(),
		})
	case errors.Is(err, core.ErrWrongTurn):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "wrong player",
			Code:    CodeWrongTurn,
			Details: err.Error(),
		})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid move",
			Code:    CodeInvalidMove,
			Details: err.Error(),
		})
	}
}

func gameNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
		Error: "game not found",
		Code:  CodeGameNotFound,
	})
}

// buildGameResponse assembles the standard game payload
func (h *HTTPHandler) buildGameResponse(gameID string, session *service.Session) GameResponse {
	g := session.Game()
	turn, _ := g.Turn()
	black, white := g.CountPieces()

	blackPlayer := session.Player(core.ColorBlack)
	whitePlayer := session.Player(core.ColorWhite)

	return GameResponse{
		GameID:   gameID,
		Position: session.CurrentPosition(),
		Turn:     turn.String(),
		State:    stateToString(g.State()),
		Moves:    session.Moves(),
		Counts:   PieceCounts{Black: black, White: white},
		Players: PlayersInfo{
			Black: PlayerInfo{Type: int(blackPlayer.Type), Depth: blackPlayer.Depth},
			White: PlayerInfo{Type: int(whitePlayer.Type), Depth: whitePlayer.Depth},
		},
	}
}

// runComputerMoves plays computer turns until a human is on turn or the
// game ends, refreshing the response along the way. A search failure is
// surfaced in the response state on the next poll rather than failing
// the request that triggered it.
func (h *HTTPHandler) runComputerMoves(gameID string, response *GameResponse) {
	for {
		session, err := h.svc.GetGame(gameID)
		if err != nil {
			return
		}

		player := session.NextPlayer()
		if player == nil || player.Type != core.PlayerComputer {
			return
		}

		result, err := h.svc.MakeComputerMove(gameID)
		if err != nil {
			return
		}

		session, _ = h.svc.GetGame(gameID)
		g := session.Game()
		turn, _ := g.Turn()
		black, white := g.CountPieces()

		response.Position = session.CurrentPosition()
		response.Turn = turn.String()
		response.State = stateToString(g.State())
		response.Moves = session.Moves()
		response.Counts = PieceCounts{Black: black, White: white}
		response.LastMove = &MoveInfo{
			Move:   result.Move,
			Player: result.Player.String(),
			Score:  result.Score,
			Depth:  result.Depth,
		}
	}
}

// asciiBoard renders the grid with 'B', 'W' and '.' cells
func asciiBoard(b board.Board) string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")

	for y := 0; y < board.Size; y++ {
		sb.WriteString(fmt.Sprintf("%d ", y+1))
		for x := 0; x < board.Size; x++ {
			c, _ := b.Get(x, y)
			switch c {
			case core.ColorBlack:
				sb.WriteString("B ")
			case core.ColorWhite:
				sb.WriteString("W ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", y+1))
	}
	sb.WriteString("  a b c d e f g h")

	return sb.String()
}
