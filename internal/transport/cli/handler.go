// FILE: internal/transport/cli/handler.go
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"othello/internal/cli"
	"othello/internal/core"
	"othello/internal/service"
)

type CLIHandler struct {
	svc    *service.Service
	view   *cli.CLI
	gameID string
}

func New(svc *service.Service, view *cli.CLI) *CLIHandler {
	return &CLIHandler{
		svc:  svc,
		view: view,
	}
}

// Run is the main game loop: prompt, read, process.
func (h *CLIHandler) Run() {
	for {
		cmd, err := h.view.GetCommand(h.getPrompt())
		if err != nil {
			break
		}

		if !h.ProcessCommand(cmd) {
			break
		}
	}
}

// getPrompt generates the appropriate command prompt
func (h *CLIHandler) getPrompt() string {
	prompt := "> "
	if h.gameID == "" {
		return prompt
	}

	session, err := h.svc.GetGame(h.gameID)
	if err != nil || session.Game().GameOver() {
		return prompt
	}

	turn, _ := session.Game().Turn()
	prompt = fmt.Sprintf("[%s]> ", turn)
	if player := session.NextPlayer(); player != nil && player.Type == core.PlayerComputer {
		prompt = "ENTER to execute computer move\n" + prompt
	}
	return prompt
}

// ProcessCommand handles one user command, returning false to exit.
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		// Empty command triggers a computer move if it's computer's turn
		if h.gameID != "" {
			session, err := h.svc.GetGame(h.gameID)
			if err == nil && !session.Game().GameOver() {
				if player := session.NextPlayer(); player != nil && player.Type == core.PlayerComputer {
					h.executeComputerMove()
				}
			}
		}
		return true

	case cli.CmdNew:
		return h.handleNewGame("")

	case cli.CmdResume:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: resume <position string>")
			return true
		}
		position := strings.Join(cmd.Args, " ")
		return h.handleNewGame(position)

	case cli.CmdMove:
		if h.gameID == "" {
			h.view.ShowMessage("No active game. Use 'new' or 'resume <position>'.")
			return true
		}

		result, err := h.svc.MakeHumanMove(h.gameID, cmd.Args[0])
		if err != nil {
			h.view.ShowError(fmt.Errorf("invalid move: %v", err))
			return true
		}

		h.view.ShowHumanMove(result.Move)
		h.displayCurrentBoard()

		if result.GameState != core.StateOngoing {
			h.view.ShowGameOver(result.GameState)
			h.gameID = ""
		}

	case cli.CmdUndo:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}

		count := 1
		if len(cmd.Args) > 0 {
			if n, err := strconv.Atoi(cmd.Args[0]); err == nil && n > 0 {
				count = n
			} else {
				h.view.ShowMessage("Invalid undo count. Usage: undo [count]")
				return true
			}
		}

		if err := h.svc.UndoMoves(h.gameID, count); err != nil {
			h.view.ShowError(err)
		} else {
			if count == 1 {
				h.view.ShowMessage("Move undone")
			} else {
				h.view.ShowMessage(fmt.Sprintf("%d moves undone", count))
			}
			h.displayCurrentBoard()
		}

	case cli.CmdHint:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}

		move, err := h.svc.SuggestMove(h.gameID)
		if err != nil {
			h.view.ShowError(err)
		} else {
			h.view.ShowMessage(fmt.Sprintf("Suggested move: %s", move))
		}

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|green|blue|gray>")
			return true
		}

		theme := cli.ColorTheme(cmd.Args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
		} else {
			h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
			if h.gameID != "" {
				h.displayCurrentBoard()
			}
		}

	case cli.CmdVerbose:
		verbose := h.view.ToggleVerbose()
		h.view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

	case cli.CmdHistory:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		session, _ := h.svc.GetGame(h.gameID)
		h.view.ShowGameHistory(session)

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

func (h *CLIHandler) displayCurrentBoard() {
	b, err := h.svc.GetCurrentBoard(h.gameID)
	if err != nil {
		return
	}
	h.view.DisplayBoard(b)
}

func (h *CLIHandler) executeComputerMove() {
	result, err := h.svc.MakeComputerMove(h.gameID)
	if err != nil {
		h.view.ShowError(fmt.Errorf("engine error: %v", err))
		h.gameID = ""
		return
	}

	h.view.ShowComputerMove(result)
	h.displayCurrentBoard()

	if result.GameState != core.StateOngoing {
		h.view.ShowGameOver(result.GameState)
		h.gameID = ""
	}
}

// handleNewGame starts a game after asking for the player setup. Black
// always moves first.
func (h *CLIHandler) handleNewGame(position string) bool {
	blackConfig := h.askPlayerConfig("Black")
	whiteConfig := h.askPlayerConfig("White")

	gameID := h.svc.GenerateGameID()
	if err := h.svc.CreateGame(gameID, blackConfig, whiteConfig, position); err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %v", err))
		return true
	}
	h.gameID = gameID

	h.view.ShowMessage("Game started.")
	h.displayCurrentBoard()

	return true
}

func (h *CLIHandler) askPlayerConfig(side string) core.PlayerConfig {
	input := h.view.ReadLine(fmt.Sprintf("Select %s player (h/c): ", side))

	config := core.PlayerConfig{Type: core.PlayerHuman}
	if input == "c" || input == "computer" {
		config.Type = core.PlayerComputer
		config.Depth = core.DefaultSearchDepth

		depthInput := h.view.ReadLine(fmt.Sprintf("Search depth for %s (1-8, default %d): ", side, core.DefaultSearchDepth))
		if n, err := strconv.Atoi(depthInput); err == nil && n >= 1 && n <= 8 {
			config.Depth = n
		}
	}
	return config
}
