// FILE: internal/cli/cli.go
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"othello/internal/board"
	"othello/internal/core"
	"othello/internal/service"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdResume
	CmdMove
	CmdUndo
	CmdHint
	CmdColor
	CmdVerbose
	CmdHistory
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// LineReader supplies user input one line at a time. The terminal
// binary wires a readline-backed implementation; ScannerReader is the
// plain fallback for pipes and tests.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// ScannerReader reads lines with bufio and prints prompts itself.
type ScannerReader struct {
	scanner *bufio.Scanner
	output  io.Writer
}

func NewScannerReader(input io.Reader, output io.Writer) *ScannerReader {
	return &ScannerReader{
		scanner: bufio.NewScanner(input),
		output:  output,
	}
}

func (r *ScannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.output, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *ScannerReader) Close() error {
	return nil
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeGreen ColorTheme = "green"
	ThemeBlue  ColorTheme = "blue"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	boardBg string
	white   string
	black   string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeGreen: {
		boardBg: "\033[48;5;22m", // Felt green
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeBlue: {
		boardBg: "\033[48;5;24m",
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		boardBg: "\033[48;5;240m",
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
}

type CLI struct {
	reader  LineReader
	output  io.Writer
	theme   ColorTheme
	verbose bool
}

func New(reader LineReader, output io.Writer) *CLI {
	return &CLI{
		reader:  reader,
		output:  output,
		theme:   ThemeOff,
		verbose: false,
	}
}

// GetCommand reads and parses one command, blocking for input.
func (c *CLI) GetCommand(prompt string) (*Command, error) {
	line, err := c.reader.ReadLine(prompt)
	if err == io.EOF {
		return &Command{Type: CmdQuit}, nil
	}
	if err != nil {
		return nil, err
	}

	input := strings.TrimSpace(line)
	if input == "" {
		return &Command{Type: CmdNone}, nil
	}

	return c.parseCommand(input), nil
}

func (c *CLI) parseCommand(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args}
	case "resume":
		return &Command{Type: CmdResume, Args: args, Raw: input}
	case "undo":
		return &Command{Type: CmdUndo, Args: args}
	case "hint":
		return &Command{Type: CmdHint}
	case "color":
		return &Command{Type: CmdColor, Args: args}
	case "verbose":
		return &Command{Type: CmdVerbose}
	case "history":
		return &Command{Type: CmdHistory}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		// Assume it's a move
		return &Command{Type: CmdMove, Args: []string{cmd}}
	}
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, green, blue, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) ToggleVerbose() bool {
	c.verbose = !c.verbose
	return c.verbose
}

func (c *CLI) IsVerbose() bool {
	return c.verbose
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v", err))
}

func (c *CLI) ReadLine(prompt string) string {
	line, err := c.reader.ReadLine(prompt)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (c *CLI) DisplayBoard(b board.Board) {
	theme := themes[c.theme]
	var sb strings.Builder

	sb.WriteString("\n  a b c d e f g h\n")

	for y := 0; y < board.Size; y++ {
		sb.WriteString(fmt.Sprintf("%d ", y+1))
		for x := 0; x < board.Size; x++ {
			cell, _ := b.Get(x, y)

			if c.theme == ThemeOff {
				switch cell {
				case core.ColorBlack:
					sb.WriteString("B ")
				case core.ColorWhite:
					sb.WriteString("W ")
				default:
					sb.WriteString(". ")
				}
				continue
			}

			switch cell {
			case core.ColorBlack:
				sb.WriteString(fmt.Sprintf("%s%s● %s", theme.boardBg, theme.black, theme.reset))
			case core.ColorWhite:
				sb.WriteString(fmt.Sprintf("%s%s● %s", theme.boardBg, theme.white, theme.reset))
			default:
				sb.WriteString(fmt.Sprintf("%s  %s", theme.boardBg, theme.reset))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", y+1))
	}
	sb.WriteString("  a b c d e f g h\n")

	c.ShowMessage(sb.String())
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  new               - Start a new game with player type selection
  resume <position> - Resume from a position string, e.g. '8/8/8/3WB3/3BW3/8/8/8 b'
  <move>            - Make a move (e.g., d3, f5)
  undo [count]      - Undo last move(s), default 1
  hint              - Suggest a move for the side to play
  color <theme>     - Set board color theme (off|green|blue|gray)
  verbose           - Toggle detailed move information
  history           - Show game move history and positions
  quit/exit         - Exit the program
  help/?            - Show this help message

During any game:
  Press ENTER       - Execute computer move (when it's computer's turn)`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Othello!")
	c.ShowMessage("Commands: new, resume <position>, <move>, undo, quit/exit, verbose, history, help/?")
	c.ShowMessage("Moves are column letter plus row number, e.g. 'd3'.")
	c.ShowMessage("Press ENTER to execute computer moves when it's computer's turn.")
	c.ShowMessage("")
}

func (c *CLI) ShowGameHistory(session *service.Session) {
	c.ShowMessage(fmt.Sprintf("Starting position: %s", session.InitialPosition()))

	moves := session.Moves()
	for i := 0; i < len(moves); i += 2 {
		moveNum := i/2 + 1
		first := moves[i]
		if i+1 < len(moves) {
			second := moves[i+1]
			c.ShowMessage(fmt.Sprintf("%d. %s | %s", moveNum, first, second))
		} else {
			c.ShowMessage(fmt.Sprintf("%d. %s | ...", moveNum, first))
		}
	}
	c.ShowMessage(fmt.Sprintf("Current position: %s", session.CurrentPosition()))
	c.ShowMessage(fmt.Sprintf("Game state: %s", session.Game().State()))
}

func (c *CLI) ShowComputerMove(result *service.MoveResult) {
	if c.verbose {
		c.ShowMessage(fmt.Sprintf("Computer (%s): %s (depth=%d, score=%d)",
			result.Player, result.Move, result.Depth, result.Score))
	} else {
		c.ShowMessage(fmt.Sprintf("Computer (%s): %s", result.Player, result.Move))
	}
}

func (c *CLI) ShowHumanMove(move string) {
	if c.verbose {
		c.ShowMessage(fmt.Sprintf("Your move: %s", move))
	}
}

func (c *CLI) ShowGameOver(state core.State) {
	c.ShowMessage(fmt.Sprintf("\nGame Over: %s", state))
	c.ShowMessage("Start a new game with 'new' or 'resume'.")
}
