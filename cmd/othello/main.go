// FILE: cmd/othello/main.go
// Package main implements the local terminal Othello application.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"othello/internal/cli"
	"othello/internal/service"
	clitransport "othello/internal/transport/cli"
)

// readlineReader adapts a readline instance to the view's LineReader.
type readlineReader struct {
	rl *readline.Instance
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

func newReader() (cli.LineReader, error) {
	// Line editing and history only make sense on a real terminal;
	// piped input falls back to a plain scanner.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return cli.NewScannerReader(os.Stdin, os.Stdout), nil
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     os.ExpandEnv("$HOME/.othello_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &readlineReader{rl: rl}, nil
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()

	svc := service.New(nil, logger)
	defer svc.Close()

	reader, err := newReader()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer reader.Close()

	view := cli.New(reader, os.Stdout)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		view.SetTheme(cli.ThemeGreen)
	}
	handler := clitransport.New(svc, view)

	view.ShowWelcome()
	handler.Run() // All game loop logic is in the handler
}
