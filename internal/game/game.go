// Package game runs a two-player console game on top of the engine.
package game

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/notation"
	"github.com/lgbarn/chess-engine-go/internal/output"
)

// Prompts shown to the player.
const (
	SourcePrompt      = "Please input the square of the piece you want to move."
	DestinationPrompt = "Please input the destination square:"
	separator         = "------------------------------------------------------------"
)

// Game is one session between two players sharing an input stream.
type Game struct {
	ID    string
	Board *chess.Board
	Turn  chess.Colour
	Plies int

	cfg    *config.Config
	in     *bufio.Scanner
	writer output.BoardWriter
}

// Result describes a finished game.
type Result struct {
	Winner chess.Colour
	Plies  int
}

// New creates a game reading moves from in. The starting position is
// cfg.StartFEN, or the standard setup with White to move when it is empty.
func New(cfg *config.Config, in io.Reader) (*Game, error) {
	board := chess.NewStandardBoard()
	turn := chess.White
	if cfg.StartFEN != "" {
		var err error
		board, turn, err = engine.ParseFEN(cfg.StartFEN)
		if err != nil {
			return nil, errors.Wrap(err, "start position")
		}
	}

	id := uuid.New().String()
	return &Game{
		ID:     id,
		Board:  board,
		Turn:   turn,
		cfg:    cfg,
		in:     bufio.NewScanner(in),
		writer: output.NewWriter(cfg, id),
	}, nil
}

// Play runs turns until one side is checkmated. A rejected move is
// reported and the same side is asked again. Running out of input before
// the game ends returns an error wrapping io.ErrUnexpectedEOF.
func (g *Game) Play() (Result, error) {
	g.cfg.Logf(1, "game %s started, %v to move", g.ID, g.Turn)
	if err := g.writer.WriteBoard(g.Board, g.Turn); err != nil {
		return Result{}, err
	}

	for !engine.IsCheckmate(g.Board, g.Turn) {
		if err := g.playTurn(); err != nil {
			return Result{}, err
		}
	}

	winner := g.Turn.Opposite()
	g.printf("\nCheckmate, %v wins!\n", winner)
	g.cfg.Logf(1, "game %s over after %d plies: %v wins", g.ID, g.Plies, winner)
	return Result{Winner: winner, Plies: g.Plies}, nil
}

// playTurn asks for moves until one is accepted, then shows the new board
// and passes the turn.
func (g *Game) playTurn() error {
	for {
		g.printf("\n%v:\n\n%s\n", g.Turn, SourcePrompt)
		src, err := g.readSquare()
		if err != nil {
			if g.retry(err) {
				continue
			}
			return err
		}

		g.printf("\n%s\n", DestinationPrompt)
		dst, err := g.readSquare()
		if err != nil {
			if g.retry(err) {
				continue
			}
			return err
		}

		if err := engine.Move(g.Board, g.Turn, src, dst); err != nil {
			g.retry(err)
			continue
		}

		g.Plies++
		g.cfg.Logf(2, "game %s: %v played %v%v", g.ID, g.Turn, src, dst)
		g.Turn = g.Turn.Opposite()
		return g.writer.WriteBoard(g.Board, g.Turn)
	}
}

// readSquare reads and parses the next input line.
func (g *Game) readSquare() (chess.Position, error) {
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			return chess.NoPosition, fmt.Errorf("game %s: %w", g.ID, err)
		}
		return chess.NoPosition, fmt.Errorf("game %s: %w", g.ID, io.ErrUnexpectedEOF)
	}
	return notation.ParseSquare(g.in.Text())
}

// retry reports a recoverable error to the player and returns true, or
// returns false for errors that end the game.
func (g *Game) retry(err error) bool {
	if !isRecoverable(err) {
		return false
	}
	g.printf("\nError: %v. Please try again.\n%s\n", err, separator)
	g.cfg.Logf(2, "game %s: rejected: %v", g.ID, err)
	return true
}

func isRecoverable(err error) bool {
	for _, target := range []error{
		errors.ErrInvalidSquare,
		errors.ErrEmptySource,
		errors.ErrWrongOwner,
		errors.ErrIllegalDestination,
	} {
		if stderrors.Is(err, target) {
			return true
		}
	}
	return false
}

// printf writes player-facing text. JSON output carries only snapshots.
func (g *Game) printf(format string, args ...interface{}) {
	if g.cfg.Output.JSONFormat {
		return
	}
	fmt.Fprintf(g.cfg.OutputFile, format, args...)
}

// Transcript converts coordinate moves such as "e2e4" into the
// line-per-square input Play reads. It fails on the first entry that is
// not a coordinate move.
func Transcript(moves ...string) (string, error) {
	var sb strings.Builder
	for _, m := range moves {
		move, err := notation.ParseMove(m)
		if err != nil {
			return "", err
		}
		sb.WriteString(notation.SquareName(move.From) + "\n" + notation.SquareName(move.To) + "\n")
	}
	return sb.String(), nil
}
