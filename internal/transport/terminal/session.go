// Package terminal is a text front end for playing against the engine.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

// Session is one human-vs-engine match. It writes everything it has to say
// to out and never reads input itself.
type Session struct {
	game  *domain.Game
	human domain.Side
	ai    domain.Side
	ply   bot.Player
	out   io.Writer
}

// NewSession starts a game. When aiFirst is set the engine plays SideA and
// moves immediately.
func NewSession(out io.Writer, ply bot.Player, aiFirst bool) *Session {
	s := &Session{human: domain.SideA, ai: domain.SideB, ply: ply, out: out}
	if aiFirst {
		s.human, s.ai = domain.SideB, domain.SideA
	}
	s.reset()
	return s
}

func (s *Session) Game() *domain.Game {
	return s.game
}

func (s *Session) reset() {
	s.game = domain.NewGame()
	if s.game.CurrentSide == s.ai {
		s.aiMove()
	}
	s.printBoard()
}

// Handle processes one input line. It reports true when the user asked to leave.
func (s *Session) Handle(line string) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "":
	case "exit", "quit", "bye":
		return true
	case "help":
		s.usage()
	case "new":
		s.reset()
	case "undo":
		s.undo()
	case "board":
		s.printBoard()
	default:
		col, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(s.out, "unknown command %q, type help\n", line)
			return false
		}
		s.humanMove(col - 1)
	}
	return false
}

func (s *Session) humanMove(col int) {
	if s.game.IsFinished() {
		fmt.Fprintln(s.out, "game over, type new to play again")
		return
	}
	if !s.game.Board.IsValidMove(col) {
		fmt.Fprintf(s.out, "column %d is not playable\n", col+1)
		return
	}
	if _, err := s.game.MakeMove(col); err != nil {
		fmt.Fprintf(s.out, "move rejected: %v\n", err)
		return
	}
	if !s.announce() {
		s.aiMove()
		s.announce()
	}
	s.printBoard()
}

func (s *Session) aiMove() {
	col := s.ply.ChooseMove(s.game.Board, s.ai)
	if _, err := s.game.MakeMove(col); err != nil {
		log.Error().Str("component", "cli").Err(err).Int("column", col).Msg("engine move rejected")
		return
	}
	fmt.Fprintf(s.out, "engine plays %d\n", col+1)
}

// undo takes moves back until it is the human's turn again.
func (s *Session) undo() {
	if err := s.game.Undo(); err != nil {
		if errors.Is(err, domain.ErrNothingToUndo) {
			fmt.Fprintln(s.out, "nothing to undo")
			return
		}
		fmt.Fprintf(s.out, "undo failed: %v\n", err)
		return
	}
	for s.game.CurrentSide != s.human && len(s.game.History) > 0 {
		if err := s.game.Undo(); err != nil {
			break
		}
	}
	if s.game.CurrentSide == s.ai {
		s.aiMove()
	}
	s.printBoard()
}

// announce prints the result of a finished game and reports whether it is over.
func (s *Session) announce() bool {
	switch s.game.Status {
	case domain.StatusWon:
		if s.game.Winner == s.human {
			fmt.Fprintln(s.out, "you win!")
		} else {
			fmt.Fprintln(s.out, "the engine wins")
		}
		return true
	case domain.StatusDraw:
		fmt.Fprintln(s.out, "draw")
		return true
	}
	return false
}

func (s *Session) printBoard() {
	fmt.Fprint(s.out, s.game.Board.String())
}

func (s *Session) usage() {
	io.WriteString(s.out, "commands:\n")
	io.WriteString(s.out, "1-7 - drop a disk in that column\n")
	io.WriteString(s.out, "undo - take back your last move\n")
	io.WriteString(s.out, "new - start a new game\n")
	io.WriteString(s.out, "board - show the board\n")
	io.WriteString(s.out, "exit - leave\n")
}
