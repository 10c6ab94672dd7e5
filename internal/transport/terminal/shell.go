package terminal

import (
	"io"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// Shell reads commands with readline and feeds them to a Session.
type Shell struct {
	l       *readline.Instance
	session *Session
}

func NewShell(ply bot.Player, aiFirst bool) (*Shell, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "\033[33mconnect4>\033[0m ",
		HistoryFile: "/tmp/connect4.readline.tmp",
		EOFPrompt:   "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return &Shell{l: l, session: NewSession(l.Stdout(), ply, aiFirst)}, nil
}

// Loop runs until the user exits, sends EOF or interrupts on an empty line.
func (sh *Shell) Loop() {
	defer sh.l.Close()

	for {
		line, err := sh.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if sh.session.Handle(line) {
			break
		}
	}
	log.Debug().Str("component", "cli").Msg("exiting readline loop")
}
