// Package csvlog writes self-play move histories as CSV, one row per move.
package csvlog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/selfplay"
)

var header = []string{"Game", "Winner", "Move_Num", "Player", "Move", "Board_State"}

type MoveLog struct {
	w      *csv.Writer
	closer io.Closer
}

// Create opens (truncating) path and writes the header row.
func Create(path string) (*MoveLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create move log: %w", err)
	}
	l, err := New(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	l.closer = f
	return l, nil
}

// New writes the header row to w.
func New(w io.Writer) (*MoveLog, error) {
	l := &MoveLog{w: csv.NewWriter(w)}
	if err := l.w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write move log header: %w", err)
	}
	return l, nil
}

func (l *MoveLog) RecordGame(_ context.Context, rec selfplay.GameRecord) error {
	winner := formatWinner(rec.Winner)
	game := strconv.Itoa(rec.GameNumber)
	for i, mv := range rec.Moves {
		row := []string{
			game,
			winner,
			strconv.Itoa(i + 1),
			strconv.Itoa(mv.Side.Sign()),
			strconv.Itoa(mv.Column),
			formatBoard(mv.Before),
		}
		if err := l.w.Write(row); err != nil {
			return fmt.Errorf("failed to write move: %w", err)
		}
	}
	l.w.Flush()
	return l.w.Error()
}

func (l *MoveLog) Close() error {
	l.w.Flush()
	err := l.w.Error()
	if l.closer != nil {
		if cerr := l.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func formatWinner(s domain.Side) string {
	if s == domain.Empty {
		return "draw"
	}
	return strconv.Itoa(s.Sign())
}

// formatBoard renders the row-major sign encoding as "[0, 0, 1, ...]".
func formatBoard(b domain.Board) string {
	signs := b.Signs()
	parts := make([]string, len(signs))
	for i, v := range signs {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
