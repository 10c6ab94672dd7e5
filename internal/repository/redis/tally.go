package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/selfplay"
)

const (
	TotalsKey = "selfplay:totals"

	fieldGames = "games"
	fieldWinsA = "winsA"
	fieldWinsB = "winsB"
	fieldDraws = "draws"
)

// Counter is the subset of Redis hash commands the tally needs.
type Counter interface {
	HIncrByAll(ctx context.Context, keys, fields []string, incr int64) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// OutcomeTally keeps per-run and all-time win/draw counters in Redis hashes.
type OutcomeTally struct {
	store Counter
}

func NewOutcomeTally(store Counter) *OutcomeTally {
	return &OutcomeTally{store: store}
}

func RunKey(runID string) string {
	return "selfplay:" + runID
}

func (t *OutcomeTally) RecordGame(ctx context.Context, rec selfplay.GameRecord) error {
	keys := []string{RunKey(rec.RunID), TotalsKey}
	fields := []string{fieldGames, outcomeField(rec.Winner)}
	if err := t.store.HIncrByAll(ctx, keys, fields, 1); err != nil {
		return fmt.Errorf("failed to tally game %d of run %s: %w", rec.GameNumber, rec.RunID, err)
	}
	return nil
}

// Summary reads back the counters of a run.
func (t *OutcomeTally) Summary(ctx context.Context, runID string) (selfplay.Summary, error) {
	s, err := t.read(ctx, RunKey(runID))
	s.RunID = runID
	return s, err
}

func (t *OutcomeTally) Totals(ctx context.Context) (selfplay.Summary, error) {
	return t.read(ctx, TotalsKey)
}

func (t *OutcomeTally) read(ctx context.Context, key string) (selfplay.Summary, error) {
	fields, err := t.store.HGetAll(ctx, key)
	if err != nil {
		return selfplay.Summary{}, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var s selfplay.Summary
	for name, dst := range map[string]*int{
		fieldGames: &s.Games,
		fieldWinsA: &s.WinsA,
		fieldWinsB: &s.WinsB,
		fieldDraws: &s.Draws,
	} {
		v, ok := fields[name]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return selfplay.Summary{}, fmt.Errorf("bad counter %s.%s=%q: %w", key, name, v, err)
		}
		*dst = n
	}
	return s, nil
}

func outcomeField(winner domain.Side) string {
	switch winner {
	case domain.SideA:
		return fieldWinsA
	case domain.SideB:
		return fieldWinsB
	}
	return fieldDraws
}
