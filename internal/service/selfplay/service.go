// Package selfplay pits a random policy against the search engine over many
// games and hands every finished game to a set of recorders.
package selfplay

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
	"github.com/iamasit07/connect4-engine/pkg/uid"
)

// GameRecord is one finished game. Winner is Empty for a draw.
type GameRecord struct {
	RunID      string
	GameNumber int
	Winner     domain.Side
	Moves      []domain.Move
}

// Summary tallies the outcomes of a run.
type Summary struct {
	RunID string
	Games int
	WinsA int
	WinsB int
	Draws int
}

// Recorder persists finished games.
type Recorder interface {
	RecordGame(ctx context.Context, rec GameRecord) error
}

type Options struct {
	// Depth is the search depth of the minimax side. Zero means bot.SelfPlayDepth.
	Depth   int
	Workers int
	// PlayerA and PlayerB override the default policies (random vs minimax).
	PlayerA bot.Player
	PlayerB bot.Player
}

type Service struct {
	playerA   bot.Player
	playerB   bot.Player
	workers   int
	recorders []Recorder
}

func NewService(opts Options, recorders ...Recorder) *Service {
	depth := opts.Depth
	if depth <= 0 {
		depth = bot.SelfPlayDepth
	}
	s := &Service{
		playerA:   opts.PlayerA,
		playerB:   opts.PlayerB,
		workers:   max(opts.Workers, 1),
		recorders: recorders,
	}
	if s.playerA == nil {
		s.playerA = bot.RandomPlayer{}
	}
	if s.playerB == nil {
		s.playerB = bot.MinimaxPlayer{Depth: depth}
	}
	return s
}

// PlayGame plays a single game. SideA moves first.
func (s *Service) PlayGame(ctx context.Context, number int) (GameRecord, error) {
	g := domain.NewGame()
	for !g.IsFinished() {
		if err := ctx.Err(); err != nil {
			return GameRecord{}, err
		}

		player := s.playerA
		if g.CurrentSide == domain.SideB {
			player = s.playerB
		}

		col := player.ChooseMove(g.Board, g.CurrentSide)
		if _, err := g.MakeMove(col); err != nil {
			return GameRecord{}, fmt.Errorf("game %d move %d: side %s chose column %d: %w",
				number, g.MoveCount+1, g.CurrentSide, col, err)
		}
	}

	return GameRecord{
		GameNumber: number,
		Winner:     g.Winner,
		Moves:      g.History,
	}, nil
}

// Run plays games concurrently, then records them in game order.
func (s *Service) Run(ctx context.Context, games int) (Summary, error) {
	if games < 0 {
		return Summary{}, fmt.Errorf("games must be non-negative, got %d", games)
	}
	runID, err := uid.GenerateRunID()
	if err != nil {
		return Summary{}, err
	}
	start := time.Now()
	log.Info().Str("component", "selfplay").Str("run", runID).Int("games", games).
		Int("workers", s.workers).Msg("starting run")

	records := make([]GameRecord, games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range records {
		i := i // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			rec, err := s.PlayGame(gctx, i+1)
			if err != nil {
				return err
			}
			rec.RunID = runID
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	for _, rec := range records {
		for _, r := range s.recorders {
			if err := r.RecordGame(ctx, rec); err != nil {
				return Summary{}, fmt.Errorf("recording game %d: %w", rec.GameNumber, err)
			}
		}
	}

	summary := Summarize(runID, records)
	ratingA, ratingB := Ratings(records)
	log.Info().Str("component", "selfplay").Str("run", runID).
		Int("winsA", summary.WinsA).Int("winsB", summary.WinsB).Int("draws", summary.Draws).
		Int("eloA", ratingA).Int("eloB", ratingB).
		Dur("elapsed", time.Since(start)).Msg("run finished")
	return summary, nil
}

// Ratings replays the records in order through the Elo update, both
// policies starting at domain.InitialRating.
func Ratings(records []GameRecord) (ratingA, ratingB int) {
	ratingA, ratingB = domain.InitialRating, domain.InitialRating
	for _, rec := range records {
		ratingA, ratingB = domain.UpdateElo(ratingA, ratingB, rec.Winner)
	}
	return ratingA, ratingB
}

func Summarize(runID string, records []GameRecord) Summary {
	return Summary{
		RunID: runID,
		Games: len(records),
		WinsA: lo.CountBy(records, func(r GameRecord) bool { return r.Winner == domain.SideA }),
		WinsB: lo.CountBy(records, func(r GameRecord) bool { return r.Winner == domain.SideB }),
		Draws: lo.CountBy(records, func(r GameRecord) bool { return r.Winner == domain.Empty }),
	}
}
