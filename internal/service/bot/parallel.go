package bot

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// SearchParallel searches each root column in its own goroutine with a full
// alpha-beta window. Root values come back exact, so picking the first
// strictly best column gives the same result as Search.
func SearchParallel(ctx context.Context, board domain.Board, ai domain.Side, depth int) (SearchResult, error) {
	if depth < 1 {
		depth = 1
	}

	validColumns := board.ValidMoves()
	if len(validColumns) == 0 || board.HasFourInARow(ai) || board.HasFourInARow(ai.Opponent()) {
		return SearchResult{Column: NoMove, Score: terminalScore(&board, ai)}, nil
	}

	scores := make([]int, len(validColumns))
	g, ctx := errgroup.WithContext(ctx)
	for i, col := range validColumns {
		i := i // per-iteration copy (go 1.21 loop semantics)
		child := board
		child.DropPiece(col, ai)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scores[i] = Minimax(child, depth-1, math.MinInt, math.MaxInt, false, ai).Score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SearchResult{Column: NoMove}, err
	}

	best := SearchResult{Column: validColumns[0], Score: math.MinInt}
	for i, col := range validColumns {
		if scores[i] > best.Score {
			best = SearchResult{Column: col, Score: scores[i]}
		}
	}
	return best, nil
}
