package bot

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

const (
	// NoMove is returned when the board has no legal column.
	NoMove = -1

	MinimaxWin  = 1000000000
	MinimaxLoss = -1000000000
	MinimaxDraw = 0

	InteractiveDepth = 4
	SelfPlayDepth    = 3
)

// SearchResult is the chosen column and its score from the searching
// side's point of view.
type SearchResult struct {
	Column int
	Score  int
}

// ChooseMove returns the column ai should play, or NoMove on a full board.
func ChooseMove(board domain.Board, ai domain.Side, depth int) int {
	return Search(board, ai, depth).Column
}

// Search runs a full-window alpha-beta search from the root. The caller's
// board is never modified. A root that is already decided (a four-in-a-row
// exists or the board is full) yields NoMove.
func Search(board domain.Board, ai domain.Side, depth int) SearchResult {
	if depth < 1 {
		depth = 1
	}

	res := Minimax(board, depth, math.MinInt, math.MaxInt, true, ai)
	log.Debug().Str("component", "bot").Int("depth", depth).
		Int("column", res.Column).Int("score", res.Score).Msg("search finished")
	return res
}

// Minimax implements the minimax algorithm with alpha-beta pruning. Terminal
// positions are scored before the depth budget is consulted, and leaves are
// always evaluated from ai's perspective. Columns are tried in ascending
// order and only a strictly better score replaces the incumbent, so ties go
// to the lowest column.
func Minimax(board domain.Board, depth int, alpha, beta int, isMaximizing bool, ai domain.Side) SearchResult {
	validColumns := board.ValidMoves()
	opponent := ai.Opponent()

	// Terminal conditions
	if board.HasFourInARow(ai) || board.HasFourInARow(opponent) || len(validColumns) == 0 {
		return SearchResult{Column: NoMove, Score: terminalScore(&board, ai)}
	}
	if depth <= 0 {
		return SearchResult{Column: NoMove, Score: ScorePosition(&board, ai)}
	}

	bestCol := validColumns[0]

	if isMaximizing {
		maxEval := math.MinInt
		for _, col := range validColumns {
			child := board
			child.DropPiece(col, ai)

			eval := Minimax(child, depth-1, alpha, beta, false, ai).Score
			if eval > maxEval {
				maxEval, bestCol = eval, col
			}
			alpha = max(alpha, maxEval)

			if alpha >= beta {
				break // Beta cutoff
			}
		}
		return SearchResult{Column: bestCol, Score: maxEval}
	}

	minEval := math.MaxInt
	for _, col := range validColumns {
		child := board
		child.DropPiece(col, opponent)

		eval := Minimax(child, depth-1, alpha, beta, true, ai).Score
		if eval < minEval {
			minEval, bestCol = eval, col
		}
		beta = min(beta, minEval)

		if alpha >= beta {
			break // Alpha cutoff
		}
	}
	return SearchResult{Column: bestCol, Score: minEval}
}

func terminalScore(board *domain.Board, ai domain.Side) int {
	switch {
	case board.HasFourInARow(ai):
		return MinimaxWin
	case board.HasFourInARow(ai.Opponent()):
		return MinimaxLoss
	}
	return MinimaxDraw
}
