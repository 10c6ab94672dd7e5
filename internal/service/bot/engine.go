package bot

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// Player decides the next column for side on board.
type Player interface {
	ChooseMove(board domain.Board, side domain.Side) int
}

// MinimaxPlayer plays the alpha-beta search at a fixed depth. With Parallel
// set, root columns are searched concurrently; the chosen column is the same.
type MinimaxPlayer struct {
	Depth    int
	Parallel bool
}

func (p MinimaxPlayer) ChooseMove(board domain.Board, side domain.Side) int {
	if !p.Parallel {
		return ChooseMove(board, side, p.Depth)
	}
	res, err := SearchParallel(context.Background(), board, side, p.Depth)
	if err != nil {
		log.Error().Str("component", "bot").Err(err).Msg("parallel search failed, searching serially")
		return ChooseMove(board, side, p.Depth)
	}
	return res.Column
}

// RandomPlayer plays uniformly random legal moves.
type RandomPlayer struct{}

func (RandomPlayer) ChooseMove(board domain.Board, _ domain.Side) int {
	return RandomMove(board)
}

// EasyPlayer wins or blocks one move ahead and is random otherwise.
type EasyPlayer struct{}

func (EasyPlayer) ChooseMove(board domain.Board, side domain.Side) int {
	return EasyMove(board, side)
}

// PlayerForDifficulty maps a difficulty name to a policy.
// Unknown names fall back to medium.
func PlayerForDifficulty(difficulty string) Player {
	switch difficulty {
	case "easy":
		return EasyPlayer{}
	case "medium":
		return MinimaxPlayer{Depth: 2}
	case "hard":
		return MinimaxPlayer{Depth: InteractiveDepth}
	default:
		return MinimaxPlayer{Depth: 2}
	}
}

// CalculateBestMove selects the best move based on difficulty
func CalculateBestMove(board domain.Board, botSide domain.Side, difficulty string) int {
	return PlayerForDifficulty(difficulty).ChooseMove(board, botSide)
}
