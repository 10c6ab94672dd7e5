package bot

import (
	"lukechampine.com/frand"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// RandomMove picks a legal column uniformly at random.
func RandomMove(board domain.Board) int {
	validColumns := board.ValidMoves()
	if len(validColumns) == 0 {
		return NoMove
	}
	return validColumns[frand.Intn(len(validColumns))]
}

// EasyMove looks one move ahead: it takes an immediate win, then blocks the
// opponent's immediate win, and otherwise plays at random.
func EasyMove(board domain.Board, side domain.Side) int {
	validColumns := board.ValidMoves()
	if len(validColumns) == 0 {
		return NoMove
	}

	for _, mover := range []domain.Side{side, side.Opponent()} {
		for _, col := range validColumns {
			child := board
			row, err := child.DropDisk(col, mover)
			if err == nil && child.CheckWinAt(row, col, mover) {
				return col
			}
		}
	}

	return validColumns[frand.Intn(len(validColumns))]
}
