package bot

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
)

const (
	FourInARowScore         = 100
	ThreeInARowScore        = 10
	TwoInARowScore          = 5
	BlockOpponentThreeScore = -80
	CenterColumnScore       = 3
)

// ScorePosition is the heuristic value of a non-terminal board for side.
// It rewards side's own open lines and center disks, and penalises every
// window where the opponent is one disk away from four.
func ScorePosition(board *domain.Board, side domain.Side) int {
	score := 0

	// Center column preference
	centerCol := domain.Columns / 2
	for row := 0; row < domain.Rows; row++ {
		if board[row][centerCol] == side {
			score += CenterColumnScore
		}
	}

	for _, w := range domain.Windows() {
		score += evaluateWindow(board.Values(w), side)
	}

	return score
}

func evaluateWindow(window [domain.ToWin]domain.Side, side domain.Side) int {
	opponent := side.Opponent()
	own, theirs, empty := 0, 0, 0
	for _, cell := range window {
		switch cell {
		case side:
			own++
		case opponent:
			theirs++
		default:
			empty++
		}
	}

	score := 0
	switch {
	case own == 4:
		score += FourInARowScore
	case own == 3 && empty == 1:
		score += ThreeInARowScore
	case own == 2 && empty == 2:
		score += TwoInARowScore
	}

	// not an else branch: both terms are checked on every window
	if theirs == 3 && empty == 1 {
		score += BlockOpponentThreeScore
	}

	return score
}
