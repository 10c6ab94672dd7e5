package domain

import "math"

const (
	KFactor       = 32.0
	InitialRating = 1200
)

// UpdateElo returns both ratings after one game between SideA (rated a) and
// SideB (rated b). winner is Empty for a draw.
func UpdateElo(a, b int, winner Side) (int, int) {
	scoreA := 0.5
	switch winner {
	case SideA:
		scoreA = 1
	case SideB:
		scoreA = 0
	}
	return eloAfter(a, b, scoreA), eloAfter(b, a, 1-scoreA)
}

// eloAfter is the new rating of a player rated r who scored score
// (1 win, 0.5 draw, 0 loss) against an opponent rated opp.
func eloAfter(r, opp int, score float64) int {
	expected := 1.0 / (1.0 + math.Pow(10.0, float64(opp-r)/400.0))
	next := float64(r) + KFactor*(score-expected)
	if next < 0 {
		return 0
	}
	return int(math.Round(next))
}
