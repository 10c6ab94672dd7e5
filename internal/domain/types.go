package domain

// Side is the content of a single board cell.
type Side int

const (
	Empty Side = 0
	SideA Side = 1 // first mover (human or random policy)
	SideB Side = 2 // second mover (AI)
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Opponent returns the other playing side. Empty has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	}
	return Empty
}

// Sign is the numeric export encoding used by move logs:
// SideA = 1, SideB = -1, Empty = 0.
func (s Side) Sign() int {
	switch s {
	case SideA:
		return 1
	case SideB:
		return -1
	}
	return 0
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	}
	return "empty"
}

func (s Side) isPlayer() bool {
	return s == SideA || s == SideB
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove   Error = "invalid move"
	ErrColumnFull    Error = "column is full"
	ErrGameOver      Error = "game is already finished"
	ErrNothingToUndo Error = "no move to undo"
)
