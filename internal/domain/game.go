package domain

// Move is one applied turn together with the board as it was before it.
type Move struct {
	Side   Side
	Column int
	Row    int
	Before Board
}

// Game is caller-side bookkeeping around a Board: whose turn it is, the
// outcome so far and the move history. The search engine never uses it.
type Game struct {
	Board       Board
	CurrentSide Side
	Status      GameStatus
	Winner      Side
	MoveCount   int
	History     []Move
}

func NewGame() *Game {
	return &Game{
		Board:       NewBoard(),
		CurrentSide: SideA,
		Status:      StatusActive,
		Winner:      Empty,
	}
}

// MakeMove drops a disk for the side to move and advances the turn.
func (g *Game) MakeMove(column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameOver
	}

	if !g.Board.IsValidMove(column) {
		return -1, ErrInvalidMove
	}

	before := g.Board
	side := g.CurrentSide
	row, err := g.Board.DropDisk(column, side)
	if err != nil {
		return -1, err
	}

	g.MoveCount++
	g.History = append(g.History, Move{Side: side, Column: column, Row: row, Before: before})

	if g.Board.CheckWinAt(row, column, side) {
		g.Status = StatusWon
		g.Winner = side
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentSide = side.Opponent()
	return row, nil
}

// Undo takes back the most recent move, reopening a finished game if needed.
func (g *Game) Undo() error {
	if len(g.History) == 0 {
		return ErrNothingToUndo
	}

	last := g.History[len(g.History)-1]
	if !g.Board.RemovePiece(last.Column) {
		return ErrNothingToUndo
	}

	g.History = g.History[:len(g.History)-1]
	g.MoveCount--
	g.CurrentSide = last.Side
	g.Status = StatusActive
	g.Winner = Empty
	return nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
