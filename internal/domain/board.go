package domain

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Board is a 6x7 grid. Row 0 is the top, row Rows-1 is the floor.
// It is an array, so plain assignment produces an independent copy.
type Board [Rows][Columns]Side

func NewBoard() Board {
	return Board{}
}

func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// here b[0] represents the top row (0 -> top and 5 -> bottom)
	return b[0][column] == Empty
}

// ValidMoves lists the playable columns in ascending order.
func (b *Board) ValidMoves() []int {
	return lo.Filter(allColumns, func(col int, _ int) bool {
		return b.IsValidMove(col)
	})
}

// DropPiece places side into the lowest empty cell of column.
// It reports false and leaves the board untouched when the move is illegal.
func (b *Board) DropPiece(column int, side Side) bool {
	_, err := b.DropDisk(column, side)
	return err == nil
}

// DropDisk is DropPiece that also reports the row the disk landed in.
func (b *Board) DropDisk(column int, side Side) (int, error) {
	if column < 0 || column >= Columns || !side.isPlayer() {
		return -1, ErrInvalidMove
	}

	// shifting the disk from top to bottom till it
	// reaches the end or another disk
	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			b[row][column] = side
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// RemovePiece clears the topmost disk of column, undoing the last drop there.
func (b *Board) RemovePiece(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}
	for row := 0; row < Rows; row++ {
		if b[row][column] != Empty {
			b[row][column] = Empty
			return true
		}
	}
	return false
}

func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b[0][c] == Empty {
			return false
		}
	}

	return true
}

// Copy returns an independent duplicate of the board.
func (b *Board) Copy() Board {
	return *b
}

// EmptyCells counts the empty cells in column.
func (b *Board) EmptyCells(column int) int {
	n := 0
	for row := 0; row < Rows; row++ {
		if b[row][column] == Empty {
			n++
		}
	}
	return n
}

// Signs flattens the board row by row using Side.Sign.
func (b *Board) Signs() []int {
	out := make([]int, 0, Rows*Columns)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			out = append(out, b[row][col].Sign())
		}
	}
	return out
}

// String draws the board top row first, with column labels 1..7 underneath.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			switch b[row][col] {
			case SideA:
				sb.WriteByte('X')
			case SideB:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	for col := 0; col < Columns; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(col + 1))
	}
	sb.WriteByte('\n')
	return sb.String()
}

var allColumns = lo.Range(Columns)
