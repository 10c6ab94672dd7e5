package domain

// Cell addresses a single board position.
type Cell struct {
	Row, Col int
}

// Window is a run of ToWin contiguous cells along one line orientation.
type Window [ToWin]Cell

var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{-1, 1}, // diagonal /
}

var windows = buildWindows()

func buildWindows() []Window {
	var out []Window
	for _, dir := range directions {
		dRow, dCol := dir[0], dir[1]
		for row := 0; row < Rows; row++ {
			for col := 0; col < Columns; col++ {
				endRow := row + dRow*(ToWin-1)
				endCol := col + dCol*(ToWin-1)
				if !inBounds(endRow, endCol) {
					continue
				}
				var w Window
				for i := 0; i < ToWin; i++ {
					w[i] = Cell{Row: row + dRow*i, Col: col + dCol*i}
				}
				out = append(out, w)
			}
		}
	}
	return out
}

// Windows returns every four-cell window on the board. The slice is shared
// and must not be modified.
func Windows() []Window {
	return windows
}

// Values reads the contents of w from the board.
func (b *Board) Values(w Window) [ToWin]Side {
	var out [ToWin]Side
	for i, c := range w {
		out[i] = b[c.Row][c.Col]
	}
	return out
}

// HasFourInARow scans the whole board for a run of four side disks.
func (b *Board) HasFourInARow(side Side) bool {
	if !side.isPlayer() {
		return false
	}
	for _, w := range windows {
		won := true
		for _, c := range w {
			if b[c.Row][c.Col] != side {
				won = false
				break
			}
		}
		if won {
			return true
		}
	}
	return false
}

// CheckWinAt only checks lines passing through (row, column), which is
// enough right after a disk was dropped there.
func (b *Board) CheckWinAt(row, column int, side Side) bool {
	if !inBounds(row, column) || b[row][column] != side || !side.isPlayer() {
		return false
	}
	for _, dir := range directions {
		dRow, dCol := dir[0], dir[1]
		total := 1 + b.countInDirection(row, column, dRow, dCol, side) +
			b.countInDirection(row, column, -dRow, -dCol, side)
		if total >= ToWin {
			return true
		}
	}
	return false
}

// this counts the number of disks in a specific direction
func (b *Board) countInDirection(row, column, deltaRow, deltaCol int, side Side) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for inBounds(r, c) && b[r][c] == side {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}
