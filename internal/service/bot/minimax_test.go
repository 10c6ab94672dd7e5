package bot

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

// play applies columns alternately starting with SideA.
func play(t *testing.T, columns ...int) domain.Board {
	t.Helper()
	b := domain.NewBoard()
	side := domain.SideA
	for _, col := range columns {
		require.True(t, b.DropPiece(col, side), "column %d", col)
		side = side.Opponent()
	}
	return b
}

// plainMinimax is the unpruned reference with the same tie-break.
func plainMinimax(board domain.Board, depth int, isMaximizing bool, ai domain.Side) SearchResult {
	validColumns := board.ValidMoves()
	if board.HasFourInARow(ai) || board.HasFourInARow(ai.Opponent()) || len(validColumns) == 0 {
		return SearchResult{Column: NoMove, Score: terminalScore(&board, ai)}
	}
	if depth == 0 {
		return SearchResult{Column: NoMove, Score: ScorePosition(&board, ai)}
	}

	best := SearchResult{Column: validColumns[0], Score: math.MaxInt}
	mover := ai.Opponent()
	if isMaximizing {
		best.Score = math.MinInt
		mover = ai
	}
	for _, col := range validColumns {
		child := board
		child.DropPiece(col, mover)
		score := plainMinimax(child, depth-1, !isMaximizing, ai).Score
		if (isMaximizing && score > best.Score) || (!isMaximizing && score < best.Score) {
			best = SearchResult{Column: col, Score: score}
		}
	}
	return best
}

func TestEmptyBoardPrefersCenter(t *testing.T) {
	res := Search(domain.NewBoard(), domain.SideB, 1)
	assert.Equal(t, 3, res.Column)
	assert.Equal(t, CenterColumnScore, res.Score)
}

func TestTakesImmediateWin(t *testing.T) {
	// B holds rows 5 cols 1-3, both ends are open; column 0 comes first.
	b := boardWith(map[domain.Cell]domain.Side{
		{Row: 5, Col: 1}: domain.SideB,
		{Row: 5, Col: 2}: domain.SideB,
		{Row: 5, Col: 3}: domain.SideB,
		{Row: 4, Col: 1}: domain.SideA,
		{Row: 4, Col: 2}: domain.SideA,
		{Row: 5, Col: 6}: domain.SideA,
	})
	for depth := 1; depth <= 4; depth++ {
		res := Search(b, domain.SideB, depth)
		assert.Equal(t, 0, res.Column, "depth %d", depth)
		assert.Equal(t, MinimaxWin, res.Score, "depth %d", depth)
	}
}

func TestTakesVerticalWin(t *testing.T) {
	b := boardWith(map[domain.Cell]domain.Side{
		{Row: 5, Col: 5}: domain.SideB,
		{Row: 4, Col: 5}: domain.SideB,
		{Row: 3, Col: 5}: domain.SideB,
		{Row: 5, Col: 0}: domain.SideA,
		{Row: 5, Col: 1}: domain.SideA,
		{Row: 5, Col: 6}: domain.SideA,
	})
	for depth := 1; depth <= 2; depth++ {
		res := Search(b, domain.SideB, depth)
		assert.Equal(t, 5, res.Column, "depth %d", depth)
		assert.Equal(t, MinimaxWin, res.Score, "depth %d", depth)
	}
}

func TestBlocksOpponentWin(t *testing.T) {
	b := boardWith(map[domain.Cell]domain.Side{
		{Row: 5, Col: 0}: domain.SideA,
		{Row: 5, Col: 1}: domain.SideA,
		{Row: 5, Col: 2}: domain.SideA,
		{Row: 4, Col: 0}: domain.SideB,
		{Row: 4, Col: 1}: domain.SideB,
	})
	for depth := 2; depth <= 3; depth++ {
		assert.Equal(t, 3, ChooseMove(b, domain.SideB, depth), "depth %d", depth)
	}
}

func TestDrawnBoardScoresZero(t *testing.T) {
	b := drawnBoard()
	for depth := 0; depth <= 3; depth++ {
		res := Minimax(b, depth, math.MinInt, math.MaxInt, true, domain.SideB)
		assert.Equal(t, MinimaxDraw, res.Score)
		assert.Equal(t, NoMove, res.Column)
	}
	assert.Equal(t, NoMove, ChooseMove(b, domain.SideB, InteractiveDepth))
}

func TestTerminalBeatsDepth(t *testing.T) {
	won := boardWith(map[domain.Cell]domain.Side{
		{Row: 5, Col: 0}: domain.SideA,
		{Row: 5, Col: 1}: domain.SideA,
		{Row: 5, Col: 2}: domain.SideA,
		{Row: 5, Col: 3}: domain.SideA,
	})
	res := Minimax(won, 0, math.MinInt, math.MaxInt, true, domain.SideB)
	assert.Equal(t, MinimaxLoss, res.Score)

	res = Minimax(won, 0, math.MinInt, math.MaxInt, true, domain.SideA)
	assert.Equal(t, MinimaxWin, res.Score)

	assert.Equal(t, NoMove, ChooseMove(won, domain.SideB, 3))
}

func TestDepthZeroUsesAIPerspective(t *testing.T) {
	b := boardWith(map[domain.Cell]domain.Side{
		{Row: 5, Col: 3}: domain.SideB,
	})
	maxRes := Minimax(b, 0, math.MinInt, math.MaxInt, true, domain.SideB)
	minRes := Minimax(b, 0, math.MinInt, math.MaxInt, false, domain.SideB)
	assert.Equal(t, CenterColumnScore, maxRes.Score)
	assert.Equal(t, maxRes.Score, minRes.Score)
}

func TestSearchLeavesCallerBoardUntouched(t *testing.T) {
	b := play(t, 3, 3, 2, 4)
	before := b
	Search(b, domain.SideA, 4)
	assert.Equal(t, before, b)
}

func TestNonPositiveDepthStillMoves(t *testing.T) {
	b := domain.NewBoard()
	assert.Equal(t, 3, ChooseMove(b, domain.SideB, 0))
	assert.Equal(t, 3, ChooseMove(b, domain.SideB, -2))
}

var positions = [][]int{
	{},
	{3},
	{3, 3, 2, 4},
	{0, 6, 1, 5, 3},
	{3, 2, 3, 2, 4, 4, 1},
	{6, 6, 6, 5, 0, 1, 2, 2, 3},
	{3, 3, 3, 3, 3, 3, 2, 4, 2},
}

func TestAlphaBetaMatchesPlainMinimax(t *testing.T) {
	for _, moves := range positions {
		b := play(t, moves...)
		side := domain.SideA
		if len(moves)%2 == 1 {
			side = domain.SideB
		}
		for depth := 1; depth <= 4; depth++ {
			want := plainMinimax(b, depth, true, side)
			got := Search(b, side, depth)
			assert.Equal(t, want, got, "moves %v depth %d", moves, depth)
		}
	}
}

func TestSearchParallelMatchesSearch(t *testing.T) {
	ctx := context.Background()
	for _, moves := range positions {
		b := play(t, moves...)
		for depth := 1; depth <= 4; depth++ {
			want := Search(b, domain.SideB, depth)
			got, err := SearchParallel(ctx, b, domain.SideB, depth)
			require.NoError(t, err)
			assert.Equal(t, want, got, "moves %v depth %d", moves, depth)
		}
	}
}

func TestParallelPlayerMatchesSerial(t *testing.T) {
	serial := MinimaxPlayer{Depth: 3}
	parallel := MinimaxPlayer{Depth: 3, Parallel: true}
	for _, moves := range positions {
		b := play(t, moves...)
		assert.Equal(t, serial.ChooseMove(b, domain.SideB), parallel.ChooseMove(b, domain.SideB), "moves %v", moves)
	}
}

func TestSearchParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := SearchParallel(ctx, domain.NewBoard(), domain.SideB, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchParallelFullBoard(t *testing.T) {
	res, err := SearchParallel(context.Background(), drawnBoard(), domain.SideB, 3)
	require.NoError(t, err)
	assert.Equal(t, NoMove, res.Column)
	assert.Equal(t, MinimaxDraw, res.Score)
}

func TestRandomMoveIsLegal(t *testing.T) {
	b := play(t, 0, 0, 0, 0, 0, 0)
	for i := 0; i < 50; i++ {
		col := RandomMove(b)
		assert.True(t, b.IsValidMove(col))
		assert.NotEqual(t, 0, col)
	}
	assert.Equal(t, NoMove, RandomMove(drawnBoard()))
}

func TestEasyMoveWinsThenBlocks(t *testing.T) {
	// A threatens column 3 on the bottom row, B threatens column 5 vertically.
	b := boardWith(map[domain.Cell]domain.Side{
		{Row: 5, Col: 0}: domain.SideA,
		{Row: 5, Col: 1}: domain.SideA,
		{Row: 5, Col: 2}: domain.SideA,
		{Row: 5, Col: 5}: domain.SideB,
		{Row: 4, Col: 5}: domain.SideB,
		{Row: 3, Col: 5}: domain.SideB,
	})
	for i := 0; i < 20; i++ {
		assert.Equal(t, 5, EasyMove(b, domain.SideB))
		assert.Equal(t, 3, EasyMove(b, domain.SideA))
	}

	// Without its own threat B must block at column 3.
	b = boardWith(map[domain.Cell]domain.Side{
		{Row: 5, Col: 0}: domain.SideA,
		{Row: 5, Col: 1}: domain.SideA,
		{Row: 5, Col: 2}: domain.SideA,
		{Row: 4, Col: 0}: domain.SideB,
		{Row: 4, Col: 1}: domain.SideB,
	})
	for i := 0; i < 20; i++ {
		assert.Equal(t, 3, EasyPlayer{}.ChooseMove(b, domain.SideB))
	}

	assert.Equal(t, NoMove, EasyMove(drawnBoard(), domain.SideB))
	empty := domain.NewBoard()
	assert.True(t, empty.IsValidMove(EasyMove(empty, domain.SideB)))
}

func TestPlayerForDifficulty(t *testing.T) {
	assert.Equal(t, EasyPlayer{}, PlayerForDifficulty("easy"))
	assert.Equal(t, MinimaxPlayer{Depth: 2}, PlayerForDifficulty("medium"))
	assert.Equal(t, MinimaxPlayer{Depth: InteractiveDepth}, PlayerForDifficulty("hard"))
	assert.Equal(t, MinimaxPlayer{Depth: 2}, PlayerForDifficulty("unknown"))

	assert.Equal(t, 3, CalculateBestMove(domain.NewBoard(), domain.SideB, "hard"))
}

func drawnBoard() domain.Board {
	rows := [domain.Rows]string{
		"AABBAAB",
		"BBAABBA",
		"AABBAAB",
		"BBAABBA",
		"AABBAAB",
		"BBAABBA",
	}
	var b domain.Board
	for r, line := range rows {
		for c, ch := range line {
			if ch == 'A' {
				b[r][c] = domain.SideA
			} else {
				b[r][c] = domain.SideB
			}
		}
	}
	return b
}
