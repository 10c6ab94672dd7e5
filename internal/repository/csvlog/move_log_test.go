package csvlog

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/selfplay"
)

func sampleRecord() selfplay.GameRecord {
	g := domain.NewGame()
	for _, col := range []int{0, 6, 0, 6, 0, 6, 0} {
		if _, err := g.MakeMove(col); err != nil {
			panic(err)
		}
	}
	return selfplay.GameRecord{GameNumber: 7, Winner: g.Winner, Moves: g.History}
}

func TestMoveLogRows(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf)
	require.NoError(t, err)
	require.NoError(t, l.RecordGame(context.Background(), sampleRecord()))
	require.NoError(t, l.Close())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 8)
	assert.Equal(t, header, rows[0])

	assert.Equal(t, []string{"7", "1", "1", "1", "0"}, rows[1][:5])
	assert.Equal(t, []string{"7", "1", "2", "-1", "6"}, rows[2][:5])

	empty := "[" + strings.Repeat("0, ", domain.Rows*domain.Columns-1) + "0]"
	assert.Equal(t, empty, rows[1][5])

	// before move 2 only A's disk at the bottom of column 0 is on the board
	signs := strings.Split(strings.Trim(rows[2][5], "[]"), ", ")
	require.Len(t, signs, domain.Rows*domain.Columns)
	assert.Equal(t, "1", signs[(domain.Rows-1)*domain.Columns])
}

func TestFormatWinner(t *testing.T) {
	assert.Equal(t, "draw", formatWinner(domain.Empty))
	assert.Equal(t, "1", formatWinner(domain.SideA))
	assert.Equal(t, "-1", formatWinner(domain.SideB))
}

func TestCreateWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.csv")
	l, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, l.RecordGame(context.Background(), sampleRecord()))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Game,Winner,Move_Num,Player,Move,Board_State\n"))
	assert.Equal(t, 8, strings.Count(string(data), "\n"))
}
