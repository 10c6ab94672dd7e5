package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/selfplay"
)

type SelfPlayRepo struct {
	DB *sql.DB
}

func NewSelfPlayRepo(db *sql.DB) *SelfPlayRepo {
	return &SelfPlayRepo{DB: db}
}

// RecordGame stores a game and its moves in one transaction.
func (r *SelfPlayRepo) RecordGame(ctx context.Context, rec selfplay.GameRecord) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	gameQuery := `
	INSERT INTO selfplay_game (run_id, game_number, winner, total_moves)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (run_id, game_number) DO UPDATE SET
		winner = EXCLUDED.winner,
		total_moves = EXCLUDED.total_moves;
	`
	if _, err := tx.ExecContext(ctx, gameQuery, rec.RunID, rec.GameNumber, rec.Winner.Sign(), len(rec.Moves)); err != nil {
		return fmt.Errorf("failed to upsert game record: %w", err)
	}

	moveQuery := `
	INSERT INTO selfplay_move (run_id, game_number, move_number, player, move_column, board_state)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (run_id, game_number, move_number) DO NOTHING;
	`
	stmt, err := tx.PrepareContext(ctx, moveQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare move insert: %w", err)
	}
	defer stmt.Close()

	for i, mv := range rec.Moves {
		boardJSON, err := marshalBoard(mv.Before)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, rec.RunID, rec.GameNumber, i+1, mv.Side.Sign(), mv.Column, boardJSON); err != nil {
			return fmt.Errorf("failed to insert move %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// RunOutcomes counts wins per side and draws for a run.
func (r *SelfPlayRepo) RunOutcomes(ctx context.Context, runID string) (selfplay.Summary, error) {
	query := `
	SELECT winner, COUNT(*)
	FROM selfplay_game
	WHERE run_id = $1
	GROUP BY winner;
	`
	rows, err := r.DB.QueryContext(ctx, query, runID)
	if err != nil {
		return selfplay.Summary{}, fmt.Errorf("failed to query run outcomes: %w", err)
	}
	defer rows.Close()

	summary := selfplay.Summary{RunID: runID}
	for rows.Next() {
		var winner, count int
		if err := rows.Scan(&winner, &count); err != nil {
			return selfplay.Summary{}, fmt.Errorf("failed to scan run outcome: %w", err)
		}
		summary.Games += count
		switch winner {
		case domain.SideA.Sign():
			summary.WinsA = count
		case domain.SideB.Sign():
			summary.WinsB = count
		default:
			summary.Draws = count
		}
	}
	return summary, rows.Err()
}

func marshalBoard(b domain.Board) ([]byte, error) {
	data, err := json.Marshal(b.Signs())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal board state: %w", err)
	}
	return data, nil
}
