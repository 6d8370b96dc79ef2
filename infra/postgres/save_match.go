package postgres

import (
	"context"
	"fmt"

	"pong-service/domain"
)

func (r *Repository) SaveMatch(ctx context.Context, rec *domain.MatchRecord) error {
	query := `
		INSERT INTO games (
			winner_id, winner_score, winner_side,
			loser_id, loser_score, loser_side,
			game_type, game_mode, end_reason,
			start_time, end_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.WinnerID, rec.WinnerScore, rec.WinnerSide,
		rec.LoserID, rec.LoserScore, rec.LoserSide,
		rec.GameType, rec.GameMode, rec.EndReason,
		rec.StartTime, rec.EndTime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert match record: %w", err)
	}
	return nil
}
