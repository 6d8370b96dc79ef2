package postgres

import (
	"context"
	"fmt"

	"pong-service/domain"
)

// RecentMatches returns the newest finished matches, optionally filtered to
// one player's games.
func (r *Repository) RecentMatches(ctx context.Context, userID int64, limit int) ([]domain.MatchRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := `
		SELECT winner_id, winner_score, winner_side,
		       loser_id, loser_score, loser_side,
		       game_type, game_mode, end_reason,
		       start_time, end_time
		FROM games
	`
	args := []any{}
	if userID != 0 {
		query += ` WHERE winner_id = $1 OR loser_id = $1`
		args = append(args, userID)
	}
	query += fmt.Sprintf(` ORDER BY end_time DESC LIMIT %d`, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent matches: %w", err)
	}
	defer rows.Close()

	var records []domain.MatchRecord
	for rows.Next() {
		var rec domain.MatchRecord
		if err := rows.Scan(
			&rec.WinnerID, &rec.WinnerScore, &rec.WinnerSide,
			&rec.LoserID, &rec.LoserScore, &rec.LoserSide,
			&rec.GameType, &rec.GameMode, &rec.EndReason,
			&rec.StartTime, &rec.EndTime,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
