package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	createGamesTable = `
		CREATE TABLE IF NOT EXISTS games (
			id BIGSERIAL PRIMARY KEY,
			winner_id BIGINT NOT NULL,
			winner_score INT NOT NULL,
			winner_side SMALLINT NOT NULL,
			loser_id BIGINT NOT NULL,
			loser_score INT NOT NULL,
			loser_side SMALLINT NOT NULL,
			game_type SMALLINT NOT NULL,
			game_mode SMALLINT NOT NULL,
			end_reason SMALLINT NOT NULL,
			start_time TIMESTAMP WITH TIME ZONE NOT NULL,
			end_time TIMESTAMP WITH TIME ZONE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`

	createIndexes = `
		CREATE INDEX IF NOT EXISTS idx_games_winner_id ON games(winner_id);
		CREATE INDEX IF NOT EXISTS idx_games_loser_id ON games(loser_id);
		CREATE INDEX IF NOT EXISTS idx_games_end_time ON games(end_time DESC);`
)

type Repository struct {
	db *sql.DB
}

func NewRepository(connString string) (*Repository, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := initDB(db); err != nil {
		return nil, err
	}

	zap.L().Info("Connected to PostgreSQL")
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func initDB(db *sql.DB) error {
	if _, err := db.Exec(createGamesTable); err != nil {
		return fmt.Errorf("failed to create 'games' table: %w", err)
	}
	if _, err := db.Exec(createIndexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
