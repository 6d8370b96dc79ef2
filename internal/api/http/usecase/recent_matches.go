package httpUsecase

import (
	"context"
	"net/http"

	"pong-service/domain"
)

type RecentMatchesUseCase interface {
	Execute(ctx context.Context, userID int64, limit int) (int, []domain.MatchRecord, error)
}

type recentMatchesUseCase struct {
	repository PostgresRepository
}

func NewRecentMatchesUseCase(repository PostgresRepository) RecentMatchesUseCase {
	return &recentMatchesUseCase{
		repository: repository,
	}
}

func (u *recentMatchesUseCase) Execute(ctx context.Context, userID int64, limit int) (int, []domain.MatchRecord, error) {
	records, err := u.repository.RecentMatches(ctx, userID, limit)
	if err != nil {
		return http.StatusInternalServerError, nil, err
	}
	return http.StatusOK, records, nil
}
