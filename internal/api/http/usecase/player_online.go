package httpUsecase

import (
	"context"
	"net/http"
)

type PlayerOnlineUseCase interface {
	Execute(ctx context.Context, userID int64) (int, bool, error)
}

type playerOnlineUseCase struct {
	presence PresenceManager
}

func NewPlayerOnlineUseCase(presence PresenceManager) PlayerOnlineUseCase {
	return &playerOnlineUseCase{
		presence: presence,
	}
}

func (u *playerOnlineUseCase) Execute(ctx context.Context, userID int64) (int, bool, error) {
	online, err := u.presence.IsOnline(ctx, userID)
	if err != nil {
		return http.StatusInternalServerError, false, err
	}
	return http.StatusOK, online, nil
}
