package usecase

import (
	"context"
	"time"
	"timetable/domain"
)

type authUC struct {
	authRepo domain.AuthRepo
	TimeOut  time.Duration
}

func NewAuthUseCase(repo domain.AuthRepo, timeOut time.Duration) domain.AuthUseCase {
	return &authUC{
		authRepo: repo,
		TimeOut:  timeOut,
	}
}

func (aUC *authUC) LoginUC(ctx context.Context, data *domain.LoginRequest) (*domain.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.authRepo.Login(ctx, data)
}
