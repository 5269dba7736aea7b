package repository

import (
	"context"
	"errors"
	"fmt"
	"timetable/domain"
	"timetable/middleware"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepo {
	return &authRepository{
		db: db,
	}
}

func (ar *authRepository) Login(ctx context.Context, data *domain.LoginRequest) (*domain.LoginResponse, error) {
	var user domain.User

	err := ar.db.WithContext(ctx).Where("username = ?", data.Username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.AuthorizationError{Reason: "invalid username or password"}
		}
		return nil, fmt.Errorf("could not look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password)); err != nil {
		return nil, &domain.AuthorizationError{Reason: "invalid username or password"}
	}

	if !user.IsActive {
		return nil, &domain.AuthorizationError{Reason: "account is deactivated"}
	}

	token, err := middleware.GenerateJWT(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}
