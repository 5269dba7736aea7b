package usecase

import (
	"context"
	"time"
	"timetable/domain"

	"golang.org/x/crypto/bcrypt"
)

type userUC struct {
	userRepo domain.UserRepo
	TimeOut  time.Duration
}

func NewUserUseCase(repo domain.UserRepo, timeOut time.Duration) domain.UserUseCase {
	return &userUC{
		userRepo: repo,
		TimeOut:  timeOut,
	}
}

func (uUC *userUC) CreateUserUC(ctx context.Context, user *domain.User, plainPassword string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	if !user.Role.Valid() {
		return nil, &domain.ValidationError{Field: "role", Reason: "unknown role"}
	}
	if plainPassword == "" {
		return nil, &domain.ValidationError{Field: "password", Reason: "password is required"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)
	user.IsActive = true

	if err := uUC.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uUC *userUC) GetAllUsersUC(ctx context.Context) (*[]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	return uUC.userRepo.GetAllUsers(ctx)
}

func (uUC *userUC) GetUserByIDUC(ctx context.Context, id int) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	return uUC.userRepo.GetUserByID(ctx, id)
}

func (uUC *userUC) UpdateUserUC(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	if !user.Role.Valid() {
		return nil, &domain.ValidationError{Field: "role", Reason: "unknown role"}
	}

	if err := uUC.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uUC *userUC) DeleteUserUC(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	return uUC.userRepo.DeleteUser(ctx, id)
}
