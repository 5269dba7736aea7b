package domain

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
)

type LoginRequest struct {
	Username string `json:"username" valid:"required~Username is required"`
	Password string `json:"password" valid:"required~Password is required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

// Claims is the JWT payload every role-gated route reads from locals.
// TeacherID and GroupID scope teachers and students to their own data.
type Claims struct {
	UserID    int    `json:"user_id"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	TeacherID *int   `json:"teacher_id,omitempty"`
	GroupID   *int   `json:"group_id,omitempty"`
	jwt.RegisteredClaims
}

type AuthRepo interface {
	Login(ctx context.Context, data *LoginRequest) (*LoginResponse, error)
}

type AuthUseCase interface {
	LoginUC(ctx context.Context, data *LoginRequest) (*LoginResponse, error)
}
