package domain

import (
	"context"
	"time"
)

// User is an account with role-based access. Password always holds the
// bcrypt hash, never plaintext.
type User struct {
	ID            int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Email         string     `gorm:"type:varchar(255);not null;unique" json:"email" valid:"required~Email is required,email~Invalid email format"`
	Username      string     `gorm:"type:varchar(150);not null;unique" json:"username" valid:"required~Username is required"`
	Password      string     `gorm:"column:hashed_password;not null" json:"-"`
	FullName      string     `gorm:"type:varchar(255);not null" json:"full_name" valid:"required~Full name is required"`
	Role          Role       `gorm:"type:varchar(20);not null" json:"role" valid:"required~Role is required"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`
	Phone         *string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	InstitutionID *int       `json:"institution_id,omitempty"`
	TeacherID     *int       `json:"teacher_id,omitempty"`
	GroupID       *int       `json:"group_id,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) error
	GetAllUsers(ctx context.Context) (*[]User, error)
	GetUserByID(ctx context.Context, id int) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, id int) error
	// FindAdminTier returns all accounts that decide change requests.
	FindAdminTier(ctx context.Context) (*[]User, error)
	// FindStudentsByGroup returns the student accounts of one group.
	FindStudentsByGroup(ctx context.Context, groupID int) (*[]User, error)
}

type UserUseCase interface {
	CreateUserUC(ctx context.Context, user *User, plainPassword string) (*User, error)
	GetAllUsersUC(ctx context.Context) (*[]User, error)
	GetUserByIDUC(ctx context.Context, id int) (*User, error)
	UpdateUserUC(ctx context.Context, user *User) (*User, error)
	DeleteUserUC(ctx context.Context, id int) error
}
