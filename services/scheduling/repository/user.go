package repository

import (
	"context"
	"errors"
	"fmt"
	"time"
	"timetable/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(database *pgxpool.Pool) domain.UserRepo {
	return &userRepository{
		db: database,
	}
}

const userColumns = `
	id, email, username, hashed_password, full_name, role, is_active,
	phone, institution_id, teacher_id, group_id, created_at, updated_at
`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.Password, &u.FullName,
		&u.Role, &u.IsActive, &u.Phone, &u.InstitutionID, &u.TeacherID,
		&u.GroupID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (ur *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	insertQuery := `
		INSERT INTO users
			(email, username, hashed_password, full_name, role, is_active,
			phone, institution_id, teacher_id, group_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id;
	`

	now := time.Now()

	var id int
	err := ur.db.QueryRow(ctx, insertQuery,
		user.Email, user.Username, user.Password, user.FullName, user.Role,
		user.IsActive, user.Phone, user.InstitutionID, user.TeacherID,
		user.GroupID, now,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return &domain.ValidationError{Field: "username", Reason: "email or username already taken"}
		}
		return fmt.Errorf("could not insert user: %w", err)
	}

	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now

	return nil
}

func (ur *userRepository) GetAllUsers(ctx context.Context) (*[]domain.User, error) {
	rows, err := ur.db.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY id;")
	if err != nil {
		return nil, fmt.Errorf("could not get users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (ur *userRepository) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	u, err := scanUser(ur.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1;", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "user", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	return u, nil
}

func (ur *userRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET email = $1, username = $2, full_name = $3, role = $4,
			is_active = $5, phone = $6, institution_id = $7, teacher_id = $8,
			group_id = $9, updated_at = $10
		WHERE id = $11;
	`

	now := time.Now()
	tag, err := ur.db.Exec(ctx, query,
		user.Email, user.Username, user.FullName, user.Role, user.IsActive,
		user.Phone, user.InstitutionID, user.TeacherID, user.GroupID, now, user.ID)
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "user", ID: user.ID}
	}

	user.UpdatedAt = now
	return nil
}

func (ur *userRepository) DeleteUser(ctx context.Context, id int) error {
	tag, err := ur.db.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "user", ID: id}
	}
	return nil
}

func (ur *userRepository) FindAdminTier(ctx context.Context) (*[]domain.User, error) {
	rows, err := ur.db.Query(ctx,
		"SELECT "+userColumns+" FROM users WHERE role = ANY($1);",
		[]string{string(domain.RoleSuperAdmin), string(domain.RoleAdmin)})
	if err != nil {
		return nil, fmt.Errorf("could not get admin users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (ur *userRepository) FindStudentsByGroup(ctx context.Context, groupID int) (*[]domain.User, error) {
	rows, err := ur.db.Query(ctx,
		"SELECT "+userColumns+" FROM users WHERE role = $1 AND group_id = $2;",
		domain.RoleStudent, groupID)
	if err != nil {
		return nil, fmt.Errorf("could not get group students: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) (*[]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan user: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return &users, nil
}
