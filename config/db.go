package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

var sqlDB *sql.DB

func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB opens the bootstrap connection and runs the migrations once.
func BootDB() (*sql.DB, error) {
	url := GetDatabaseURL()
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if sqlDB == nil {
		sqlDB = db
	}

	if err := autoMigrate(sqlDB); err != nil {
		return sqlDB, err
	}

	return sqlDB, nil
}

// BootPgxPool opens the pool the core repositories run on.
func BootPgxPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

func autoMigrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS institutions (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		type VARCHAR(50) NOT NULL,
		address VARCHAR(255),
		contact_email VARCHAR(255),
		contact_phone VARCHAR(20),
		description TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS groups (
		id SERIAL PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		profile VARCHAR(255),
		student_count INTEGER,
		year INTEGER,
		institution_id INTEGER NOT NULL REFERENCES institutions(id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS teachers (
		id SERIAL PRIMARY KEY,
		full_name VARCHAR(255) NOT NULL,
		specialization VARCHAR(255),
		contact_email VARCHAR(255),
		contact_phone VARCHAR(20),
		preferences JSONB,
		institution_id INTEGER NOT NULL REFERENCES institutions(id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS classrooms (
		id SERIAL PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		type VARCHAR(30) NOT NULL,
		capacity INTEGER,
		equipment JSONB,
		building VARCHAR(100),
		floor INTEGER,
		institution_id INTEGER NOT NULL REFERENCES institutions(id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS subjects (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		type VARCHAR(30) NOT NULL,
		description VARCHAR(255),
		institution_id INTEGER NOT NULL REFERENCES institutions(id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS time_slots (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		period_number INTEGER NOT NULL,
		start_time TIME NOT NULL,
		end_time TIME NOT NULL,
		institution_id INTEGER NOT NULL REFERENCES institutions(id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		username VARCHAR(150) NOT NULL UNIQUE,
		hashed_password VARCHAR(255) NOT NULL,
		full_name VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		phone VARCHAR(20),
		institution_id INTEGER REFERENCES institutions(id),
		teacher_id INTEGER REFERENCES teachers(id),
		group_id INTEGER REFERENCES groups(id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS change_requests (
		id SERIAL PRIMARY KEY,
		change_type VARCHAR(30) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		reason TEXT NOT NULL,
		requested_date DATE NOT NULL,
		new_time_slot_id INTEGER REFERENCES time_slots(id),
		new_date DATE,
		new_classroom_id INTEGER REFERENCES classrooms(id),
		new_teacher_id INTEGER REFERENCES teachers(id),
		admin_comment TEXT,
		schedule_entry_id INTEGER NOT NULL,
		created_by INTEGER NOT NULL REFERENCES users(id),
		processed_by INTEGER REFERENCES users(id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		processed_at TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS schedule_entries (
		id SERIAL PRIMARY KEY,
		day_of_week VARCHAR(10) NOT NULL,
		specific_date DATE,
		status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
		notes TEXT,
		group_id INTEGER NOT NULL REFERENCES groups(id),
		subject_id INTEGER NOT NULL REFERENCES subjects(id),
		teacher_id INTEGER NOT NULL REFERENCES teachers(id),
		classroom_id INTEGER NOT NULL REFERENCES classrooms(id),
		time_slot_id INTEGER NOT NULL REFERENCES time_slots(id),
		substitute_teacher_id INTEGER REFERENCES teachers(id),
		original_classroom_id INTEGER REFERENCES classrooms(id),
		change_request_id INTEGER REFERENCES change_requests(id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_schedule_entries_slot
		ON schedule_entries (day_of_week, time_slot_id);

	CREATE TABLE IF NOT EXISTS notifications (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		type VARCHAR(30) NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		user_id INTEGER NOT NULL REFERENCES users(id),
		schedule_entry_id INTEGER REFERENCES schedule_entries(id),
		change_request_id INTEGER REFERENCES change_requests(id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		read_at TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_notifications_user
		ON notifications (user_id, is_read);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
