package domain

import "time"

// Group is a cohort of students, e.g. "11-A Physics and Mathematics".
type Group struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:varchar(150);not null" json:"name" valid:"required~Name is required"`
	Profile       *string   `gorm:"type:varchar(255)" json:"profile,omitempty"`
	StudentCount  *int      `json:"student_count,omitempty"`
	Year          *int      `json:"year,omitempty"`
	InstitutionID int       `gorm:"not null" json:"institution_id" valid:"required~Institution is required"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
