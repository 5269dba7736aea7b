package domain

import "time"

type SubjectType string

const (
	SubjectLecture  SubjectType = "lecture"
	SubjectPractice SubjectType = "practice"
	SubjectLab      SubjectType = "lab"
	SubjectSeminar  SubjectType = "seminar"
)

type Subject struct {
	ID            int         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string      `gorm:"type:varchar(255);not null" json:"name" valid:"required~Name is required"`
	Type          SubjectType `gorm:"type:varchar(30);not null" json:"type" valid:"required~Type is required"`
	Description   *string     `gorm:"type:varchar(255)" json:"description,omitempty"`
	InstitutionID int         `gorm:"not null" json:"institution_id" valid:"required~Institution is required"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}
