package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Teacher struct {
	ID             int            `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName       string         `gorm:"type:varchar(255);not null" json:"full_name" valid:"required~Full name is required"`
	Specialization *string        `gorm:"type:varchar(255)" json:"specialization,omitempty"`
	ContactEmail   *string        `gorm:"type:varchar(255)" json:"contact_email,omitempty" valid:"email~Invalid email format,optional"`
	ContactPhone   *string        `gorm:"type:varchar(20)" json:"contact_phone,omitempty"`
	Preferences    datatypes.JSON `gorm:"type:jsonb" json:"preferences,omitempty"`
	InstitutionID  int            `gorm:"not null" json:"institution_id" valid:"required~Institution is required"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
