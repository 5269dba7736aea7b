package domain

import "time"

type Institution struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name" valid:"required~Name is required"`
	Type         string    `gorm:"type:varchar(50);not null" json:"type" valid:"required~Type is required,in(school|university|course)~Invalid institution type"`
	Address      *string   `gorm:"type:varchar(255)" json:"address,omitempty"`
	ContactEmail *string   `gorm:"type:varchar(255)" json:"contact_email,omitempty" valid:"email~Invalid email format,optional"`
	ContactPhone *string   `gorm:"type:varchar(20)" json:"contact_phone,omitempty"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
