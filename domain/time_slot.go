package domain

import "time"

// TimeSlot is one period of the institution's daily grid, e.g.
// "1st Period" 08:30-09:15. Times are stored as HH:MM:SS strings.
type TimeSlot struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name" valid:"required~Name is required"`
	PeriodNumber  int       `gorm:"not null" json:"period_number" valid:"required~Period number is required"`
	StartTime     string    `gorm:"type:time;not null" json:"start_time" valid:"required~Start time is required"`
	EndTime       string    `gorm:"type:time;not null" json:"end_time" valid:"required~End time is required"`
	InstitutionID int       `gorm:"not null" json:"institution_id" valid:"required~Institution is required"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
