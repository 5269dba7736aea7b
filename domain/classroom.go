package domain

import (
	"time"

	"gorm.io/datatypes"
)

type ClassroomType string

const (
	RoomLectureHall ClassroomType = "lecture_hall"
	RoomComputerLab ClassroomType = "computer_lab"
	RoomGym         ClassroomType = "gym"
	RoomRegular     ClassroomType = "regular"
	RoomLab         ClassroomType = "lab"
)

type Classroom struct {
	ID            int            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"type:varchar(150);not null" json:"name" valid:"required~Name is required"`
	Type          ClassroomType  `gorm:"type:varchar(30);not null" json:"type" valid:"required~Type is required,in(lecture_hall|computer_lab|gym|regular|lab)~Invalid classroom type"`
	Capacity      *int           `json:"capacity,omitempty"`
	Equipment     datatypes.JSON `gorm:"type:jsonb" json:"equipment,omitempty"`
	Building      *string        `gorm:"type:varchar(100)" json:"building,omitempty"`
	Floor         *int           `json:"floor,omitempty"`
	InstitutionID int            `gorm:"not null" json:"institution_id" valid:"required~Institution is required"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
