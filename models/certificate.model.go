package models

import "time"

// Certificate represents an issued certificate for course completion
type Certificate struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	UserID   uint      `json:"user_id" gorm:"index;not null"`
	CourseID uint      `json:"course_id" gorm:"index;not null"`
	Course   *Course   `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	IssuedAt time.Time `json:"issued_at"`
}
