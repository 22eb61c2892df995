package models

import "time"

// Enrollment tracks a user's enrollment in a course with progress.
// Progress is stored as sent by the client and is not clamped to 0-100.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID  uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	Progress  int       `json:"progress" gorm:"default:0"`
	Course    *Course   `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCompleted reports whether the enrollment reached full progress.
func (e Enrollment) IsCompleted() bool {
	return e.Progress == 100
}
