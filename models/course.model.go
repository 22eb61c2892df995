package models

import "time"

// Course represents a learning course owned by an instructor
type Course struct {
	ID           uint              `json:"id" gorm:"primaryKey"`
	Title        string            `json:"title" gorm:"not null"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	Level        string            `json:"level"`
	InstructorID uint              `json:"instructor_id" gorm:"index;not null"`
	Instructor   *CourseInstructor `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`
	CreatedAt    time.Time         `json:"created_at"`
}

// CourseInstructor is the slice of the users table joined into course listings.
type CourseInstructor struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (CourseInstructor) TableName() string {
	return "users"
}
