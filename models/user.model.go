package models

import "time"

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Name      string    `json:"name" gorm:"default:''"`
	Role      string    `json:"role" gorm:"default:'student'"` // student, instructor
	CreatedAt time.Time `json:"created_at"`
}

// UserProfile is the public view of a User.
type UserProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) Profile() UserProfile {
	return UserProfile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
