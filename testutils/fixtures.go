package testutils

import (
	"fmt"
	"time"

	"learnhub/models"
	"learnhub/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestPassword is the plain password of users created by CreateTestUser
const TestPassword = "password123"

// CreateTestUser creates a test user with a unique email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *models.User {
	uniqueID := uuid.New().String()

	// minimum bcrypt cost keeps the suite fast
	passwordHash, _ := utils.HashPassword(TestPassword, 4)

	testUser := &models.User{
		Email:    fmt.Sprintf("test_%s@example.com", uniqueID),
		Name:     "Test User",
		Password: passwordHash,
		Role:     models.RoleStudent,
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*models.User)

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *models.User) {
		u.Email = email
	}
}

// WithName sets the name
func WithName(name string) UserOption {
	return func(u *models.User) {
		u.Name = name
	}
}

// WithRole sets the role
func WithRole(role string) UserOption {
	return func(u *models.User) {
		u.Role = role
	}
}

// CreateTestCourse creates a course owned by instructorID
func CreateTestCourse(db *gorm.DB, instructorID uint, title string) *models.Course {
	course := &models.Course{
		Title:        title,
		Description:  title + " description",
		Category:     "programming",
		Level:        "beginner",
		InstructorID: instructorID,
	}
	if err := db.Create(course).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test course: %v", err))
	}
	return course
}

// CreateTestEnrollment creates an enrollment with the given progress and creation time
func CreateTestEnrollment(db *gorm.DB, userID, courseID uint, progress int, createdAt time.Time) *models.Enrollment {
	enrollment := &models.Enrollment{
		UserID:    userID,
		CourseID:  courseID,
		Progress:  progress,
		CreatedAt: createdAt,
	}
	if err := db.Create(enrollment).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test enrollment: %v", err))
	}
	return enrollment
}

// CreateTestCertificate issues a certificate at issuedAt
func CreateTestCertificate(db *gorm.DB, userID, courseID uint, issuedAt time.Time) *models.Certificate {
	cert := &models.Certificate{UserID: userID, CourseID: courseID, IssuedAt: issuedAt}
	if err := db.Create(cert).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test certificate: %v", err))
	}
	return cert
}

// CreateTestDiscussion creates a discussion post by userID
func CreateTestDiscussion(db *gorm.DB, userID, courseID uint) *models.Discussion {
	d := &models.Discussion{UserID: userID, CourseID: courseID, Content: "question"}
	if err := db.Create(d).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test discussion: %v", err))
	}
	return d
}
