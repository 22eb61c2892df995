package userProfileController

import (
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const activityLimit = 5

type UserStats struct {
	ActiveCourses   int64 `json:"activeCourses"`
	AverageProgress int   `json:"averageProgress"`
	Certificates    int64 `json:"certificates"`
	Discussions     int64 `json:"discussions"`
}

// GetStats computes the dashboard counters; the first failing query aborts the response
func (u *UserController) GetStats(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.NewAppError(utils.KindAuth, "Access denied", nil)
	}

	db := u.DB.WithContext(c.UserContext())
	var stats UserStats

	if err := db.Model(&models.Enrollment{}).
		Where("user_id = ? AND progress < ?", user.ID, 100).
		Count(&stats.ActiveCourses).Error; err != nil {
		return utils.ReadError(err)
	}

	var progress []int
	if err := db.Model(&models.Enrollment{}).
		Where("user_id = ?", user.ID).
		Pluck("progress", &progress).Error; err != nil {
		return utils.ReadError(err)
	}
	stats.AverageProgress = AverageProgress(progress)

	if err := db.Model(&models.Certificate{}).
		Where("user_id = ?", user.ID).
		Count(&stats.Certificates).Error; err != nil {
		return utils.ReadError(err)
	}

	if err := db.Model(&models.Discussion{}).
		Where("user_id = ?", user.ID).
		Count(&stats.Discussions).Error; err != nil {
		return utils.ReadError(err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, stats)
}

// GetActivity returns the caller's most recent enrollments and certificates as one feed
func (u *UserController) GetActivity(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.NewAppError(utils.KindAuth, "Access denied", nil)
	}

	db := u.DB.WithContext(c.UserContext())
	selectTitle := func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "title")
	}

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", user.ID).
		Preload("Course", selectTitle).
		Order("created_at desc").
		Limit(activityLimit).
		Find(&enrollments).Error; err != nil {
		return utils.ReadError(err)
	}

	var certificates []models.Certificate
	if err := db.Where("user_id = ?", user.ID).
		Preload("Course", selectTitle).
		Order("issued_at desc").
		Limit(activityLimit).
		Find(&certificates).Error; err != nil {
		return utils.ReadError(err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, BuildActivityFeed(enrollments, certificates, activityLimit))
}
