package controllers

import (
	"errors"

	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollInCourse relies on the (user_id, course_id) unique index instead of a
// prior existence check, so concurrent requests cannot both enroll.
func (cc *CourseController) EnrollInCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.NewAppError(utils.KindAuth, "Access denied", nil)
	}

	courseID := c.Locals("courseID").(int)

	enrollment := models.Enrollment{
		UserID:   user.ID,
		CourseID: uint(courseID),
		Progress: 0,
	}

	if err := cc.DB.WithContext(c.UserContext()).Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.NewAppError(utils.KindConflict, "Already enrolled", err)
		}
		return utils.WriteError(err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, enrollment)
}

// GetEnrollments lists the caller's enrollments with each course joined in full
func (cc *CourseController) GetEnrollments(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.NewAppError(utils.KindAuth, "Access denied", nil)
	}

	enrollments := []models.Enrollment{}
	if err := cc.DB.WithContext(c.UserContext()).
		Where("user_id = ?", user.ID).
		Preload("Course").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return utils.ReadError(err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, enrollments)
}

// UpdateProgress updates an enrollment owned by the caller. Enrollments that do
// not exist and enrollments of other users both answer 404.
func (cc *CourseController) UpdateProgress(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.NewAppError(utils.KindAuth, "Access denied", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)
	reqData, ok := c.Locals("validatedProgress").(*courseValidator.UpdateProgressRequest)
	if !ok {
		return utils.NewAppError(utils.KindValidation, "Invalid request data", nil)
	}

	db := cc.DB.WithContext(c.UserContext())

	result := db.Model(&models.Enrollment{}).
		Where("id = ? AND user_id = ?", enrollmentID, user.ID).
		Update("progress", *reqData.Progress)
	if result.Error != nil {
		return utils.WriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NewAppError(utils.KindNotFound, "Enrollment not found", nil)
	}

	var enrollment models.Enrollment
	if err := db.Where("id = ? AND user_id = ?", enrollmentID, user.ID).First(&enrollment).Error; err != nil {
		return utils.WriteError(err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, enrollment)
}
