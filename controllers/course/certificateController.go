package controllers

import (
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
)

// GetUserCertificates gets all certificates for the current user, newest first
func (cc *CourseController) GetUserCertificates(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.NewAppError(utils.KindAuth, "Access denied", nil)
	}

	certificates := []models.Certificate{}
	if err := cc.DB.WithContext(c.UserContext()).
		Where("user_id = ?", user.ID).
		Preload("Course").
		Order("issued_at desc").
		Find(&certificates).Error; err != nil {
		return utils.ReadError(err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, certificates)
}
