package userProfileController

import (
	"learnhub/middleware"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetProfile returns the authenticated user without the password hash
func (u *UserController) GetProfile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.NewAppError(utils.KindAuth, "Access denied", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, user.Profile())
}
