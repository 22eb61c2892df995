package userProfileRoutes

import (
	userProfileController "learnhub/controllers/userControllers"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(api fiber.Router, ctrl *userProfileController.UserController, auth fiber.Handler) {
	userGroup := api.Group("/users")

	userGroup.Get("/me", auth, ctrl.GetProfile)
	userGroup.Get("/stats", auth, ctrl.GetStats)
	userGroup.Get("/activity", auth, ctrl.GetActivity)
}
