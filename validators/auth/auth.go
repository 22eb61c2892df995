package authValidator

import (
	"strings"

	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
)

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=student instructor"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.NewAppError(utils.KindValidation, "Invalid request body", err)
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		reqData.Name = strings.TrimSpace(reqData.Name)

		if errors := utils.ValidateStruct(reqData); errors != nil {
			return utils.ValidationError(errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.NewAppError(utils.KindValidation, "Invalid request body", err)
		}

		reqData.Email = strings.TrimSpace(reqData.Email)

		if errors := utils.ValidateStruct(reqData); errors != nil {
			return utils.ValidationError(errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
