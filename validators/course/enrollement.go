package courseValidator

import (
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
)

type UpdateProgressRequest struct {
	// no range check: any integer is stored as sent
	Progress *int `json:"progress" validate:"required"`
}

func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := positiveIntParam(c, "id")
		if err != nil {
			return utils.NewAppError(utils.KindValidation, "Invalid Course ID", err)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, err := positiveIntParam(c, "id")
		if err != nil {
			return utils.NewAppError(utils.KindValidation, "Invalid Enrollment ID", err)
		}

		reqData := new(UpdateProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.NewAppError(utils.KindValidation, "Invalid request body", err)
		}

		if errors := utils.ValidateStruct(reqData); errors != nil {
			return utils.ValidationError(errors)
		}

		c.Locals("enrollmentID", enrollmentID)
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
