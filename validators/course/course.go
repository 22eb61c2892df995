package courseValidator

import (
	"strconv"
	"strings"

	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Level       string `json:"level" validate:"required"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return utils.NewAppError(utils.KindValidation, "Invalid request body", err)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if errors := utils.ValidateStruct(reqData); errors != nil {
			return utils.ValidationError(errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// GetCourseDetail validates the :id path parameter
func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := positiveIntParam(c, "id")
		if err != nil {
			return utils.NewAppError(utils.KindValidation, "Invalid Course ID", err)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func positiveIntParam(c *fiber.Ctx, name string) (int, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
