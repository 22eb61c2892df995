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

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// GetAllCourses lists every course with its instructor's name
func (cc *CourseController) GetAllCourses(c *fiber.Ctx) error {
	courses := []models.Course{}
	if err := cc.DB.WithContext(c.UserContext()).
		Preload("Instructor").
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return utils.ReadError(err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, courses)
}

func (cc *CourseController) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := cc.DB.WithContext(c.UserContext()).Preload("Instructor").First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewAppError(utils.KindNotFound, "Course not found", err)
		}
		return utils.ReadError(err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, course)
}

// CreateCourse creates a course owned by the authenticated instructor
func (cc *CourseController) CreateCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.NewAppError(utils.KindAuth, "Access denied", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return utils.NewAppError(utils.KindValidation, "Invalid request data", nil)
	}

	course := models.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Level:        reqData.Level,
		InstructorID: user.ID,
	}

	if err := cc.DB.WithContext(c.UserContext()).Create(&course).Error; err != nil {
		return utils.WriteError(err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, course)
}
