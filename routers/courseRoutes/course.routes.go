package courseRoutes

import (
	controllers "learnhub/controllers/course"
	"learnhub/middleware"
	"learnhub/models"
	validators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course, enrollment and certificate routes
func SetupCourseRoutes(api fiber.Router, ctrl *controllers.CourseController, auth fiber.Handler) {
	courseGroup := api.Group("/courses")

	// Public catalog
	courseGroup.Get("/", ctrl.GetAllCourses)
	courseGroup.Get("/:id", validators.GetCourseDetail(), ctrl.GetCourseDetails)

	// Instructors only
	courseGroup.Post("/", auth, middleware.RequireRole(models.RoleInstructor), validators.CreateCourse(), ctrl.CreateCourse)

	// Enrollment
	courseGroup.Post("/:id/enroll", auth, validators.EnrollCourse(), ctrl.EnrollInCourse)

	// Progress tracking
	api.Put("/enrollments/:id/progress", auth, validators.UpdateProgress(), ctrl.UpdateProgress)

	// User enrollments and certificates
	userEnrollGroup := api.Group("/users")
	userEnrollGroup.Get("/enrollments", auth, ctrl.GetEnrollments)
	userEnrollGroup.Get("/certificates", auth, ctrl.GetUserCertificates)
}
