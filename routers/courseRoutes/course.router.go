package courseRoutes

import (
	controllers "wealthgenius/controllers/course"
	"wealthgenius/middleware"
	validators "wealthgenius/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up public catalog routes and the instructor
// management surface
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Public catalog
	courseGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)

	// Instructor/admin management
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireStaff, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireStaff, validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireStaff, validators.CourseID(), controllers.DeleteCourse)
	courseGroup.Post("/:id/feature", middleware.JWTMiddleware, middleware.RequireStaff, validators.CourseID(), validators.AddFeature(), controllers.AddCourseFeature)
	courseGroup.Post("/:id/lesson", middleware.JWTMiddleware, middleware.RequireStaff, validators.CourseID(), validators.AddLesson(), controllers.AddLesson)
}
