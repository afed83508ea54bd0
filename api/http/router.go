package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mjsmylie/NextObjective/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. Every route lives
// under the /api prefix the frontend expects.
func Register(
	app *fiber.App,
	health *handlers.HealthHandler,
	users *handlers.UsersHandler,
	resume *handlers.ResumeHandler,
	careers *handlers.CareerHandler,
	progress *handlers.ProgressHandler,
	surveys *handlers.SurveyHandler,
	jobs *handlers.JobsHandler,
) {
	api := app.Group("/api")

	api.Get("/", health.Root)
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	api.Post("/users", users.Create)
	api.Get("/users/:user_id", users.Get)
	api.Post("/upload-resume", resume.Upload)

	api.Get("/career-paths", careers.Paths)
	api.Post("/select-career-path", careers.SelectPath)
	api.Post("/calculate-career-score", careers.CalculateScore)
	api.Post("/enhanced-career-suggestions", careers.EnhancedSuggestions)

	api.Post("/progress-log", progress.AddLog)
	api.Get("/user-progress/:user_id", progress.UserProgress)

	api.Get("/mock-jobs/:career_path", jobs.MockJobs)

	api.Get("/survey-questions", surveys.Questions)
	api.Post("/submit-survey", surveys.Submit)
}
