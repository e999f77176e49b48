package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobdesk/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	companies *handlers.CompanyHandler,
	candidates *handlers.CandidateHandler,
	jobs *handlers.JobHandler,
	applications *handlers.ApplicationHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register/company", auth.RegisterCompany)
	a.Post("/register/candidate", auth.RegisterCandidate)
	a.Post("/login", auth.Login)

	// Public job board surface: search and listings carry no ownership check.
	jg := v1.Group("/jobs")
	jg.Get("/", jobs.Search)
	jg.Get("/:id", jobs.GetByID)
	jg.Post("/", authMW, jobs.Create)
	jg.Put("/:id", authMW, jobs.Update)
	jg.Delete("/:id", authMW, jobs.Delete)
	jg.Get("/:id/applications", authMW, jobs.ListApplications)

	cg := v1.Group("/companies")
	cg.Get("/", companies.List)
	cg.Get("/:id", companies.GetByID)
	cg.Get("/:id/jobs", companies.ListJobs)
	cg.Put("/:id", authMW, companies.Update)
	cg.Delete("/:id", authMW, companies.Delete)

	cn := v1.Group("/candidates", authMW)
	cn.Get("/:id", candidates.GetByID)
	cn.Put("/:id", candidates.Update)
	cn.Delete("/:id", candidates.Delete)
	cn.Get("/:id/applications", candidates.ListApplications)

	ag := v1.Group("/applications", authMW)
	ag.Post("/", applications.Submit)
	ag.Get("/:id", applications.GetByID)
	ag.Put("/:id/status", applications.UpdateStatus)
	ag.Delete("/:id", applications.Withdraw)
}
