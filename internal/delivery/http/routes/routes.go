package routes

import (
	"resume-matcher/internal/delivery/http/handler"
	"resume-matcher/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health  *handler.HealthHandler
	jobs    *handler.JobsHandler
	resumes *handler.ResumeHandler
	matches *handler.MatchHandler
	wsh     *ws.Handler
}

func NewRegistry(
	health *handler.HealthHandler,
	jobs *handler.JobsHandler,
	resumes *handler.ResumeHandler,
	matches *handler.MatchHandler,
	wsh *ws.Handler,
) *Registry {
	return &Registry{health: health, jobs: jobs, resumes: resumes, matches: matches, wsh: wsh}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	r.jobs.RegisterRoutes(v1.Group("/jobs"))
	r.resumes.RegisterRoutes(v1.Group("/resumes"))
	r.matches.RegisterRoutes(v1)

	if r.wsh != nil {
		app.Get("/ws", r.wsh.HandleMatchesWS)
	}
}
