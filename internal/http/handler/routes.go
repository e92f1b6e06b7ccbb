package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"heroapi/internal/service"
)

// Options tunes route behavior.
type Options struct {
	// StrictSlugs validates slug path parameters before any lookup.
	StrictSlugs bool
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, heroSvc service.SuperheroService, opts Options) {
	var sv *SlugValidator
	if opts.StrictSlugs {
		sv = NewSlugValidator()
	}

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	heroes := app.Group("/superheroes")
	heroes.Get("/", ListSuperheroes(heroSvc))
	// The slug is optional in the pattern so an empty slug still reaches the lookup.
	heroes.Get("/slug/:slug?", GetSuperheroBySlug(heroSvc, sv))
	heroes.Get("/slug/:slug/portrait", GetSuperheroPortrait(heroSvc, sv))
}
