package migration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"heroapi/internal/config"
)

// SeedHero is a catalogue entry inserted by Seed.
type SeedHero struct {
	Slug            string
	Name            string
	RealName        string
	Publisher       string
	FirstAppearance string
	Description     string
	PortraitPath    string
}

// DefaultHeroes is the sample catalogue used for local development.
var DefaultHeroes = []SeedHero{
	{
		Slug:            "batman",
		Name:            "Batman",
		RealName:        "Bruce Wayne",
		Publisher:       "DC Comics",
		FirstAppearance: "Detective Comics #27",
		Description:     "Vigilante of Gotham City.",
		PortraitPath:    "portraits/batman.png",
	},
	{
		Slug:            "superman",
		Name:            "Superman",
		RealName:        "Clark Kent",
		Publisher:       "DC Comics",
		FirstAppearance: "Action Comics #1",
		Description:     "Last son of Krypton.",
		PortraitPath:    "portraits/superman.png",
	},
	{
		Slug:            "wonder-woman",
		Name:            "Wonder Woman",
		RealName:        "Diana Prince",
		Publisher:       "DC Comics",
		FirstAppearance: "All Star Comics #8",
		Description:     "Amazon princess of Themyscira.",
	},
}

var seedQueries = map[string]string{
	config.DriverPostgres: `INSERT INTO superheroes (id, slug, name, real_name, publisher, first_appearance, description, portrait_path)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (slug) DO NOTHING`,
	config.DriverSQLite: `INSERT INTO superheroes (id, slug, name, real_name, publisher, first_appearance, description, portrait_path)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (slug) DO NOTHING`,
}

// Seed inserts heroes whose slug is not present yet. Existing rows are left untouched.
func Seed(ctx context.Context, db *sql.DB, driver string, heroes []SeedHero, log zerolog.Logger) error {
	q, ok := seedQueries[driver]
	if !ok {
		return fmt.Errorf("no seed query for driver %q", driver)
	}

	inserted := 0
	for _, h := range heroes {
		res, err := db.ExecContext(ctx, q,
			uuid.NewString(),
			h.Slug,
			h.Name,
			h.RealName,
			h.Publisher,
			h.FirstAppearance,
			h.Description,
			h.PortraitPath,
		)
		if err != nil {
			return fmt.Errorf("seed %s: %w", h.Slug, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	log.Info().
		Str("component", "database").
		Str("event", "db_seed").
		Int("inserted", inserted).
		Int("total", len(heroes)).
		Send()
	return nil
}
