// Package seeder loads starter portfolio content into empty tables. Each
// seeder is idempotent: it checks its table is empty before writing, so
// repeated startups with seeding enabled never duplicate rows.
package seeder

import (
	"context"

	"portfolio-api/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Defaults returns the runner covering every seeded resource.
func Defaults() Runner {
	return Runner{Seeders: []Seeder{
		SkillsSeeder{},
		ProjectsSeeder{},
		ExperienceSeeder{},
	}}
}
