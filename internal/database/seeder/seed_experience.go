package seeder

import (
	"context"
	"fmt"

	"portfolio-api/internal/database"
)

type ExperienceSeeder struct{}

func (ExperienceSeeder) Name() string { return "experience" }

func (ExperienceSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "experience", "id", "company", "role", "period"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "experience_points", "experience_id", "position", "point"); err != nil {
		return err
	}

	empty, err := tableEmpty(ctx, db, "experience")
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Company string
		Role    string
		Period  string
		Points  []string
	}{
		{
			Company: "Acme Corp",
			Role:    "Backend Engineering Intern",
			Period:  "May 2024 - Aug 2024",
			Points: []string{
				"Built REST endpoints for the customer dashboard.",
				"Wrote integration tests covering the billing flow.",
			},
		},
		{
			Company: "Freelance",
			Role:    "Full-Stack Developer",
			Period:  "2023 - Present",
			Points: []string{
				"Delivered small-business websites end to end.",
			},
		},
	}

	for _, it := range items {
		var id int64
		row := tx.QueryRow(
			ctx,
			`INSERT INTO experience (company, role, period) VALUES ($1, $2, $3) RETURNING id`,
			it.Company,
			it.Role,
			it.Period,
		)
		if err := row.Scan(&id); err != nil {
			return err
		}

		for i, p := range it.Points {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO experience_points (experience_id, position, point) VALUES ($1, $2, $3)`,
				id,
				i,
				p,
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
