package seeder

import (
	"context"
	"fmt"

	"portfolio-api/internal/database"
)

type ProjectsSeeder struct{}

func (ProjectsSeeder) Name() string { return "projects" }

func (ProjectsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "projects", "id", "name", "url", "description", "skills"); err != nil {
		return err
	}

	empty, err := tableEmpty(ctx, db, "projects")
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
		Name        string
		URL         string
		Description string
		Skills      string
	}{
		{
			Name:        "Portfolio Website",
			URL:         "https://github.com/example/portfolio",
			Description: "Personal portfolio site with resume, skills radar and project showcase.",
			Skills:      "react,typescript,tailwind",
		},
		{
			Name:        "Portfolio API",
			URL:         "https://github.com/example/portfolio-api",
			Description: "REST backend serving the portfolio content.",
			Skills:      "go,fiber,postgresql",
		},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO projects (name, url, description, skills) VALUES ($1, $2, $3, $4)`,
			it.Name,
			it.URL,
			it.Description,
			it.Skills,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
