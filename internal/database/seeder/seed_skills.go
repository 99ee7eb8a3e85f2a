package seeder

import (
	"context"
	"fmt"

	"portfolio-api/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "subject", "level", "logo"); err != nil {
		return err
	}

	empty, err := tableEmpty(ctx, db, "skills")
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
		Subject string
		Level   int
	}{
		{Subject: "Go", Level: 85},
		{Subject: "TypeScript", Level: 80},
		{Subject: "React", Level: 75},
		{Subject: "PostgreSQL", Level: 70},
		{Subject: "Docker", Level: 65},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (subject, level, logo) VALUES ($1, $2, NULL)`,
			it.Subject,
			it.Level,
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
