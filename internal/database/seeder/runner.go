package seeder

import (
	"context"
	"fmt"

	"portfolio-api/internal/database"
)

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}

// tableEmpty reports whether table has no rows. table is a compile-time
// constant from this package, never caller input.
func tableEmpty(ctx context.Context, db database.DB, table string) (bool, error) {
	var count int64
	row := db.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table))
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
