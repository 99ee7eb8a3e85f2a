package repository

import (
	"context"

	"portfolio-api/internal/database"
)

type Experience struct {
	ID      int64
	Company string
	Role    string
	Period  string
}

// ExperiencePoint is one bullet line belonging to an experience row. Position
// records submission order so reads never depend on incidental row order.
type ExperiencePoint struct {
	ExperienceID int64
	Position     int
	Point        string
}

type ExperienceRepository interface {
	GetAllExperiences(ctx context.Context) ([]Experience, error)
	GetAllPoints(ctx context.Context) ([]ExperiencePoint, error)
	CreateExperience(ctx context.Context, company, role, period string, points []string) (Experience, error)
}

type PostgresExperienceRepository struct {
	db database.DB
}

func NewPostgresExperienceRepository(db database.DB) *PostgresExperienceRepository {
	return &PostgresExperienceRepository{db: db}
}

func (r *PostgresExperienceRepository) GetAllExperiences(ctx context.Context) ([]Experience, error) {
	rows, err := r.db.Query(ctx, `SELECT id, company, role, period FROM experience ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Experience, 0)
	for rows.Next() {
		var e Experience
		if err := rows.Scan(&e.ID, &e.Company, &e.Role, &e.Period); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresExperienceRepository) GetAllPoints(ctx context.Context) ([]ExperiencePoint, error) {
	rows, err := r.db.Query(ctx,
		`SELECT experience_id, position, point FROM experience_points ORDER BY experience_id, position`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ExperiencePoint, 0)
	for rows.Next() {
		var p ExperiencePoint
		if err := rows.Scan(&p.ExperienceID, &p.Position, &p.Point); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateExperience writes the experience row and its points in one
// transaction. Either the whole entry commits or none of it does; a failed
// point insert cannot leave a half-written experience behind.
func (r *PostgresExperienceRepository) CreateExperience(ctx context.Context, company, role, period string, points []string) (Experience, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Experience{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var e Experience
	row := tx.QueryRow(ctx,
		`INSERT INTO experience (company, role, period) VALUES ($1, $2, $3) RETURNING id, company, role, period`,
		company, role, period,
	)
	if err := row.Scan(&e.ID, &e.Company, &e.Role, &e.Period); err != nil {
		return Experience{}, err
	}

	for i, p := range points {
		_, err := tx.Exec(ctx,
			`INSERT INTO experience_points (experience_id, position, point) VALUES ($1, $2, $3)`,
			e.ID, i, p,
		)
		if err != nil {
			return Experience{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Experience{}, err
	}
	return e, nil
}
