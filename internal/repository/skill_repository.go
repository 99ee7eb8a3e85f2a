package repository

import (
	"context"

	"portfolio-api/internal/database"
)

type Skill struct {
	ID      int64
	Subject string
	Level   int
	Logo    *string
}

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]Skill, error)
	CreateSkill(ctx context.Context, subject string, level int, logo *string) (Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

// GetAllSkills returns every skill, newest first. Descending id is the
// ordering contract of the list endpoints.
func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, subject, level, logo FROM skills ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Subject, &s.Level, &s.Logo); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSkill inserts a row and returns it with the generated id. RETURNING
// makes the insert-and-read a single statement, so a concurrent writer can
// never hand us someone else's row.
func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, subject string, level int, logo *string) (Skill, error) {
	var s Skill
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (subject, level, logo) VALUES ($1, $2, $3) RETURNING id, subject, level, logo`,
		subject, level, logo,
	)
	if err := row.Scan(&s.ID, &s.Subject, &s.Level, &s.Logo); err != nil {
		return Skill{}, err
	}
	return s, nil
}
