package repository

import (
	"context"

	"portfolio-api/internal/database"
)

type Project struct {
	ID          int64
	Name        string
	URL         string
	Description *string
	Skills      *string
}

type ProjectRepository interface {
	GetAllProjects(ctx context.Context) ([]Project, error)
	CreateProject(ctx context.Context, name, url string, description, skills *string) (Project, error)
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func (r *PostgresProjectRepository) GetAllProjects(ctx context.Context) ([]Project, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, url, description, skills FROM projects ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.URL, &p.Description, &p.Skills); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) CreateProject(ctx context.Context, name, url string, description, skills *string) (Project, error) {
	var p Project
	row := r.db.QueryRow(ctx,
		`INSERT INTO projects (name, url, description, skills) VALUES ($1, $2, $3, $4) RETURNING id, name, url, description, skills`,
		name, url, description, skills,
	)
	if err := row.Scan(&p.ID, &p.Name, &p.URL, &p.Description, &p.Skills); err != nil {
		return Project{}, err
	}
	return p, nil
}
