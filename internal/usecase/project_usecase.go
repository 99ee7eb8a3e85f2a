package usecase

import (
	"context"

	"portfolio-api/internal/repository"

	"github.com/rs/zerolog"
)

type ProjectItem struct {
	ID          int64
	Name        string
	URL         string
	Description *string
	Skills      *string
}

// AddProjectInput carries a validated project body. Skills is an opaque
// comma-separated tag list; the store does not interpret it.
type AddProjectInput struct {
	Name        string
	URL         string
	Description string
	Skills      string
}

type ProjectUsecase interface {
	ListProjects(ctx context.Context) ([]ProjectItem, error)
	AddProject(ctx context.Context, in AddProjectInput) (ProjectItem, error)
}

type Project struct {
	repo   repository.ProjectRepository
	logger zerolog.Logger
}

func NewProjectUsecase(repo repository.ProjectRepository, logger zerolog.Logger) *Project {
	return &Project{repo: repo, logger: logger}
}

func (u *Project) ListProjects(ctx context.Context) ([]ProjectItem, error) {
	items, err := u.repo.GetAllProjects(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("list projects")
		return nil, ErrInternal
	}

	out := make([]ProjectItem, 0, len(items))
	for _, it := range items {
		out = append(out, ProjectItem{ID: it.ID, Name: it.Name, URL: it.URL, Description: it.Description, Skills: it.Skills})
	}
	return out, nil
}

func (u *Project) AddProject(ctx context.Context, in AddProjectInput) (ProjectItem, error) {
	if in.Name == "" || in.URL == "" {
		return ProjectItem{}, ErrInvalidInput
	}

	var description, skills *string
	if in.Description != "" {
		description = &in.Description
	}
	if in.Skills != "" {
		skills = &in.Skills
	}

	created, err := u.repo.CreateProject(ctx, in.Name, in.URL, description, skills)
	if err != nil {
		u.logger.Error().Err(err).Msg("create project")
		return ProjectItem{}, ErrInternal
	}
	return ProjectItem{ID: created.ID, Name: created.Name, URL: created.URL, Description: created.Description, Skills: created.Skills}, nil
}
