package usecase

import (
	"context"
	"errors"
	"testing"

	"portfolio-api/internal/repository"

	"github.com/rs/zerolog"
)

type mockProjectRepo struct {
	items          []repository.Project
	err            error
	createCalls    int
	gotDescription *string
	gotSkills      *string
}

func (m *mockProjectRepo) GetAllProjects(context.Context) ([]repository.Project, error) {
	return m.items, m.err
}

func (m *mockProjectRepo) CreateProject(_ context.Context, name, url string, description, skills *string) (repository.Project, error) {
	m.createCalls++
	m.gotDescription = description
	m.gotSkills = skills
	if m.err != nil {
		return repository.Project{}, m.err
	}
	return repository.Project{ID: 3, Name: name, URL: url, Description: description, Skills: skills}, nil
}

func TestProjectUsecase_AddProject_EmptyOptionalsStoredAsNull(t *testing.T) {
	repo := &mockProjectRepo{}
	uc := NewProjectUsecase(repo, zerolog.Nop())

	created, err := uc.AddProject(context.Background(), AddProjectInput{Name: "Portfolio", URL: "https://example.com"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.gotDescription != nil || repo.gotSkills != nil {
		t.Fatalf("expected nil optionals, got %v / %v", repo.gotDescription, repo.gotSkills)
	}
	if created.Description != nil || created.Skills != nil {
		t.Fatalf("expected null optionals in echo: %+v", created)
	}
}

func TestProjectUsecase_AddProject_KeepsOptionalValues(t *testing.T) {
	repo := &mockProjectRepo{}
	uc := NewProjectUsecase(repo, zerolog.Nop())

	created, err := uc.AddProject(context.Background(), AddProjectInput{
		Name:        "Portfolio",
		URL:         "https://example.com",
		Description: "personal site",
		Skills:      "go,react",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Description == nil || *created.Description != "personal site" {
		t.Fatalf("unexpected description: %v", created.Description)
	}
	if created.Skills == nil || *created.Skills != "go,react" {
		t.Fatalf("unexpected skills: %v", created.Skills)
	}
}

func TestProjectUsecase_AddProject_RejectsMissingFields(t *testing.T) {
	repo := &mockProjectRepo{}
	uc := NewProjectUsecase(repo, zerolog.Nop())

	_, err := uc.AddProject(context.Background(), AddProjectInput{Name: "", URL: "x"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no write, got %d calls", repo.createCalls)
	}
}

func TestProjectUsecase_ListProjects_PreservesStoreOrder(t *testing.T) {
	repo := &mockProjectRepo{items: []repository.Project{
		{ID: 3, Name: "C", URL: "u3"},
		{ID: 2, Name: "B", URL: "u2"},
		{ID: 1, Name: "A", URL: "u1"},
	}}
	uc := NewProjectUsecase(repo, zerolog.Nop())

	items, err := uc.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if items[0].ID != 3 || items[1].ID != 2 || items[2].ID != 1 {
		t.Fatalf("order changed: %v", items)
	}
}
