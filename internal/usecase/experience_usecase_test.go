package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"portfolio-api/internal/repository"

	"github.com/rs/zerolog"
)

type mockExperienceRepo struct {
	exps        []repository.Experience
	pts         []repository.ExperiencePoint
	err         error
	createCalls int
	gotPoints   []string
}

func (m *mockExperienceRepo) GetAllExperiences(context.Context) ([]repository.Experience, error) {
	return m.exps, m.err
}

func (m *mockExperienceRepo) GetAllPoints(context.Context) ([]repository.ExperiencePoint, error) {
	return m.pts, m.err
}

func (m *mockExperienceRepo) CreateExperience(_ context.Context, company, role, period string, points []string) (repository.Experience, error) {
	m.createCalls++
	m.gotPoints = points
	if m.err != nil {
		return repository.Experience{}, m.err
	}
	return repository.Experience{ID: 42, Company: company, Role: role, Period: period}, nil
}

func TestExperienceUsecase_List_AssemblesPointsInOrder(t *testing.T) {
	repo := &mockExperienceRepo{
		exps: []repository.Experience{
			{ID: 2, Company: "Acme", Role: "Engineer", Period: "2023-2024"},
			{ID: 1, Company: "Initech", Role: "Intern", Period: "2022"},
		},
		pts: []repository.ExperiencePoint{
			{ExperienceID: 1, Position: 0, Point: "Fixed printers"},
			{ExperienceID: 2, Position: 0, Point: "Built X"},
			{ExperienceID: 2, Position: 1, Point: "Shipped Y"},
		},
	}
	uc := NewExperienceUsecase(repo, zerolog.Nop())

	items, err := uc.ListExperiences(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != 2 || items[1].ID != 1 {
		t.Fatalf("expected store order preserved, got %v then %v", items[0].ID, items[1].ID)
	}
	if !reflect.DeepEqual(items[0].Points, []string{"Built X", "Shipped Y"}) {
		t.Fatalf("unexpected points: %v", items[0].Points)
	}
	if !reflect.DeepEqual(items[1].Points, []string{"Fixed printers"}) {
		t.Fatalf("unexpected points: %v", items[1].Points)
	}
}

func TestExperienceUsecase_List_NoPointsYieldsEmptySlice(t *testing.T) {
	repo := &mockExperienceRepo{
		exps: []repository.Experience{{ID: 1, Company: "Acme", Role: "Engineer", Period: "2023"}},
	}
	uc := NewExperienceUsecase(repo, zerolog.Nop())

	items, err := uc.ListExperiences(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if items[0].Points == nil || len(items[0].Points) != 0 {
		t.Fatalf("expected empty points slice, got %v", items[0].Points)
	}
}

func TestExperienceUsecase_List_Idempotent(t *testing.T) {
	repo := &mockExperienceRepo{
		exps: []repository.Experience{{ID: 1, Company: "Acme", Role: "Engineer", Period: "2023"}},
		pts:  []repository.ExperiencePoint{{ExperienceID: 1, Position: 0, Point: "Built X"}},
	}
	uc := NewExperienceUsecase(repo, zerolog.Nop())

	first, err := uc.ListExperiences(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.ListExperiences(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("consecutive reads differ: %v vs %v", first, second)
	}
}

func TestExperienceUsecase_Add_EchoesSubmittedPoints(t *testing.T) {
	repo := &mockExperienceRepo{}
	uc := NewExperienceUsecase(repo, zerolog.Nop())

	created, err := uc.AddExperience(context.Background(), AddExperienceInput{
		Company: "Acme",
		Role:    "Engineer",
		Period:  "2023-2024",
		Points:  []string{"Built X", "Shipped Y"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.ID != 42 {
		t.Fatalf("expected generated id, got %d", created.ID)
	}
	if !reflect.DeepEqual(created.Points, []string{"Built X", "Shipped Y"}) {
		t.Fatalf("points not echoed in order: %v", created.Points)
	}
	if !reflect.DeepEqual(repo.gotPoints, []string{"Built X", "Shipped Y"}) {
		t.Fatalf("points not persisted in order: %v", repo.gotPoints)
	}
}

func TestExperienceUsecase_Add_NilPointsDefaultsToEmpty(t *testing.T) {
	repo := &mockExperienceRepo{}
	uc := NewExperienceUsecase(repo, zerolog.Nop())

	created, err := uc.AddExperience(context.Background(), AddExperienceInput{
		Company: "Acme",
		Role:    "Engineer",
		Period:  "2023",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Points == nil || len(created.Points) != 0 {
		t.Fatalf("expected empty points, got %v", created.Points)
	}
}

func TestExperienceUsecase_Add_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		in   AddExperienceInput
	}{
		{name: "empty company", in: AddExperienceInput{Role: "Engineer", Period: "2023"}},
		{name: "empty role", in: AddExperienceInput{Company: "Acme", Period: "2023"}},
		{name: "empty period", in: AddExperienceInput{Company: "Acme", Role: "Engineer"}},
		{name: "empty point", in: AddExperienceInput{Company: "Acme", Role: "Engineer", Period: "2023", Points: []string{"ok", ""}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockExperienceRepo{}
			uc := NewExperienceUsecase(repo, zerolog.Nop())

			_, err := uc.AddExperience(context.Background(), tc.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if repo.createCalls != 0 {
				t.Fatalf("expected no write, got %d calls", repo.createCalls)
			}
		})
	}
}

func TestExperienceUsecase_Add_StoreFailure(t *testing.T) {
	repo := &mockExperienceRepo{err: errors.New("tx aborted")}
	uc := NewExperienceUsecase(repo, zerolog.Nop())

	_, err := uc.AddExperience(context.Background(), AddExperienceInput{Company: "Acme", Role: "Engineer", Period: "2023"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
