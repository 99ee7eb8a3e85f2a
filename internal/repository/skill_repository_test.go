package repository

import (
	"context"
	"strings"
	"testing"
)

func TestSkillRepository_CreateSkill_SingleStatementReturning(t *testing.T) {
	logo := "https://example.com/go.svg"
	db := &fakeDB{rows: map[string][][]any{
		"INSERT INTO skills": {{int64(5), "Go", 85, logo}},
	}}
	repo := NewPostgresSkillRepository(db)

	created, err := repo.CreateSkill(context.Background(), "Go", 85, &logo)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.ID != 5 || created.Subject != "Go" || created.Level != 85 {
		t.Fatalf("unexpected row: %+v", created)
	}

	if len(db.queries) != 1 {
		t.Fatalf("expected a single statement, got %d", len(db.queries))
	}
	if !strings.Contains(db.queries[0], "RETURNING") {
		t.Fatalf("insert must return the generated row: %s", db.queries[0])
	}
	if got := db.args[0]; len(got) != 3 || got[0] != "Go" || got[1] != 85 {
		t.Fatalf("unexpected bound args: %v", got)
	}
}

func TestSkillRepository_GetAllSkills_DescendingByID(t *testing.T) {
	db := &fakeDB{rows: map[string][][]any{
		"FROM skills": {
			{int64(3), "React", 75, nil},
			{int64(2), "Go", 85, nil},
			{int64(1), "SQL", 60, nil},
		},
	}}
	repo := NewPostgresSkillRepository(db)

	items, err := repo.GetAllSkills(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(items))
	}
	if !strings.Contains(db.queries[0], "ORDER BY id DESC") {
		t.Fatalf("list must order by id desc: %s", db.queries[0])
	}
	if items[0].Logo != nil {
		t.Fatalf("expected null logo, got %v", *items[0].Logo)
	}
}

func TestSkillRepository_GetAllSkills_EmptyTable(t *testing.T) {
	db := &fakeDB{rows: map[string][][]any{"FROM skills": {}}}
	repo := NewPostgresSkillRepository(db)

	items, err := repo.GetAllSkills(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty slice, got %v", items)
	}
}
