package usecase

import (
	"context"

	"portfolio-api/internal/repository"

	"github.com/rs/zerolog"
)

type SkillItem struct {
	ID      int64
	Subject string
	Level   int
	Logo    *string
}

type AddSkillInput struct {
	Subject string
	Level   int
	Logo    string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	AddSkill(ctx context.Context, in AddSkillInput) (SkillItem, error)
}

type Skill struct {
	repo   repository.SkillRepository
	logger zerolog.Logger
}

func NewSkillUsecase(repo repository.SkillRepository, logger zerolog.Logger) *Skill {
	return &Skill{repo: repo, logger: logger}
}

func (u *Skill) ListSkills(ctx context.Context) ([]SkillItem, error) {
	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("list skills")
		return nil, ErrInternal
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, SkillItem{ID: it.ID, Subject: it.Subject, Level: it.Level, Logo: it.Logo})
	}
	return out, nil
}

func (u *Skill) AddSkill(ctx context.Context, in AddSkillInput) (SkillItem, error) {
	if in.Subject == "" || in.Level < 0 || in.Level > 100 {
		return SkillItem{}, ErrInvalidInput
	}

	// Empty logo is stored as NULL, matching the nullable column.
	var logo *string
	if in.Logo != "" {
		logo = &in.Logo
	}

	created, err := u.repo.CreateSkill(ctx, in.Subject, in.Level, logo)
	if err != nil {
		u.logger.Error().Err(err).Msg("create skill")
		return SkillItem{}, ErrInternal
	}
	return SkillItem{ID: created.ID, Subject: created.Subject, Level: created.Level, Logo: created.Logo}, nil
}
