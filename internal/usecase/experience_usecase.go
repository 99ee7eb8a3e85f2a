package usecase

import (
	"context"

	"portfolio-api/internal/repository"

	"github.com/rs/zerolog"
)

type ExperienceItem struct {
	ID      int64
	Company string
	Role    string
	Period  string
	Points  []string
}

type AddExperienceInput struct {
	Company string
	Role    string
	Period  string
	Points  []string
}

type ExperienceUsecase interface {
	ListExperiences(ctx context.Context) ([]ExperienceItem, error)
	AddExperience(ctx context.Context, in AddExperienceInput) (ExperienceItem, error)
}

type Experience struct {
	repo   repository.ExperienceRepository
	logger zerolog.Logger
}

func NewExperienceUsecase(repo repository.ExperienceRepository, logger zerolog.Logger) *Experience {
	return &Experience{repo: repo, logger: logger}
}

// ListExperiences reads experience rows and point rows separately and joins
// them in memory. The point rows arrive ordered by (experience_id, position),
// so each entry's points keep their submission order.
func (u *Experience) ListExperiences(ctx context.Context) ([]ExperienceItem, error) {
	exps, err := u.repo.GetAllExperiences(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("list experiences")
		return nil, ErrInternal
	}

	pts, err := u.repo.GetAllPoints(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("list experience points")
		return nil, ErrInternal
	}

	return assembleExperiences(exps, pts), nil
}

func (u *Experience) AddExperience(ctx context.Context, in AddExperienceInput) (ExperienceItem, error) {
	if in.Company == "" || in.Role == "" || in.Period == "" {
		return ExperienceItem{}, ErrInvalidInput
	}
	for _, p := range in.Points {
		if p == "" {
			return ExperienceItem{}, ErrInvalidInput
		}
	}

	points := in.Points
	if points == nil {
		points = []string{}
	}

	created, err := u.repo.CreateExperience(ctx, in.Company, in.Role, in.Period, points)
	if err != nil {
		u.logger.Error().Err(err).Msg("create experience")
		return ExperienceItem{}, ErrInternal
	}

	// The response echoes the submitted points; they committed in the same
	// transaction as the experience row.
	return ExperienceItem{
		ID:      created.ID,
		Company: created.Company,
		Role:    created.Role,
		Period:  created.Period,
		Points:  points,
	}, nil
}

func assembleExperiences(exps []repository.Experience, pts []repository.ExperiencePoint) []ExperienceItem {
	byExp := make(map[int64][]string, len(exps))
	for _, p := range pts {
		byExp[p.ExperienceID] = append(byExp[p.ExperienceID], p.Point)
	}

	out := make([]ExperienceItem, 0, len(exps))
	for _, e := range exps {
		points := byExp[e.ID]
		if points == nil {
			points = []string{}
		}
		out = append(out, ExperienceItem{
			ID:      e.ID,
			Company: e.Company,
			Role:    e.Role,
			Period:  e.Period,
			Points:  points,
		})
	}
	return out
}
