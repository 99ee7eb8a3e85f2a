package handler

import (
	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/validation"

	"github.com/gofiber/fiber/v3"
)

type ExperienceHandler struct {
	uc usecase.ExperienceUsecase
}

func NewExperienceHandler(uc usecase.ExperienceUsecase) *ExperienceHandler {
	return &ExperienceHandler{uc: uc}
}

func (h *ExperienceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/experience")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
}

func (h *ExperienceHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListExperiences(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.ExperienceResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.ExperienceResponse{
			ID:      it.ID,
			Company: it.Company,
			Role:    it.Role,
			Period:  it.Period,
			Points:  it.Points,
		})
	}
	return response.JSON(c, fiber.StatusOK, res)
}

func (h *ExperienceHandler) Create(c fiber.Ctx) error {
	var req dto.CreateExperienceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if fieldErrs := validation.Check(req); fieldErrs != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageValidationFailed, fieldErrs, nil)
	}

	created, err := h.uc.AddExperience(c.Context(), usecase.AddExperienceInput{
		Company: req.Company,
		Role:    req.Role,
		Period:  req.Period,
		Points:  req.Points,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusCreated, dto.ExperienceResponse{
		ID:      created.ID,
		Company: created.Company,
		Role:    created.Role,
		Period:  created.Period,
		Points:  created.Points,
	})
}
