package handler

import (
	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/validation"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.SkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.SkillResponse{ID: it.ID, Subject: it.Subject, Level: it.Level, Logo: it.Logo})
	}
	return response.JSON(c, fiber.StatusOK, res)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req dto.CreateSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if fieldErrs := validation.Check(req); fieldErrs != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageValidationFailed, fieldErrs, nil)
	}

	created, err := h.uc.AddSkill(c.Context(), usecase.AddSkillInput{
		Subject: req.Subject,
		Level:   req.Level,
		Logo:    req.Logo,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusCreated, dto.SkillResponse{
		ID:      created.ID,
		Subject: created.Subject,
		Level:   created.Level,
		Logo:    created.Logo,
	})
}
