package handler

import (
	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/validation"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/projects")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListProjects(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.ProjectResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.ProjectResponse{
			ID:          it.ID,
			Name:        it.Name,
			URL:         it.URL,
			Description: it.Description,
			Skills:      it.Skills,
		})
	}
	return response.JSON(c, fiber.StatusOK, res)
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if fieldErrs := validation.Check(req); fieldErrs != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageValidationFailed, fieldErrs, nil)
	}

	created, err := h.uc.AddProject(c.Context(), usecase.AddProjectInput{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		Skills:      req.Skills,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusCreated, dto.ProjectResponse{
		ID:          created.ID,
		Name:        created.Name,
		URL:         created.URL,
		Description: created.Description,
		Skills:      created.Skills,
	})
}
