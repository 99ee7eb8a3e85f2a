package handler

import (
	"context"
	"time"

	"portfolio-api/internal/database"
	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

// Check reports process liveness plus store reachability. A down database
// still answers 200 so load balancers can tell the two conditions apart.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	dbState := "up"

	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	if h.db == nil || h.db.Ping(ctx) != nil {
		dbState = "down"
	}

	return response.JSON(c, fiber.StatusOK, dto.HealthResponse{Status: "ok", Database: dbState})
}
