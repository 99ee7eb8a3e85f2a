// Package routes wires repositories, usecases, and handlers onto the fiber
// app. Resources are registered at the root: /skills, /projects, /experience.
package routes

import (
	"portfolio-api/internal/database"
	"portfolio-api/internal/delivery/http/handler"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

func Register(app *fiber.App, db database.DB, logger zerolog.Logger) {
	if app == nil {
		return
	}

	skillRepo := repository.NewPostgresSkillRepository(db)
	projectRepo := repository.NewPostgresProjectRepository(db)
	experienceRepo := repository.NewPostgresExperienceRepository(db)

	skillUC := usecase.NewSkillUsecase(skillRepo, logger)
	projectUC := usecase.NewProjectUsecase(projectRepo, logger)
	experienceUC := usecase.NewExperienceUsecase(experienceRepo, logger)

	handler.NewHealthHandler(db).RegisterRoutes(app)
	handler.NewSkillHandler(skillUC).RegisterRoutes(app)
	handler.NewProjectHandler(projectUC).RegisterRoutes(app)
	handler.NewExperienceHandler(experienceUC).RegisterRoutes(app)
}
