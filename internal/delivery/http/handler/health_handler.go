package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/usecase"
)

type HealthHandler struct {
	healthUC *usecase.HealthUseCase
	logger   *zap.Logger
}

func NewHealthHandler(healthUC *usecase.HealthUseCase, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		healthUC: healthUC,
		logger:   logger,
	}
}

// Check godoc
// @Summary Состояние сервиса
// @Description Пингует PostgreSQL и Redis. При недоступности любой зависимости возвращает 503 и статус degraded
// @Tags Health
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.HealthResponse}
// @Failure 503 {object} utils.SuccessResponse{data=dto.HealthResponse}
// @Router /api/health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := h.healthUC.Check(c.Context())
	if resp.Status != usecase.HealthStatusOK {
		c.Status(fiber.StatusServiceUnavailable)
	}
	return utils.SendSuccess(c, resp, nil)
}
