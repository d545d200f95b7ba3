package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/usecase"
)

type SeedHandler struct {
	seedUC *usecase.SeedUseCase
	logger *zap.Logger
}

func NewSeedHandler(seedUC *usecase.SeedUseCase, logger *zap.Logger) *SeedHandler {
	return &SeedHandler{
		seedUC: seedUC,
		logger: logger,
	}
}

// Seed godoc
// @Summary Загрузка демо-данных
// @Description Заполняет каталог только если нет ни категорий, ни заведений; повторный вызов ничего не меняет
// @Tags Seed
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SeedResult}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/seed-data [post]
func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	result, err := h.seedUC.Seed(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
