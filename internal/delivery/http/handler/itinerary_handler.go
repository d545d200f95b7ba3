package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/usecase"
	"github.com/tourism-directory/internal/usecase/dto"
)

// ItineraryHandler - маршруты, их дни, пункты и коллабораторы
type ItineraryHandler struct {
	itineraryUC *usecase.ItineraryUseCase
	routeUC     *usecase.RouteUseCase
	logger      *zap.Logger
}

func NewItineraryHandler(itineraryUC *usecase.ItineraryUseCase, routeUC *usecase.RouteUseCase, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUC: itineraryUC,
		routeUC:     routeUC,
		logger:      logger,
	}
}

// ListPublic godoc
// @Summary Публичные маршруты
// @Tags Itineraries
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Itinerary}
// @Router /api/itineraries [get]
func (h *ItineraryHandler) ListPublic(c *fiber.Ctx) error {
	list, err := h.itineraryUC.ListPublic(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, list, &utils.Meta{Total: len(list)})
}

// ListByUser godoc
// @Summary Маршруты пользователя
// @Tags Itineraries
// @Produce json
// @Param userId path int true "ID пользователя"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Itinerary}
// @Router /api/itineraries/user/{userId} [get]
func (h *ItineraryHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return utils.SendError(c, err)
	}

	list, err := h.itineraryUC.ListByUser(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, list, &utils.Meta{Total: len(list)})
}

// Create godoc
// @Summary Создание маршрута
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body dto.CreateItineraryRequest true "Маршрут"
// @Success 201 {object} utils.SuccessResponse{data=domain.Itinerary}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries [post]
func (h *ItineraryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateItineraryRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	it, err := h.itineraryUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, it)
}

// Get godoc
// @Summary Маршрут по ID
// @Tags Itineraries
// @Produce json
// @Param id path int true "ID маршрута"
// @Success 200 {object} utils.SuccessResponse{data=domain.Itinerary}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id} [get]
func (h *ItineraryHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	it, err := h.itineraryUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, it, nil)
}

// Details godoc
// @Summary Маршрут целиком
// @Description Дни по порядку, пункты каждого дня по времени начала (без времени - в конце), коллабораторы и трансферы
// @Tags Itineraries
// @Produce json
// @Param id path int true "ID маршрута"
// @Success 200 {object} utils.SuccessResponse{data=dto.ItineraryDetails}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/details [get]
func (h *ItineraryHandler) Details(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	details, err := h.itineraryUC.Details(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, details, nil)
}

// Update godoc
// @Summary Обновление маршрута
// @Description При смене дат дни перенумеровываются; день вне нового диапазона даёт DAY_OUT_OF_RANGE
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param id path int true "ID маршрута"
// @Param request body dto.UpdateItineraryRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=domain.Itinerary}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id} [put]
func (h *ItineraryHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateItineraryRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	it, err := h.itineraryUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, it, nil)
}

// Delete godoc
// @Summary Удаление маршрута
// @Description Удаляет дни, пункты и коллабораторов в одной транзакции; трансферы отвязываются
// @Tags Itineraries
// @Produce json
// @Param id path int true "ID маршрута"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id} [delete]
func (h *ItineraryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.itineraryUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendMessage(c, "Itinerary deleted")
}
