package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/usecase/dto"
)

// ListDays godoc
// @Summary Дни маршрута
// @Tags Itinerary Days
// @Produce json
// @Param id path int true "ID маршрута"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ItineraryDay}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/days [get]
func (h *ItineraryHandler) ListDays(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	days, err := h.itineraryUC.ListDays(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, days, &utils.Meta{Total: len(days)})
}

// CreateDay godoc
// @Summary Добавление дня
// @Description Номер дня вычисляется из даты; дата должна попадать в диапазон маршрута
// @Tags Itinerary Days
// @Accept json
// @Produce json
// @Param id path int true "ID маршрута"
// @Param request body dto.CreateDayRequest true "День"
// @Success 201 {object} utils.SuccessResponse{data=domain.ItineraryDay}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/days [post]
func (h *ItineraryHandler) CreateDay(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CreateDayRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	day, err := h.itineraryUC.CreateDay(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, day)
}

// GetDay godoc
// @Summary День по ID
// @Tags Itinerary Days
// @Produce json
// @Param id path int true "ID дня"
// @Success 200 {object} utils.SuccessResponse{data=domain.ItineraryDay}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itinerary-days/{id} [get]
func (h *ItineraryHandler) GetDay(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	day, err := h.itineraryUC.GetDay(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, day, nil)
}

// UpdateDay godoc
// @Summary Обновление дня
// @Tags Itinerary Days
// @Accept json
// @Produce json
// @Param id path int true "ID дня"
// @Param request body dto.UpdateDayRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=domain.ItineraryDay}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itinerary-days/{id} [put]
func (h *ItineraryHandler) UpdateDay(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateDayRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	day, err := h.itineraryUC.UpdateDay(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, day, nil)
}

// DeleteDay godoc
// @Summary Удаление дня вместе с пунктами
// @Tags Itinerary Days
// @Produce json
// @Param id path int true "ID дня"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itinerary-days/{id} [delete]
func (h *ItineraryHandler) DeleteDay(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.itineraryUC.DeleteDay(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendMessage(c, "Itinerary day deleted")
}

// DayRoute godoc
// @Summary Пешеходный маршрут дня
// @Description Переходы между пунктами дня, привязанными к заведениям. Без токена Mapbox или при его ошибке расстояние считается по прямой (source=haversine)
// @Tags Itinerary Days
// @Produce json
// @Param id path int true "ID дня"
// @Success 200 {object} utils.SuccessResponse{data=dto.DayRoute}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itinerary-days/{id}/route [get]
func (h *ItineraryHandler) DayRoute(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.DayRoute(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, route, &utils.Meta{Total: len(route.Legs)})
}

// ListItems godoc
// @Summary Пункты дня
// @Description Отсортированы по времени начала; пункты без времени идут последними
// @Tags Itinerary Items
// @Produce json
// @Param dayId path int true "ID дня"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ItineraryItem}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itinerary-days/{dayId}/items [get]
func (h *ItineraryHandler) ListItems(c *fiber.Ctx) error {
	dayID, err := paramID(c, "dayId")
	if err != nil {
		return utils.SendError(c, err)
	}

	items, err := h.itineraryUC.ListItems(c.Context(), dayID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, items, &utils.Meta{Total: len(items)})
}

// CreateItem godoc
// @Summary Добавление пункта в день
// @Tags Itinerary Items
// @Accept json
// @Produce json
// @Param dayId path int true "ID дня"
// @Param request body dto.CreateItemRequest true "Пункт"
// @Success 201 {object} utils.SuccessResponse{data=domain.ItineraryItem}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itinerary-days/{dayId}/items [post]
func (h *ItineraryHandler) CreateItem(c *fiber.Ctx) error {
	dayID, err := paramID(c, "dayId")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CreateItemRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	item, err := h.itineraryUC.CreateItem(c.Context(), dayID, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, item)
}

// GetItem godoc
// @Summary Пункт по ID
// @Tags Itinerary Items
// @Produce json
// @Param id path int true "ID пункта"
// @Success 200 {object} utils.SuccessResponse{data=domain.ItineraryItem}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itinerary-items/{id} [get]
func (h *ItineraryHandler) GetItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	item, err := h.itineraryUC.GetItem(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, item, nil)
}

// UpdateItem godoc
// @Summary Обновление пункта
// @Tags Itinerary Items
// @Accept json
// @Produce json
// @Param id path int true "ID пункта"
// @Param request body dto.UpdateItemRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=domain.ItineraryItem}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itinerary-items/{id} [put]
func (h *ItineraryHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateItemRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	item, err := h.itineraryUC.UpdateItem(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, item, nil)
}

// DeleteItem godoc
// @Summary Удаление пункта
// @Tags Itinerary Items
// @Produce json
// @Param id path int true "ID пункта"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itinerary-items/{id} [delete]
func (h *ItineraryHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.itineraryUC.DeleteItem(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendMessage(c, "Itinerary item deleted")
}
