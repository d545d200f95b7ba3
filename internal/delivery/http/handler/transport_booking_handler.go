package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/usecase"
	"github.com/tourism-directory/internal/usecase/dto"
)

// TransportBookingHandler - трансферы пользователя, опционально привязанные к маршруту
type TransportBookingHandler struct {
	bookingUC *usecase.TransportBookingUseCase
	logger    *zap.Logger
}

func NewTransportBookingHandler(bookingUC *usecase.TransportBookingUseCase, logger *zap.Logger) *TransportBookingHandler {
	return &TransportBookingHandler{
		bookingUC: bookingUC,
		logger:    logger,
	}
}

// Create godoc
// @Summary Бронирование трансфера
// @Tags Transport Bookings
// @Accept json
// @Produce json
// @Param request body dto.CreateTransportBookingRequest true "Бронирование"
// @Success 201 {object} utils.SuccessResponse{data=domain.TransportBooking}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/transport-bookings [post]
func (h *TransportBookingHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTransportBookingRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	b, err := h.bookingUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, b)
}

// CreateForItinerary godoc
// @Summary Бронирование трансфера в рамках маршрута
// @Tags Transport Bookings
// @Accept json
// @Produce json
// @Param id path int true "ID маршрута"
// @Param request body dto.CreateTransportBookingRequest true "Бронирование"
// @Success 201 {object} utils.SuccessResponse{data=domain.TransportBooking}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/transport-bookings [post]
func (h *TransportBookingHandler) CreateForItinerary(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CreateTransportBookingRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	b, err := h.bookingUC.CreateForItinerary(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, b)
}

// ListByItinerary godoc
// @Summary Трансферы маршрута
// @Tags Transport Bookings
// @Produce json
// @Param id path int true "ID маршрута"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.TransportBooking}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/transport-bookings [get]
func (h *TransportBookingHandler) ListByItinerary(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	list, err := h.bookingUC.ListByItinerary(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, list, &utils.Meta{Total: len(list)})
}

// ListByUser godoc
// @Summary Трансферы пользователя
// @Tags Transport Bookings
// @Produce json
// @Param userId path int true "ID пользователя"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.TransportBooking}
// @Router /api/transport-bookings/user/{userId} [get]
func (h *TransportBookingHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return utils.SendError(c, err)
	}

	list, err := h.bookingUC.ListByUser(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, list, &utils.Meta{Total: len(list)})
}

// Get godoc
// @Summary Трансфер по ID
// @Tags Transport Bookings
// @Produce json
// @Param id path int true "ID бронирования"
// @Success 200 {object} utils.SuccessResponse{data=domain.TransportBooking}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/transport-bookings/{id} [get]
func (h *TransportBookingHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	b, err := h.bookingUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, b, nil)
}

// Update godoc
// @Summary Обновление трансфера
// @Description Статус этим запросом не меняется, для него есть /status
// @Tags Transport Bookings
// @Accept json
// @Produce json
// @Param id path int true "ID бронирования"
// @Param request body dto.UpdateTransportBookingRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=domain.TransportBooking}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/transport-bookings/{id} [put]
func (h *TransportBookingHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateTransportBookingRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	b, err := h.bookingUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, b, nil)
}

// UpdateStatus godoc
// @Summary Смена статуса трансфера
// @Description pending -> confirmed -> completed, pending|confirmed -> cancelled. При подтверждении без кода генерируется код TB-XXXXXXXX
// @Tags Transport Bookings
// @Accept json
// @Produce json
// @Param id path int true "ID бронирования"
// @Param request body dto.UpdateBookingStatusRequest true "Новый статус"
// @Success 200 {object} utils.SuccessResponse{data=domain.TransportBooking}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/transport-bookings/{id}/status [put]
func (h *TransportBookingHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateBookingStatusRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	b, err := h.bookingUC.UpdateStatus(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, b, nil)
}

// Delete godoc
// @Summary Удаление трансфера
// @Tags Transport Bookings
// @Produce json
// @Param id path int true "ID бронирования"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/transport-bookings/{id} [delete]
func (h *TransportBookingHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.bookingUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendMessage(c, "Transport booking deleted")
}
