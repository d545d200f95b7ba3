package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/usecase/dto"
)

// ListCollaborators godoc
// @Summary Коллабораторы маршрута
// @Tags Collaborators
// @Produce json
// @Param id path int true "ID маршрута"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Collaborator}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/collaborators [get]
func (h *ItineraryHandler) ListCollaborators(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	list, err := h.itineraryUC.ListCollaborators(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, list, &utils.Meta{Total: len(list)})
}

// AddCollaborator godoc
// @Summary Приглашение коллаборатора
// @Description Email уникален в пределах маршрута (регистр не учитывается)
// @Tags Collaborators
// @Accept json
// @Produce json
// @Param id path int true "ID маршрута"
// @Param request body dto.AddCollaboratorRequest true "Коллаборатор"
// @Success 201 {object} utils.SuccessResponse{data=domain.Collaborator}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/collaborators [post]
func (h *ItineraryHandler) AddCollaborator(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.AddCollaboratorRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	collaborator, err := h.itineraryUC.AddCollaborator(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, collaborator)
}

// UpdateCollaborator godoc
// @Summary Изменение доступа коллаборатора
// @Tags Collaborators
// @Accept json
// @Produce json
// @Param id path int true "ID маршрута"
// @Param email path string true "Email коллаборатора"
// @Param request body dto.UpdateCollaboratorRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=domain.Collaborator}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/collaborators/{email} [put]
func (h *ItineraryHandler) UpdateCollaborator(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	email, err := paramString(c, "email")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateCollaboratorRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	collaborator, err := h.itineraryUC.UpdateCollaborator(c.Context(), id, email, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, collaborator, nil)
}

// RemoveCollaborator godoc
// @Summary Удаление коллаборатора
// @Tags Collaborators
// @Produce json
// @Param id path int true "ID маршрута"
// @Param email path string true "Email коллаборатора"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/itineraries/{id}/collaborators/{email} [delete]
func (h *ItineraryHandler) RemoveCollaborator(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	email, err := paramString(c, "email")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.itineraryUC.RemoveCollaborator(c.Context(), id, email); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendMessage(c, "Collaborator removed")
}
