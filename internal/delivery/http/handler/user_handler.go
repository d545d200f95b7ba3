package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/usecase"
	"github.com/tourism-directory/internal/usecase/dto"
)

type UserHandler struct {
	userUC *usecase.UserUseCase
	logger *zap.Logger
}

func NewUserHandler(userUC *usecase.UserUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: logger,
	}
}

// Create godoc
// @Summary Регистрация пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Пользователь"
// @Success 201 {object} utils.SuccessResponse{data=domain.User}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	u, err := h.userUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, u)
}

// Get godoc
// @Summary Пользователь по ID
// @Tags Users
// @Produce json
// @Param id path int true "ID пользователя"
// @Success 200 {object} utils.SuccessResponse{data=domain.User}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	u, err := h.userUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, u, nil)
}

// ClaimHandler - заявки на владение заведениями
type ClaimHandler struct {
	claimUC *usecase.ClaimUseCase
	logger  *zap.Logger
}

func NewClaimHandler(claimUC *usecase.ClaimUseCase, logger *zap.Logger) *ClaimHandler {
	return &ClaimHandler{
		claimUC: claimUC,
		logger:  logger,
	}
}

// Create godoc
// @Summary Подать заявку на владение
// @Tags Claims
// @Accept json
// @Produce json
// @Param request body dto.CreateClaimRequest true "Заявка"
// @Success 201 {object} utils.SuccessResponse{data=domain.ClaimRequest}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/claim-requests [post]
func (h *ClaimHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateClaimRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	claim, err := h.claimUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, claim)
}

// List godoc
// @Summary Заявки по статусу
// @Tags Claims
// @Produce json
// @Param status query string false "pending, approved или rejected" default(pending)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ClaimRequest}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/claim-requests [get]
func (h *ClaimHandler) List(c *fiber.Ctx) error {
	status := domain.ClaimStatus(c.Query("status", string(domain.ClaimPending)))
	switch status {
	case domain.ClaimPending, domain.ClaimApproved, domain.ClaimRejected:
	default:
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("status must be one of [pending approved rejected]"))
	}

	claims, err := h.claimUC.ListByStatus(c.Context(), status)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, claims, &utils.Meta{Total: len(claims)})
}

// ListByUser godoc
// @Summary Заявки пользователя
// @Tags Claims
// @Produce json
// @Param userId path int true "ID пользователя"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ClaimRequest}
// @Router /api/claim-requests/user/{userId} [get]
func (h *ClaimHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return utils.SendError(c, err)
	}

	claims, err := h.claimUC.ListByUser(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, claims, &utils.Meta{Total: len(claims)})
}

// Resolve godoc
// @Summary Решение по заявке
// @Description Одобрение назначает владельца заведения. Решение по заявке принимается один раз
// @Tags Claims
// @Accept json
// @Produce json
// @Param id path int true "ID заявки"
// @Param request body dto.ResolveClaimRequest true "Решение"
// @Success 200 {object} utils.SuccessResponse{data=domain.ClaimRequest}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/claim-requests/{id} [put]
func (h *ClaimHandler) Resolve(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.ResolveClaimRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	claim, err := h.claimUC.Resolve(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, claim, nil)
}
