package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/pkg/utils"
	"github.com/tourism-directory/internal/usecase"
	"github.com/tourism-directory/internal/usecase/dto"
)

// BusinessHandler - каталог заведений и фильтрованный поиск
type BusinessHandler struct {
	businessUC      *usecase.BusinessUseCase
	defaultRadiusKm float64
	logger          *zap.Logger
}

func NewBusinessHandler(businessUC *usecase.BusinessUseCase, defaultRadiusKm float64, logger *zap.Logger) *BusinessHandler {
	return &BusinessHandler{
		businessUC:      businessUC,
		defaultRadiusKm: defaultRadiusKm,
		logger:          logger,
	}
}

// Search godoc
// @Summary Поиск заведений
// @Description Все переданные фильтры применяются одновременно. Списочные параметры (priceLevel, amenities, accessibility) принимают значения через запятую или повтором параметра. При nearMe=true (или переданных latitude/longitude) выдача отсортирована по расстоянию.
// @Tags Businesses
// @Produce json
// @Param keyword query string false "Подстрока в названии или описании"
// @Param categoryId query int false "ID категории"
// @Param priceLevel query string false "Уровни цен, например 1,2"
// @Param rating query number false "Минимальный рейтинг (0-5)"
// @Param amenities query string false "Удобства, например wifi,pool"
// @Param accessibility query string false "Доступность, например wheelchair_accessible"
// @Param nearMe query bool false "Искать рядом с точкой latitude/longitude"
// @Param latitude query number false "Широта"
// @Param longitude query number false "Долгота"
// @Param radius query number false "Радиус в км" default(10)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BusinessResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/businesses [get]
func (h *BusinessHandler) Search(c *fiber.Ctx) error {
	q, err := url.ParseQuery(string(c.Context().QueryArgs().QueryString()))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Malformed query string"))
	}

	filter, err := dto.ParseBusinessFilter(q, h.defaultRadiusKm)
	if err != nil {
		return utils.SendError(c, err)
	}

	results, err := h.businessUC.Search(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, results, &utils.Meta{
		Total: len(results),
	})
}

// Get godoc
// @Summary Заведение по ID
// @Tags Businesses
// @Produce json
// @Param id path int true "ID заведения"
// @Success 200 {object} utils.SuccessResponse{data=domain.Business}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/businesses/{id} [get]
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	b, err := h.businessUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, b, nil)
}

// ListByOwner godoc
// @Summary Заведения владельца
// @Tags Businesses
// @Produce json
// @Param ownerId path int true "ID владельца"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Business}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/businesses/owner/{ownerId} [get]
func (h *BusinessHandler) ListByOwner(c *fiber.Ctx) error {
	ownerID, err := paramID(c, "ownerId")
	if err != nil {
		return utils.SendError(c, err)
	}

	list, err := h.businessUC.ListByOwner(c.Context(), ownerID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, list, &utils.Meta{Total: len(list)})
}

// Create godoc
// @Summary Создание заведения
// @Description Если передан owner_id, заведение сразу считается подтверждённым
// @Tags Businesses
// @Accept json
// @Produce json
// @Param request body dto.CreateBusinessRequest true "Заведение"
// @Success 201 {object} utils.SuccessResponse{data=domain.Business}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/businesses [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBusinessRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	b, err := h.businessUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, b)
}

// Update godoc
// @Summary Обновление заведения
// @Description Частичное обновление; владелец меняется только через заявку на владение
// @Tags Businesses
// @Accept json
// @Produce json
// @Param id path int true "ID заведения"
// @Param request body dto.UpdateBusinessRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=domain.Business}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/businesses/{id} [put]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateBusinessRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	b, err := h.businessUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, b, nil)
}

// CategoryHandler - справочник категорий
type CategoryHandler struct {
	categoryUC *usecase.CategoryUseCase
	logger     *zap.Logger
}

func NewCategoryHandler(categoryUC *usecase.CategoryUseCase, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: categoryUC,
		logger:     logger,
	}
}

// List godoc
// @Summary Список категорий
// @Tags Categories
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Category}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, categories, &utils.Meta{Total: len(categories)})
}

// Create godoc
// @Summary Создание категории
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Категория"
// @Success 201 {object} utils.SuccessResponse{data=domain.Category}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	category, err := h.categoryUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, category)
}
