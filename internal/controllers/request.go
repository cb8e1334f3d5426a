package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/services"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"
)

type RequestController struct {
	requestService   services.RequestServiceInterface
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewRequestController(
	requestService services.RequestServiceInterface,
	dashboardService services.DashboardServiceInterface,
	logger *zap.Logger,
) *RequestController {
	return &RequestController{
		requestService:   requestService,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (c *RequestController) GetRequests(ctx echo.Context) error {
	// ?equipmentId=... сужает выборку до заявок одной единицы оборудования,
	// ?open=true дополнительно отбрасывает финальные стадии.
	if equipmentID := ctx.QueryParam("equipmentId"); equipmentID != "" {
		openOnly := ctx.QueryParam("open") == "true"
		requests, err := c.dashboardService.RequestsForEquipment(ctx.Request().Context(), equipmentID, openOnly)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		return utils.SuccessResponse(ctx, requests, "Заявки по оборудованию успешно получены", http.StatusOK)
	}

	requests, err := c.requestService.GetRequests(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, requests, "Список заявок успешно получен", http.StatusOK)
}

func (c *RequestController) FindRequest(ctx echo.Context) error {
	request, err := c.requestService.FindRequest(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Заявка успешно найдена", http.StatusOK)
}

func (c *RequestController) CreateRequest(ctx echo.Context) error {
	var payload dto.CreateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный JSON в теле запроса", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.requestService.CreateRequest(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "Заявка успешно создана", http.StatusCreated)
}

func (c *RequestController) UpdateRequest(ctx echo.Context) error {
	var payload dto.UpdateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный JSON в теле запроса", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.requestService.UpdateRequest(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, updated, "Заявка успешно обновлена", http.StatusOK)
}

// TransitionRequest — перевод заявки в другую стадию (drag-and-drop на канбане).
func (c *RequestController) TransitionRequest(ctx echo.Context) error {
	var payload dto.TransitionRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный JSON в теле запроса", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.requestService.TransitionRequest(ctx.Request().Context(), ctx.Param("id"), payload.Stage)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, updated, "Стадия заявки успешно изменена", http.StatusOK)
}

func (c *RequestController) AddComment(ctx echo.Context) error {
	var payload dto.CreateCommentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный JSON в теле запроса", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.requestService.AddComment(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, updated, "Комментарий успешно добавлен", http.StatusCreated)
}

func (c *RequestController) DeleteRequest(ctx echo.Context) error {
	if err := c.requestService.DeleteRequest(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Заявка успешно удалена", http.StatusOK)
}

// Calendar — заявки, назначенные на конкретный день (?date=YYYY-MM-DD,
// опционально ?type=corrective|preventive, по умолчанию preventive).
func (c *RequestController) Calendar(ctx echo.Context) error {
	date := ctx.QueryParam("date")
	if date == "" {
		return utils.ErrorResponse(ctx,
			apperrors.NewInvalidInputError("параметр 'date' обязателен"),
			c.logger,
		)
	}
	if _, err := utils.ParseDateOnly(date); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewInvalidInputError("параметр 'date' должен иметь формат YYYY-MM-DD"),
			c.logger,
		)
	}

	requests, err := c.dashboardService.RequestsForDate(ctx.Request().Context(), date, ctx.QueryParam("type"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, requests, "Заявки на дату успешно получены", http.StatusOK)
}
