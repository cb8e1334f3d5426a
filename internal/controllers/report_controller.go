package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/services"
	"maintenance-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetRequestRegister(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	format := strings.ToLower(ctx.QueryParam("format"))

	rows, err := c.reportService.GetRequestRegister(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, rows)
	}
	return utils.SuccessResponse(ctx, rows, "Реестр заявок успешно сформирован", http.StatusOK)
}

var registerHeaders = []string{
	"ID заявки", "Тема", "Оборудование", "Категория", "Команда", "Техник",
	"Тип", "Стадия", "Приоритет", "Плановая дата", "Длительность (часы)",
	"Просрочена", "Дата создания",
}

func registerRowToSlice(row dto.RequestReportRowDTO) []interface{} {
	overdue := "нет"
	if row.Overdue {
		overdue = "да"
	}
	scheduled := row.ScheduledDate
	if scheduled == "" {
		scheduled = "-"
	}
	return []interface{}{
		row.ID, row.Subject, row.Equipment, row.Category, row.Team, row.Technician,
		row.Type, row.Stage, row.Priority, scheduled, row.DurationHours,
		overdue, row.CreatedAt,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, rows []dto.RequestReportRowDTO) error {
	f := excelize.NewFile()
	sheet := "Реестр заявок"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &registerHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "M1", style)

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := registerRowToSlice(row)
		f.SetSheetRow(sheet, cell, &values)
	}
	f.SetColWidth(sheet, "A", "A", 38)
	f.SetColWidth(sheet, "B", "C", 30)
	f.SetColWidth(sheet, "D", "F", 20)
	f.SetColWidth(sheet, "J", "M", 18)

	fileName := fmt.Sprintf("maintenance_register_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
