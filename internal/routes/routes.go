package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-system/internal/controllers"
	"maintenance-system/internal/repositories"
	"maintenance-system/internal/services"
	"maintenance-system/internal/store"
)

func InitRouter(e *echo.Echo, storage store.RecordStore, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")

	// --- 1. РЕПОЗИТОРИИ ---
	equipmentRepo := repositories.NewEquipmentRepository(storage)
	teamRepo := repositories.NewTeamRepository(storage)
	categoryRepo := repositories.NewCategoryRepository(storage)
	requestRepo := repositories.NewRequestRepository(storage)

	// --- 2. СЕРВИСЫ ---
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	teamService := services.NewTeamService(teamRepo, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	requestService := services.NewRequestService(requestRepo, equipmentRepo, logger)
	dashboardService := services.NewDashboardService(requestRepo, equipmentRepo, teamRepo, logger)
	reportService := services.NewReportService(requestRepo, equipmentRepo, teamRepo, logger)

	// --- 3. КОНТРОЛЛЕРЫ ---
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	teamCtrl := controllers.NewTeamController(teamService, logger)
	categoryCtrl := controllers.NewCategoryController(categoryService, logger)
	requestCtrl := controllers.NewRequestController(requestService, dashboardService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	// --- 4. РОУТЕРЫ ---
	runEquipmentRouter(api, equipmentCtrl)
	runTeamRouter(api, teamCtrl)
	runCategoryRouter(api, categoryCtrl)
	runRequestRouter(api, requestCtrl, dashboardCtrl, reportCtrl)

	logger.Info("INIT_ROUTER: Создание маршрутов завершено")
}
