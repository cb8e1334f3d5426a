package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runRequestRouter(
	api *echo.Group,
	requestCtrl *controllers.RequestController,
	dashboardCtrl *controllers.DashboardController,
	reportCtrl *controllers.ReportController,
) {
	{
		// Статические сегменты раньше параметризованных, иначе echo
		// сматчит "analytics" как :id.
		api.GET("/requests/analytics/dashboard", dashboardCtrl.GetDashboardStats)
		api.GET("/requests/calendar", requestCtrl.Calendar)
		api.GET("/requests/report", reportCtrl.GetRequestRegister)

		api.GET("/requests", requestCtrl.GetRequests)
		api.POST("/requests", requestCtrl.CreateRequest)
		api.GET("/requests/:id", requestCtrl.FindRequest)
		api.PUT("/requests/:id", requestCtrl.UpdateRequest)
		api.DELETE("/requests/:id", requestCtrl.DeleteRequest)
		api.PUT("/requests/:id/stage", requestCtrl.TransitionRequest)
		api.POST("/requests/:id/comments", requestCtrl.AddComment)
	}
}
