package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runCategoryRouter(api *echo.Group, categoryCtrl *controllers.CategoryController) {
	{
		api.GET("/categories", categoryCtrl.GetCategories)
		api.POST("/categories", categoryCtrl.CreateCategory)
		api.GET("/categories/:id", categoryCtrl.FindCategory)
		api.PUT("/categories/:id", categoryCtrl.UpdateCategory)
		api.DELETE("/categories/:id", categoryCtrl.DeleteCategory)
	}
}
