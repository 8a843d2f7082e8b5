package settings

import "github.com/gin-gonic/gin"

func SetupSettingsRoutes(rg *gin.RouterGroup, controller *Controller) {
	settingsRoutes := rg.Group("/settings")
	{
		settingsRoutes.GET("", controller.GetSettings)
		settingsRoutes.PUT("", controller.SaveSettings)
	}
}
