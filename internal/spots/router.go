package spots

import "github.com/gin-gonic/gin"

func SetupSpotRoutes(rg *gin.RouterGroup, controller *Controller) {
	spotRoutes := rg.Group("/spots")
	{
		spotRoutes.GET("", controller.ListSpots)
		spotRoutes.POST("", controller.CreateSpot)
		spotRoutes.GET("/filter-options", controller.GetFilterOptions)
		spotRoutes.GET("/:id", controller.GetSpot)
		spotRoutes.PUT("/:id", controller.UpdateSpot)
		spotRoutes.PATCH("/:id/toggle-active", controller.ToggleSpotActive)
	}
}
