package dashboard

import "github.com/gin-gonic/gin"

func SetupDashboardRoutes(rg *gin.RouterGroup, controller *Controller) {
	dashboardRoutes := rg.Group("/dashboard")
	{
		dashboardRoutes.GET("/stats", controller.GetStats)
		dashboardRoutes.GET("/arrivals", controller.GetTodayArrivals)
		dashboardRoutes.GET("/departures", controller.GetTodayDepartures)
		dashboardRoutes.GET("/fiscal/:year/:month", controller.GetMonthlySummary)
	}
}
