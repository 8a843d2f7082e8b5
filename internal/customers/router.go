package customers

import "github.com/gin-gonic/gin"

func SetupCustomerRoutes(rg *gin.RouterGroup, controller *Controller) {
	customerRoutes := rg.Group("/customers")
	{
		customerRoutes.GET("", controller.ListCustomers)
		customerRoutes.POST("", controller.CreateCustomer)
		customerRoutes.GET("/:id", controller.GetCustomer)
	}
}
