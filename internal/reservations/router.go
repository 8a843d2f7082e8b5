package reservations

import "github.com/gin-gonic/gin"

func SetupReservationRoutes(rg *gin.RouterGroup, controller *Controller) {
	reservationRoutes := rg.Group("/reservations")
	{
		reservationRoutes.GET("", controller.ListReservations)
		reservationRoutes.POST("", controller.CreateReservation)
		reservationRoutes.GET("/:id", controller.GetReservation)
		reservationRoutes.PUT("/:id", controller.UpdateReservation)
		reservationRoutes.PATCH("/:id/dates", controller.UpdateDates)
		reservationRoutes.PATCH("/:id/spot", controller.ReassignSpot)
		reservationRoutes.PATCH("/:id/status", controller.UpdateStatus)
		reservationRoutes.POST("/:id/confirm", controller.ConfirmReservation)
		reservationRoutes.POST("/:id/hold", controller.HoldReservation)
		reservationRoutes.POST("/:id/notes", controller.AddNote)
	}
}
