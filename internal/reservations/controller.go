package reservations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campground/internal/shared/utils/response"
	"campground/pkg/logger"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (ctrl *Controller) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	reservation, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	logger.GetDefault().LogReservationCreated(c.Request.Context(), reservation.ID.String(), reservation.SpotID.String(), reservation.CustomerID.String())
	response.Success(c, http.StatusCreated, "Reservation created successfully", reservation)
}

func (ctrl *Controller) GetReservation(c *gin.Context) {
	reservation, err := ctrl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Reservation retrieved successfully", reservation)
}

func (ctrl *Controller) ListReservations(c *gin.Context) {
	var filters ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	result, err := ctrl.service.GetAll(c.Request.Context(), filters)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Reservations retrieved successfully", gin.H{
		"reservations": result,
		"count":        len(result),
	})
}

func (ctrl *Controller) UpdateReservation(c *gin.Context) {
	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	reservation, err := ctrl.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Reservation updated successfully", reservation)
}

func (ctrl *Controller) UpdateDates(c *gin.Context) {
	var req UpdateDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	reservation, err := ctrl.service.UpdateDates(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Reservation dates updated successfully", reservation)
}

func (ctrl *Controller) ReassignSpot(c *gin.Context) {
	var req ReassignSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	reservation, err := ctrl.service.ReassignSpot(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Reservation spot updated successfully", reservation)
}

func (ctrl *Controller) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	reservation, err := ctrl.service.UpdateStatus(c.Request.Context(), c.Param("id"), Status(req.Status))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Reservation status updated successfully", reservation)
}

func (ctrl *Controller) ConfirmReservation(c *gin.Context) {
	reservation, err := ctrl.service.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Reservation confirmed successfully", reservation)
}

func (ctrl *Controller) HoldReservation(c *gin.Context) {
	reservation, err := ctrl.service.Hold(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Reservation placed on hold successfully", reservation)
}

func (ctrl *Controller) AddNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	author, _ := c.Get("user_email")
	authorEmail, _ := author.(string)

	reservation, err := ctrl.service.AddNote(c.Request.Context(), c.Param("id"), req.Text, authorEmail)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Note added successfully", reservation)
}
