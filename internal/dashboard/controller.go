package dashboard

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campground/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (ctrl *Controller) GetStats(c *gin.Context) {
	stats, err := ctrl.service.Stats(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

func (ctrl *Controller) GetTodayArrivals(c *gin.Context) {
	arrivals, err := ctrl.service.TodayArrivals(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Arrivals retrieved successfully", gin.H{
		"arrivals": arrivals,
		"count":    len(arrivals),
	})
}

func (ctrl *Controller) GetTodayDepartures(c *gin.Context) {
	departures, err := ctrl.service.TodayDepartures(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Departures retrieved successfully", gin.H{
		"departures": departures,
		"count":      len(departures),
	})
}

func (ctrl *Controller) GetMonthlySummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid year", err.Error())
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid month", err.Error())
		return
	}

	summary, err := ctrl.service.MonthlySummary(c.Request.Context(), year, month)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Monthly summary retrieved successfully", summary)
}
