package spots

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campground/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (ctrl *Controller) CreateSpot(c *gin.Context) {
	var req CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	spot, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Spot created successfully", spot)
}

func (ctrl *Controller) UpdateSpot(c *gin.Context) {
	var req UpdateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	spot, err := ctrl.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Spot updated successfully", spot)
}

func (ctrl *Controller) ToggleSpotActive(c *gin.Context) {
	spot, err := ctrl.service.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Spot availability toggled", spot)
}

func (ctrl *Controller) GetSpot(c *gin.Context) {
	spot, err := ctrl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Spot retrieved successfully", spot)
}

func (ctrl *Controller) ListSpots(c *gin.Context) {
	var filters Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	result, err := ctrl.service.List(c.Request.Context(), filters)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Spots retrieved successfully", gin.H{
		"spots": result,
		"count": len(result),
	})
}

// GetFilterOptions serves the cascading filter pipeline used by the
// reservation creation form. Each query parameter narrows the next level.
func (ctrl *Controller) GetFilterOptions(c *gin.Context) {
	var query struct {
		Service       string   `form:"service"`
		VehicleType   string   `form:"vehicleType"`
		VehicleLength *float64 `form:"vehicleLength"`
		Sol           string   `form:"sol"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	var state FilterState
	if query.Service != "" {
		service := ServiceCategory(query.Service)
		state.Service = &service
	}
	if query.VehicleType != "" {
		vt := VehicleType(query.VehicleType)
		state.VehicleType = &vt
	}
	state.VehicleLength = query.VehicleLength
	if query.Sol != "" {
		ground := GroundType(query.Sol)
		state.Ground = &ground
	}

	result, err := ctrl.service.FilterOptions(c.Request.Context(), state)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Filter options retrieved successfully", result)
}
