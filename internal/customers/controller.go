package customers

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

func (ctrl *Controller) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	customer, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Customer created successfully", customer)
}

func (ctrl *Controller) GetCustomer(c *gin.Context) {
	customer, err := ctrl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Customer retrieved successfully", customer)
}

func (ctrl *Controller) ListCustomers(c *gin.Context) {
	result, err := ctrl.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Customers retrieved successfully", gin.H{
		"customers": result,
		"count":     len(result),
	})
}
