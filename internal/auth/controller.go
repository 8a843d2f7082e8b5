package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"campground/internal/shared/utils/response"
	"campground/pkg/logger"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// Login handles POST /api/admin/auth/login
func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	resp, err := c.service.Login(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			logger.GetDefault().LogAuthFailure(ctx.Request.Context(), "invalid credentials", ctx.ClientIP())
			response.Error(ctx, http.StatusUnauthorized, "invalid email or password", nil)
			return
		}
		response.FromError(ctx, err)
		return
	}

	logger.GetDefault().LogAuthSuccess(ctx.Request.Context(), resp.User.ID)
	response.Success(ctx, http.StatusOK, "logged in", resp)
}

// ChangePassword handles POST /api/admin/auth/change-password
func (c *Controller) ChangePassword(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	if userID == "" {
		response.Error(ctx, http.StatusUnauthorized, "not authenticated", nil)
		return
	}

	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := c.service.ChangePassword(ctx.Request.Context(), userID, &req); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(ctx, http.StatusUnauthorized, "current password is incorrect", nil)
			return
		}
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "password changed", nil)
}
