package auth

import (
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes configures authentication routes. Login is public; the
// rest sit behind the JWT middleware applied by the caller.
func SetupAuthRoutes(public *gin.RouterGroup, protected *gin.RouterGroup, controller *Controller) {
	public.POST("/auth/login", controller.Login)
	protected.POST("/auth/change-password", controller.ChangePassword)
}
