package routes

import (
	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine, deps Dependencies) {
	auth := r.Group("/auth")
	auth.Use(deps.LoginLimiter.Limit())
	{
		auth.POST("/login", deps.Auth.LoginUser)
	}
}
