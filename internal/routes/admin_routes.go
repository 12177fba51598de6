package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sais189/travelex/internal/models"
)

func AdminRoutes(r *gin.Engine, deps Dependencies) {
	admin := r.Group("/admin")
	admin.Use(deps.JWT.RequireAuthWithRole(models.RoleAdmin))
	{
		admin.POST("/destinations", deps.Destinations.CreateDestination)
		admin.PUT("/destinations/:id", deps.Destinations.UpdateDestination)
		admin.DELETE("/destinations/:id", deps.Destinations.DeleteDestination)
	}
}
