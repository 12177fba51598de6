package routes

import (
	"github.com/gin-gonic/gin"
)

func APIRoutes(r *gin.Engine, deps Dependencies) {
	api := r.Group("/api")
	{
		api.GET("/destinations", deps.Destinations.ListDestinations)
		api.GET("/destinations/:id", deps.Destinations.GetDestination)
	}
}
