package routes

import (
	"github.com/gin-gonic/gin"
)

func WebSocketRoutes(r *gin.Engine, deps Dependencies) {
	wsRoutes := r.Group("/ws")
	{
		wsRoutes.GET("/search", deps.Search.HandleSearchWebSocket)
	}
}
