package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	events := rg.Group("/events")
	{
		events.POST("/resolve", h.Resolve)
		events.POST("", h.Create)
	}
}
