package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v1 "github.com/stagebill/stagebill/internal/api/v1"
	"github.com/stagebill/stagebill/internal/rest/middleware"
)

// Handlers groups the API handlers wired into the router.
type Handlers struct {
	Statement *v1.StatementHandler
	Play      *v1.PlayHandler
}

func SetupRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	group := router.Group("/v1")
	group.POST("/statements", handlers.Statement.CreateStatement)
	group.GET("/plays", handlers.Play.ListPlays)
	group.GET("/plays/:id", handlers.Play.GetPlay)

	return router
}
