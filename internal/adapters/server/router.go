// Package server exposes a sheet over HTTP using gin.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.trai.ch/grid/internal/core/ports"
)

// APIVersion is the version segment of every API route.
const APIVersion = "v1"

// SetupRouter registers the API routes of controller on a new gin engine.
func SetupRouter(controller *Controller, log ports.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	api := router.Group("/api/" + APIVersion)
	api.GET("/cells", controller.ListCellsAction)
	api.GET("/cells/:cell", controller.GetCellAction)
	api.PUT("/cells/:cell", controller.SetCellAction)
	api.DELETE("/cells/:cell", controller.ClearCellAction)
	api.GET("/print", controller.PrintAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}

func requestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if log == nil {
			return
		}
		log.Info(fmt.Sprintf("%s %s %d %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Microsecond)))
	}
}
