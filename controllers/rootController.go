package controllers

import (
	"ClinicRecords/handlers"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRootRoutes wires the index endpoint and the fallback responses. A
// call to a mutating route with the wrong method reports an error envelope
// and performs no side effects.
func SetupRootRoutes(router *gin.Engine, personHandler *handlers.PersonHandler) {
	router.GET("/", personHandler.Index)

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"status": "error", "message": "Invalid request method"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Route not found"})
	})
}
