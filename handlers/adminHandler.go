package handlers

import (
	"ClinicRecords/middlewares"
	"ClinicRecords/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	service *services.AdminService
}

func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// CreateTables resets the store to the fixed sample dataset.
func (h *AdminHandler) CreateTables(c *gin.Context) {
	if err := h.service.Initialize(c); err != nil {
		middlewares.HttpError(c, "Failed to initialize database", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Database initialized with sample data!"})
}

// DropTables deletes every row from every table.
func (h *AdminHandler) DropTables(c *gin.Context) {
	if err := h.service.Wipe(c); err != nil {
		middlewares.HttpError(c, "Failed to drop tables", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "All tables dropped successfully!"})
}
