package handlers

import (
	"ClinicRecords/middlewares"
	"ClinicRecords/repositories"
	"ClinicRecords/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QueryHandler struct {
	service *services.QueryService
}

func NewQueryHandler(service *services.QueryService) *QueryHandler {
	return &QueryHandler{service: service}
}

// QueryTables runs the filtered read for a selector. The selector defaults
// to "person" and the search term to empty, matching the management page's
// initial view.
func (h *QueryHandler) QueryTables(c *gin.Context) {
	table := c.DefaultQuery("table", "person")
	search := c.DefaultQuery("search", "")

	rows, err := h.service.Search(c, table, search)
	if err != nil {
		middlewares.HttpError(c, "Failed to query table", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"data": rows}, http.StatusOK)
}

// ManageRecords exposes the management surface: the selectors a client may
// query or mutate.
func (h *QueryHandler) ManageRecords(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tables": repositories.TableSelectors()})
}
