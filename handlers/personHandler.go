package handlers

import (
	"ClinicRecords/middlewares"
	"ClinicRecords/models"
	"ClinicRecords/repositories"
	"ClinicRecords/services"
	"ClinicRecords/utils"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PersonHandler struct {
	service *services.PersonService
}

func NewPersonHandler(service *services.PersonService) *PersonHandler {
	return &PersonHandler{service: service}
}

type addPersonRequest struct {
	FirstName   string `form:"first_name" json:"first_name"`
	LastName    string `form:"last_name" json:"last_name"`
	Email       string `form:"email" json:"email"`
	PhoneNumber string `form:"phone_number" json:"phone_number"`
}

// Index reports whether the store holds any person rows yet.
func (h *PersonHandler) Index(c *gin.Context) {
	initialized, err := h.service.AnyExists(c)
	if err != nil {
		middlewares.HttpError(c, "Failed to check database state", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"initialized": initialized})
}

// AddPerson creates a person from form-style input. The phone number, if
// supplied, lands on the person row only.
func (h *PersonHandler) AddPerson(c *gin.Context) {
	var req addPersonRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if err := utils.ValidatePersonInput(req.FirstName, req.LastName); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	person := models.Person{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.service.Create(c, &person); err != nil {
		middlewares.HttpError(c, "Failed to add person", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Person added successfully!"})
}

// DeletePerson removes a person and every transitively dependent row. A
// missing person is reported as not found, distinct from storage faults.
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("person_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid person id"})
		return
	}

	if err := h.service.DeletePersonAndRelated(c, uint(id)); err != nil {
		if errors.Is(err, repositories.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Person not found"})
			return
		}
		middlewares.HttpError(c, "Failed to delete person", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Person deleted successfully!"})
}
