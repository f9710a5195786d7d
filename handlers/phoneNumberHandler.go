package handlers

import (
	"ClinicRecords/middlewares"
	"ClinicRecords/models"
	"ClinicRecords/repositories"
	"ClinicRecords/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PhoneNumberHandler struct {
	service *services.PhoneNumberService
}

func NewPhoneNumberHandler(service *services.PhoneNumberService) *PhoneNumberHandler {
	return &PhoneNumberHandler{service: service}
}

type addPhoneNumberRequest struct {
	PhoneNumber string `form:"phone_number" json:"phone_number"`
}

// AddPhoneNumber registers an extra number for a person. Duplicate
// (person, number) pairs are rejected with a conflict status.
func (h *PhoneNumberHandler) AddPhoneNumber(c *gin.Context) {
	personID, err := strconv.ParseUint(c.Param("person_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid person id"})
		return
	}

	var req addPhoneNumberRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if req.PhoneNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "phone_number is required"})
		return
	}

	number := models.PersonPhoneNumber{
		PersonID:    uint(personID),
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.service.Add(c, &number); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPersonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Person not found"})
		case errors.Is(err, repositories.ErrDuplicatePhoneNumber):
			c.JSON(http.StatusConflict, gin.H{"status": "error", "message": "Phone number already exists for this person"})
		default:
			middlewares.HttpError(c, "Failed to add phone number", http.StatusInternalServerError, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Phone number added successfully!"})
}

func (h *PhoneNumberHandler) ListPhoneNumbers(c *gin.Context) {
	personID, err := strconv.ParseUint(c.Param("person_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid person id"})
		return
	}

	numbers, err := h.service.ListByPerson(c, uint(personID))
	if err != nil {
		middlewares.HttpError(c, "Failed to list phone numbers", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": numbers})
}
