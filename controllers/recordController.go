package controllers

import (
	"ClinicRecords/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRecordRoutes registers the record-keeping endpoints. Mutating
// operations are POST-only; other methods fall through to the method-not-
// allowed response registered in SetupRootRoutes.
func SetupRecordRoutes(router *gin.Engine, personHandler *handlers.PersonHandler, phoneNumberHandler *handlers.PhoneNumberHandler, queryHandler *handlers.QueryHandler, adminHandler *handlers.AdminHandler) {
	router.POST("/create-tables", adminHandler.CreateTables)
	router.POST("/drop-tables", adminHandler.DropTables)

	router.GET("/query-tables", queryHandler.QueryTables)
	router.GET("/manage", queryHandler.ManageRecords)

	router.POST("/add-person", personHandler.AddPerson)
	router.POST("/delete-person/:person_id", personHandler.DeletePerson)

	router.POST("/persons/:person_id/phone-numbers", phoneNumberHandler.AddPhoneNumber)
	router.GET("/persons/:person_id/phone-numbers", phoneNumberHandler.ListPhoneNumbers)
}
