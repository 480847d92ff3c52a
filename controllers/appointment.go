package controllers

import (
	"net/http"

	"salonsync-backend/docstore"
	"salonsync-backend/models"
	"salonsync-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateAppointmentInput struct {
	CustomerID string `json:"customerId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Service    string `json:"service" binding:"required"`
	Notes      string `json:"notes"`
}

type UpdateAppointmentInput struct {
	Date    *string `json:"date"`
	Time    *string `json:"time"`
	Service *string `json:"service"`
	Status  *string `json:"status"`
	Notes   *string `json:"notes"`
}

func validAppointmentStatus(status string) bool {
	switch status {
	case models.AppointmentScheduled, models.AppointmentCompleted, models.AppointmentCancelled:
		return true
	}
	return false
}

func (a *API) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customerName := "Unknown"
	if customer, ok := a.Store.CustomerByID(input.CustomerID); ok {
		customerName = customer.Name
	}

	appointment := models.Appointment{
		CustomerID:   input.CustomerID,
		CustomerName: customerName,
		Date:         input.Date,
		Time:         input.Time,
		Service:      input.Service,
		Status:       models.AppointmentScheduled,
		Notes:        input.Notes,
	}

	id := a.Store.AddAppointment(c.Request.Context(), appointment)
	if id == "" {
		utils.RespondWithError(c, http.StatusBadGateway, "Appointment write was not confirmed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (a *API) GetAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, a.Store.Appointments())
}

func (a *API) UpdateAppointment(c *gin.Context) {
	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	patch := docstore.Document{}
	if input.Date != nil {
		patch["date"] = *input.Date
	}
	if input.Time != nil {
		patch["time"] = *input.Time
	}
	if input.Service != nil {
		patch["service"] = *input.Service
	}
	if input.Status != nil {
		if !validAppointmentStatus(*input.Status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment status")
			return
		}
		patch["status"] = *input.Status
	}
	if input.Notes != nil {
		patch["notes"] = *input.Notes
	}
	if len(patch) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	a.Store.UpdateAppointment(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusAccepted, gin.H{"message": "Appointment update accepted"})
}

func (a *API) DeleteAppointment(c *gin.Context) {
	a.Store.DeleteAppointment(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusAccepted, gin.H{"message": "Appointment delete accepted"})
}
