package controllers

import (
	"net/http"

	"salonsync-backend/docstore"
	"salonsync-backend/models"
	"salonsync-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name        string `json:"name" binding:"required"`
	Mobile      string `json:"mobile" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Birthday    string `json:"birthday"`
	Anniversary string `json:"anniversary"`
	Reference   string `json:"reference"`
	Services    string `json:"services"`
	Notes       string `json:"notes"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name        *string `json:"name"`
	Mobile      *string `json:"mobile"`
	Date        *string `json:"date"`
	Birthday    *string `json:"birthday"`
	Anniversary *string `json:"anniversary"`
	Reference   *string `json:"reference"`
	Services    *string `json:"services"`
	Notes       *string `json:"notes"`
}

// CreateCustomer adds a new customer
func (a *API) CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateMobile(input.Mobile) {
		utils.RespondWithError(c, http.StatusBadRequest, "Mobile number must be 10 digits")
		return
	}

	customer := models.Customer{
		Name:        input.Name,
		Mobile:      utils.CleanMobile(input.Mobile),
		Date:        input.Date,
		Birthday:    input.Birthday,
		Anniversary: input.Anniversary,
		Reference:   input.Reference,
		Services:    input.Services,
		Notes:       input.Notes,
	}

	id := a.Store.AddCustomer(c.Request.Context(), customer)
	if id == "" {
		utils.RespondWithError(c, http.StatusBadGateway, "Customer write was not confirmed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetCustomers returns the current customer snapshot
func (a *API) GetCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, a.Store.Customers())
}

// GetCustomer returns a single customer by ID
func (a *API) GetCustomer(c *gin.Context) {
	customer, ok := a.Store.CustomerByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer applies a partial update to a customer
func (a *API) UpdateCustomer(c *gin.Context) {
	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	patch := docstore.Document{}
	if input.Name != nil {
		patch["name"] = *input.Name
	}
	if input.Mobile != nil {
		if !utils.ValidateMobile(*input.Mobile) {
			utils.RespondWithError(c, http.StatusBadRequest, "Mobile number must be 10 digits")
			return
		}
		patch["mobile"] = utils.CleanMobile(*input.Mobile)
	}
	if input.Date != nil {
		patch["date"] = *input.Date
	}
	if input.Birthday != nil {
		patch["birthday"] = *input.Birthday
	}
	if input.Anniversary != nil {
		patch["anniversary"] = *input.Anniversary
	}
	if input.Reference != nil {
		patch["reference"] = *input.Reference
	}
	if input.Services != nil {
		patch["services"] = *input.Services
	}
	if input.Notes != nil {
		patch["notes"] = *input.Notes
	}
	if len(patch) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	a.Store.UpdateCustomer(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusAccepted, gin.H{"message": "Customer update accepted"})
}

// DeleteCustomer removes a customer
func (a *API) DeleteCustomer(c *gin.Context) {
	a.Store.DeleteCustomer(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusAccepted, gin.H{"message": "Customer delete accepted"})
}
