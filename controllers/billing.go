package controllers

import (
	"net/http"

	"salonsync-backend/docstore"
	"salonsync-backend/models"
	"salonsync-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateBillingInput struct {
	CustomerID    string   `json:"customerId" binding:"required"`
	Service       string   `json:"service" binding:"required"`
	Services      []string `json:"services"`
	Amount        float64  `json:"amount" binding:"required"`
	Discount      float64  `json:"discount"`
	Date          string   `json:"date" binding:"required"`
	Notes         string   `json:"notes"`
	PaymentMethod string   `json:"paymentMethod"`
}

type UpdateBillingInput struct {
	Service       *string   `json:"service"`
	Services      *[]string `json:"services"`
	Amount        *float64  `json:"amount"`
	Discount      *float64  `json:"discount"`
	Date          *string   `json:"date"`
	Notes         *string   `json:"notes"`
	PaymentMethod *string   `json:"paymentMethod"`
}

func validPaymentMethod(method string) bool {
	switch method {
	case "", models.PaymentCash, models.PaymentUPI, models.PaymentCard,
		models.PaymentBankTransfer, models.PaymentOther:
		return true
	}
	return false
}

// CreateBilling raises a bill against a customer. The customer name is
// snapshotted at billing time; an unknown customer id is tolerated and
// recorded as "Unknown".
func (a *API) CreateBilling(c *gin.Context) {
	var input CreateBillingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Discount < 0 || input.Discount > 100 {
		utils.RespondWithError(c, http.StatusBadRequest, "Discount must be between 0 and 100")
		return
	}
	if !validPaymentMethod(input.PaymentMethod) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment method")
		return
	}

	customerName := "Unknown"
	if customer, ok := a.Store.CustomerByID(input.CustomerID); ok {
		customerName = customer.Name
	}

	billing := models.Billing{
		CustomerID:    input.CustomerID,
		CustomerName:  customerName,
		Service:       input.Service,
		Services:      input.Services,
		Amount:        input.Amount,
		Discount:      input.Discount,
		FinalAmount:   models.FinalAmountFor(input.Amount, input.Discount),
		Date:          input.Date,
		Notes:         input.Notes,
		PaymentMethod: input.PaymentMethod,
	}

	id := a.Store.AddBilling(c.Request.Context(), billing)
	if id == "" {
		utils.RespondWithError(c, http.StatusBadGateway, "Billing write was not confirmed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (a *API) GetBillings(c *gin.Context) {
	c.JSON(http.StatusOK, a.Store.Billings())
}

// UpdateBilling applies a partial update, recomputing finalAmount when
// amount or discount change. The previous values come from the current
// snapshot, which may trail the store by one round-trip.
func (a *API) UpdateBilling(c *gin.Context) {
	var input UpdateBillingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	patch := docstore.Document{}
	if input.Service != nil {
		patch["service"] = *input.Service
	}
	if input.Services != nil {
		patch["services"] = *input.Services
	}
	if input.Amount != nil {
		patch["amount"] = *input.Amount
	}
	if input.Discount != nil {
		if *input.Discount < 0 || *input.Discount > 100 {
			utils.RespondWithError(c, http.StatusBadRequest, "Discount must be between 0 and 100")
			return
		}
		patch["discount"] = *input.Discount
	}
	if input.Date != nil {
		patch["date"] = *input.Date
	}
	if input.Notes != nil {
		patch["notes"] = *input.Notes
	}
	if input.PaymentMethod != nil {
		if !validPaymentMethod(*input.PaymentMethod) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment method")
			return
		}
		patch["paymentMethod"] = *input.PaymentMethod
	}
	if len(patch) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	if input.Amount != nil || input.Discount != nil {
		amount, discount := 0.0, 0.0
		if existing, ok := a.Store.BillingByID(c.Param("id")); ok {
			amount, discount = existing.Amount, existing.Discount
		}
		if input.Amount != nil {
			amount = *input.Amount
		}
		if input.Discount != nil {
			discount = *input.Discount
		}
		patch["finalAmount"] = models.FinalAmountFor(amount, discount)
	}

	a.Store.UpdateBilling(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusAccepted, gin.H{"message": "Billing update accepted"})
}

func (a *API) DeleteBilling(c *gin.Context) {
	a.Store.DeleteBilling(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusAccepted, gin.H{"message": "Billing delete accepted"})
}
