package controllers

import (
	"net/http"
	"time"

	"salonsync-backend/docstore"
	"salonsync-backend/models"
	"salonsync-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateMembershipInput struct {
	CustomerID    string  `json:"customerId" binding:"required"`
	Plan          string  `json:"plan"`
	PlanID        string  `json:"planId"`
	StartDate     string  `json:"startDate" binding:"required"`
	EndDate       string  `json:"endDate" binding:"required"`
	Amount        float64 `json:"amount"`
	AdvanceAmount float64 `json:"advanceAmount"`
	TotalBenefits int     `json:"totalBenefits"`
}

type UpdateMembershipInput struct {
	Plan          *string  `json:"plan"`
	StartDate     *string  `json:"startDate"`
	EndDate       *string  `json:"endDate"`
	Amount        *float64 `json:"amount"`
	AdvanceAmount *float64 `json:"advanceAmount"`
	Status        *string  `json:"status"`
}

type RecordUsageInput struct {
	MonthKey     string `json:"monthKey" binding:"required"`
	ServiceTaken string `json:"serviceTaken" binding:"required"`
	UsedDate     string `json:"usedDate"`
	Notes        string `json:"notes"`
}

// membershipStatus derives active/expired from the end date.
func membershipStatus(endDate string, now time.Time) string {
	if len(endDate) >= 10 {
		if parsed, err := time.Parse("2006-01-02", endDate[:10]); err == nil && parsed.Before(utils.BeginningOfDay(now)) {
			return models.MembershipExpired
		}
	}
	return models.MembershipActive
}

// CreateMembership issues a membership to a customer. When a planId is
// given, the plan's name, price and benefit count are copied onto the
// membership; later plan edits never change what was issued.
func (a *API) CreateMembership(c *gin.Context) {
	var input CreateMembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	membership := models.Membership{
		CustomerID:    input.CustomerID,
		Plan:          input.Plan,
		PlanID:        input.PlanID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Amount:        input.Amount,
		AdvanceAmount: input.AdvanceAmount,
		TotalBenefits: input.TotalBenefits,
		Status:        membershipStatus(input.EndDate, time.Now()),
	}

	if customer, ok := a.Store.CustomerByID(input.CustomerID); ok {
		membership.CustomerName = customer.Name
	} else {
		membership.CustomerName = "Unknown"
	}

	if input.PlanID != "" {
		plan, ok := a.Store.MembershipPlanByID(input.PlanID)
		if !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Membership plan not found")
			return
		}
		membership.Plan = plan.Name
		membership.Amount = plan.Price
		membership.TotalBenefits = plan.TotalBenefits
	}

	id := a.Store.AddMembership(c.Request.Context(), membership)
	if id == "" {
		utils.RespondWithError(c, http.StatusBadGateway, "Membership write was not confirmed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (a *API) GetMemberships(c *gin.Context) {
	c.JSON(http.StatusOK, a.Store.Memberships())
}

func (a *API) GetMembership(c *gin.Context) {
	membership, ok := a.Store.MembershipByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Membership not found")
		return
	}
	c.JSON(http.StatusOK, membership)
}

func (a *API) UpdateMembership(c *gin.Context) {
	var input UpdateMembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	patch := docstore.Document{}
	if input.Plan != nil {
		patch["plan"] = *input.Plan
	}
	if input.StartDate != nil {
		patch["startDate"] = *input.StartDate
	}
	if input.EndDate != nil {
		patch["endDate"] = *input.EndDate
		patch["status"] = membershipStatus(*input.EndDate, time.Now())
	}
	if input.Amount != nil {
		patch["amount"] = *input.Amount
	}
	if input.AdvanceAmount != nil {
		patch["advanceAmount"] = *input.AdvanceAmount
	}
	if input.Status != nil {
		if *input.Status != models.MembershipActive && *input.Status != models.MembershipExpired {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid membership status")
			return
		}
		patch["status"] = *input.Status
	}
	if len(patch) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	a.Store.UpdateMembership(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusAccepted, gin.H{"message": "Membership update accepted"})
}

func (a *API) DeleteMembership(c *gin.Context) {
	a.Store.DeleteMembership(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusAccepted, gin.H{"message": "Membership delete accepted"})
}

// RecordMembershipUsage appends a benefit redemption and bumps the used
// counter, never past the issued total.
func (a *API) RecordMembershipUsage(c *gin.Context) {
	var input RecordUsageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	membership, ok := a.Store.MembershipByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Membership not found")
		return
	}
	if membership.TotalBenefits > 0 && membership.UsedBenefits >= membership.TotalBenefits {
		utils.RespondWithError(c, http.StatusConflict, "No benefits remaining on this membership")
		return
	}

	usedDate := input.UsedDate
	if usedDate == "" {
		usedDate = time.Now().Format("2006-01-02")
	}
	usage := append(membership.MonthlyUsage, models.MonthlyUsage{
		MonthKey:     input.MonthKey,
		ServiceTaken: input.ServiceTaken,
		UsedDate:     usedDate,
		Notes:        input.Notes,
	})

	patch := docstore.Document{
		"monthlyUsage": usage,
		"usedBenefits": membership.UsedBenefits + 1,
	}
	a.Store.UpdateMembership(c.Request.Context(), membership.ID, patch)
	c.JSON(http.StatusAccepted, gin.H{"message": "Membership usage accepted"})
}
