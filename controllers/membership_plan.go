package controllers

import (
	"net/http"

	"salonsync-backend/docstore"
	"salonsync-backend/models"
	"salonsync-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateMembershipPlanInput struct {
	Name          string   `json:"name" binding:"required"`
	Price         *float64 `json:"price" binding:"required"`
	TotalBenefits *int     `json:"totalBenefits" binding:"required"`
}

type UpdateMembershipPlanInput struct {
	Name          *string  `json:"name"`
	Price         *float64 `json:"price"`
	TotalBenefits *int     `json:"totalBenefits"`
}

func (a *API) CreateMembershipPlan(c *gin.Context) {
	var input CreateMembershipPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if *input.Price < 0 || *input.TotalBenefits < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Price and benefits cannot be negative")
		return
	}

	plan := models.MembershipPlan{
		Name:          input.Name,
		Price:         *input.Price,
		TotalBenefits: *input.TotalBenefits,
	}

	id := a.Store.AddMembershipPlan(c.Request.Context(), plan)
	if id == "" {
		utils.RespondWithError(c, http.StatusBadGateway, "Plan write was not confirmed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (a *API) GetMembershipPlans(c *gin.Context) {
	c.JSON(http.StatusOK, a.Store.MembershipPlans())
}

func (a *API) UpdateMembershipPlan(c *gin.Context) {
	var input UpdateMembershipPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	patch := docstore.Document{}
	if input.Name != nil {
		patch["name"] = *input.Name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Price cannot be negative")
			return
		}
		patch["price"] = *input.Price
	}
	if input.TotalBenefits != nil {
		if *input.TotalBenefits < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Benefits cannot be negative")
			return
		}
		patch["totalBenefits"] = *input.TotalBenefits
	}
	if len(patch) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	a.Store.UpdateMembershipPlan(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusAccepted, gin.H{"message": "Plan update accepted"})
}

func (a *API) DeleteMembershipPlan(c *gin.Context) {
	a.Store.DeleteMembershipPlan(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusAccepted, gin.H{"message": "Plan delete accepted"})
}
