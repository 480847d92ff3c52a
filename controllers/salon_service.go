package controllers

import (
	"net/http"

	"salonsync-backend/docstore"
	"salonsync-backend/models"
	"salonsync-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateServiceInput struct {
	Name     string   `json:"name" binding:"required"`
	Price    *float64 `json:"price" binding:"required"`
	Category string   `json:"category" binding:"required"`
}

type UpdateServiceInput struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
}

func (a *API) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if *input.Price < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Price cannot be negative")
		return
	}

	service := models.SalonService{
		Name:     input.Name,
		Price:    *input.Price,
		Category: input.Category,
	}

	id := a.Store.AddSalonService(c.Request.Context(), service)
	if id == "" {
		utils.RespondWithError(c, http.StatusBadGateway, "Service write was not confirmed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (a *API) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, a.Store.SalonServices())
}

func (a *API) UpdateService(c *gin.Context) {
	var input UpdateServiceInput
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
	if input.Category != nil {
		patch["category"] = *input.Category
	}
	if len(patch) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	a.Store.UpdateSalonService(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusAccepted, gin.H{"message": "Service update accepted"})
}

func (a *API) DeleteService(c *gin.Context) {
	a.Store.DeleteSalonService(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusAccepted, gin.H{"message": "Service delete accepted"})
}
