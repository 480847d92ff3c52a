package controllers

import (
	"net/http"

	"salonsync-backend/docstore"
	"salonsync-backend/models"
	"salonsync-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateTemplateInput struct {
	Name     string `json:"name" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

type UpdateTemplateInput struct {
	Name     *string `json:"name"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	ImageURL *string `json:"imageUrl"`
}

func validTemplateCategory(category string) bool {
	switch category {
	case models.TemplateCategorySale, models.TemplateCategoryDiscount,
		models.TemplateCategoryFestival, models.TemplateCategoryGeneral:
		return true
	}
	return false
}

func (a *API) CreateTemplate(c *gin.Context) {
	var input CreateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !validTemplateCategory(input.Category) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid template category")
		return
	}

	template := models.MessageTemplate{
		Name:     input.Name,
		Content:  input.Content,
		Category: input.Category,
		ImageURL: input.ImageURL,
	}

	id := a.Store.AddTemplate(c.Request.Context(), template)
	if id == "" {
		utils.RespondWithError(c, http.StatusBadGateway, "Template write was not confirmed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (a *API) GetTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, a.Store.Templates())
}

func (a *API) UpdateTemplate(c *gin.Context) {
	var input UpdateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	patch := docstore.Document{}
	if input.Name != nil {
		patch["name"] = *input.Name
	}
	if input.Content != nil {
		patch["content"] = *input.Content
	}
	if input.Category != nil {
		if !validTemplateCategory(*input.Category) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid template category")
			return
		}
		patch["category"] = *input.Category
	}
	if input.ImageURL != nil {
		patch["imageUrl"] = *input.ImageURL
	}
	if len(patch) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	a.Store.UpdateTemplate(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusAccepted, gin.H{"message": "Template update accepted"})
}

func (a *API) DeleteTemplate(c *gin.Context) {
	a.Store.DeleteTemplate(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusAccepted, gin.H{"message": "Template delete accepted"})
}
