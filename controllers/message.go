package controllers

import (
	"net/http"

	"salonsync-backend/utils"

	"github.com/gin-gonic/gin"
)

type SendMessagesInput struct {
	TemplateID  string   `json:"templateId" binding:"required"`
	CustomerIDs []string `json:"customerIds" binding:"required"`
}

// SendMessages runs a bulk outreach campaign: one template, personalized
// per customer. Individual delivery failures are counted, not surfaced.
func (a *API) SendMessages(c *gin.Context) {
	var input SendMessagesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if len(input.CustomerIDs) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "No customers selected")
		return
	}
	if _, ok := a.Store.TemplateByID(input.TemplateID); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Template not found")
		return
	}

	sent, failed := a.Outreach.SendBulk(c.Request.Context(), input.TemplateID, input.CustomerIDs)
	c.JSON(http.StatusOK, gin.H{"sent": sent, "failed": failed})
}
