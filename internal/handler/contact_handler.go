package handler

import (
	"net/http"

	"find-your-doctor/internal/service"
	"find-your-doctor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

type ContactRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactInfo string `json:"contact_info" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

// SubmitReport records a message from the public contact form
func (h *ContactHandler) SubmitReport(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	report, err := h.contactService.SubmitReport(req.Name, req.ContactInfo, req.Message)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to submit report")
		return
	}

	utils.SuccessResponse(c, report)
}

// ListReports returns all contact reports, newest first
func (h *ContactHandler) ListReports(c *gin.Context) {
	reports, err := h.contactService.ListReports()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve reports")
		return
	}

	utils.SuccessResponse(c, reports)
}
