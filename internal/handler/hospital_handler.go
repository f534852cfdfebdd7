package handler

import (
	"errors"
	"net/http"
	"strconv"

	"find-your-doctor/internal/models"
	"find-your-doctor/internal/repository"
	"find-your-doctor/internal/service"
	"find-your-doctor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService    *service.HospitalService
	affiliationService *service.AffiliationService
}

func NewHospitalHandler(
	hospitalService *service.HospitalService,
	affiliationService *service.AffiliationService,
) *HospitalHandler {
	return &HospitalHandler{
		hospitalService:    hospitalService,
		affiliationService: affiliationService,
	}
}

// ListHospitals retrieves one page of hospitals matching the search and
// geo filters
func (h *HospitalHandler) ListHospitals(c *gin.Context) {
	result, err := h.hospitalService.ListHospitals(parseListFilter(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospitals")
		return
	}

	utils.SuccessResponse(c, result)
}

// GetHospital retrieves a specific hospital by ID
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalService.GetHospitalByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospital")
		}
		return
	}

	utils.SuccessResponse(c, hospital)
}

type CreateHospitalRequest struct {
	Name            string   `json:"name" binding:"required"`
	AreaID          uint     `json:"area_id" binding:"required"`
	Summary         string   `json:"summary"`
	EmergencyStatus bool     `json:"emergency_status"`
	Address         string   `json:"address"`
	ContactEmail    string   `json:"contact_email" binding:"omitempty,email"`
	Website         string   `json:"website"`
	IsPrivate       bool     `json:"is_private"`
	ImageURL        string   `json:"image_url"`
	PhoneNumbers    []string `json:"phone_numbers"`
	Facilities      []string `json:"facilities"`
}

// CreateHospital creates a hospital. Admin creations go live immediately;
// manager creations enter the pending moderation queue.
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var req CreateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	hospital := models.Hospital{
		Name:            req.Name,
		AreaID:          req.AreaID,
		Summary:         req.Summary,
		EmergencyStatus: req.EmergencyStatus,
		Address:         req.Address,
		ContactEmail:    req.ContactEmail,
		Website:         req.Website,
		IsPrivate:       req.IsPrivate,
		ImageURL:        req.ImageURL,
	}

	err := h.hospitalService.CreateHospital(&hospital, req.PhoneNumbers, req.Facilities, userID.(uint), role.(string))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateHospital),
			errors.Is(err, repository.ErrPendingRequestExists),
			errors.Is(err, repository.ErrAreaNotFound):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create hospital")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Hospital created successfully",
		"hospital": hospital,
	})
}

// UpdateHospital saves a hospital edit. Phones and facilities are
// replaced with the submitted sets.
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	var req CreateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	hospital := models.Hospital{
		ID:              uint(id),
		Name:            req.Name,
		AreaID:          req.AreaID,
		Summary:         req.Summary,
		EmergencyStatus: req.EmergencyStatus,
		Address:         req.Address,
		ContactEmail:    req.ContactEmail,
		Website:         req.Website,
		IsPrivate:       req.IsPrivate,
		ImageURL:        req.ImageURL,
	}

	if err := h.hospitalService.UpdateHospital(&hospital, req.PhoneNumbers, req.Facilities); err != nil {
		switch {
		case errors.Is(err, repository.ErrHospitalNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, repository.ErrAreaNotFound):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update hospital")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Hospital updated successfully",
		"hospital": hospital,
	})
}

type AffiliationRequestBody struct {
	RequestMessage          string `json:"request_message"`
	PrivacyPolicyAgreement  bool   `json:"privacy_policy_agreement"`
	TermsOfServiceAgreement bool   `json:"terms_of_service_agreement"`
}

// RequestAffiliation submits the caller's claim to manage a hospital
func (h *HospitalHandler) RequestAffiliation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	var req AffiliationRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	request, err := h.affiliationService.CreateRequest(service.RequestInput{
		HospitalID:              uint(id),
		UserID:                  userID.(uint),
		Role:                    role.(string),
		RequestMessage:          req.RequestMessage,
		PrivacyPolicyAgreement:  req.PrivacyPolicyAgreement,
		TermsOfServiceAgreement: req.TermsOfServiceAgreement,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminsCannotRequest):
			utils.ErrorResponse(c, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrAgreementsRequired):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrHospitalNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, repository.ErrPendingRequestExists):
			utils.ErrorResponse(c, http.StatusBadRequest, "You already have a pending request. Please wait for it to be processed before making another request.")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to send request")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Request sent successfully",
		"request": request,
	})
}

// ListRequests retrieves all affiliation requests (admin only)
func (h *HospitalHandler) ListRequests(c *gin.Context) {
	requests, err := h.affiliationService.ListRequests()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"requests": requests,
		"count":    len(requests),
	})
}

// decideRequest handles the shared accept/reject plumbing
func (h *HospitalHandler) decideRequest(c *gin.Context, decide func(uint) error, message string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	if err := decide(uint(id)); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update request")
		}
		return
	}

	utils.MessageResponse(c, message)
}

// AcceptRequest marks an affiliation request accepted (admin only)
func (h *HospitalHandler) AcceptRequest(c *gin.Context) {
	h.decideRequest(c, h.affiliationService.AcceptRequest, "Request accepted")
}

// RejectRequest marks an affiliation request rejected (admin only)
func (h *HospitalHandler) RejectRequest(c *gin.Context) {
	h.decideRequest(c, h.affiliationService.RejectRequest, "Request rejected")
}

// ListPendingHospitals retrieves hospitals awaiting moderation (admin only)
func (h *HospitalHandler) ListPendingHospitals(c *gin.Context) {
	hospitals, err := h.hospitalService.ListPendingHospitals()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch pending hospitals")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// decideHospital handles the shared approve/reject plumbing
func (h *HospitalHandler) decideHospital(c *gin.Context, decide func(uint) error, message string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	if err := decide(uint(id)); err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update hospital")
		}
		return
	}

	utils.MessageResponse(c, message)
}

// ApproveHospital activates a pending hospital (admin only)
func (h *HospitalHandler) ApproveHospital(c *gin.Context) {
	h.decideHospital(c, h.hospitalService.ApproveHospital, "Hospital approved")
}

// RejectHospital deactivates a pending hospital (admin only)
func (h *HospitalHandler) RejectHospital(c *gin.Context) {
	h.decideHospital(c, h.hospitalService.RejectHospital, "Hospital rejected")
}
