package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"find-your-doctor/internal/models"
	"find-your-doctor/internal/repository"
	"find-your-doctor/internal/service"
	"find-your-doctor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

// ListDoctors retrieves one page of doctors matching the search and geo
// filters
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	result, err := h.doctorService.ListDoctors(parseListFilter(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, result)
}

// GetDoctor retrieves a specific doctor by ID
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorService.GetDoctorByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctor")
		}
		return
	}

	utils.SuccessResponse(c, doctor)
}

type CertificationInput struct {
	Title               string     `json:"title" binding:"required"`
	DegreeLevel         string     `json:"degree_level" binding:"required"`
	AwardingInstitution string     `json:"awarding_institution" binding:"required"`
	AwardedDate         *time.Time `json:"awarded_date"`
}

type DoctorRequest struct {
	FirstName      string               `json:"first_name" binding:"required"`
	LastName       string               `json:"last_name" binding:"required"`
	Title          string               `json:"title"`
	Bio            string               `json:"bio"`
	ImageURL       string               `json:"image_url"`
	HospitalIDs    []uint               `json:"hospital_ids"`
	Certifications []CertificationInput `json:"certifications" binding:"dive"`
}

func (req *DoctorRequest) certifications() []models.DoctorCertification {
	certifications := make([]models.DoctorCertification, 0, len(req.Certifications))
	for _, in := range req.Certifications {
		certifications = append(certifications, models.DoctorCertification{
			Title:               in.Title,
			DegreeLevel:         in.DegreeLevel,
			AwardingInstitution: in.AwardingInstitution,
			AwardedDate:         in.AwardedDate,
		})
	}
	return certifications
}

// CreateDoctor creates a doctor with certifications and hospital links
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doctor := models.Doctor{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Title:     req.Title,
		Bio:       req.Bio,
		ImageURL:  req.ImageURL,
	}

	if err := h.doctorService.CreateDoctor(&doctor, req.certifications(), req.HospitalIDs); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create doctor")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Doctor created successfully",
		"doctor":  doctor,
	})
}

// UpdateDoctor saves a doctor edit. Certifications and hospital links are
// replaced with the submitted sets.
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	var req DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doctor := models.Doctor{
		ID:        uint(id),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Title:     req.Title,
		Bio:       req.Bio,
		ImageURL:  req.ImageURL,
	}

	if err := h.doctorService.UpdateDoctor(&doctor, req.certifications(), req.HospitalIDs); err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update doctor")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Doctor updated successfully",
		"doctor":  doctor,
	})
}
