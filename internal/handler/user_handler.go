package handler

import (
	"errors"
	"net/http"
	"strconv"

	"find-your-doctor/internal/repository"
	"find-your-doctor/internal/service"
	"find-your-doctor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile returns the authenticated user's own record
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.GetUserByID(userID.(uint))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "User not found")
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve profile")
		}
		return
	}

	utils.SuccessResponse(c, user)
}

// ListUsers returns all registered accounts, newest first
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	utils.SuccessResponse(c, users)
}

// GetUser returns a single account by id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUserByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "User not found")
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve user")
		}
		return
	}

	utils.SuccessResponse(c, user)
}

type UserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending accept reject"`
}

// SetUserStatus moves an account between pending, accept and reject
func (h *UserHandler) SetUserStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req UserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.userService.SetUserStatus(uint(id), req.Status); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrInvalidUserStatus):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update user status")
		}
		return
	}

	utils.MessageResponse(c, "User status updated successfully")
}
