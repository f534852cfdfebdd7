package middleware

import (
	"net/http"

	"find-your-doctor/internal/models"
	"find-your-doctor/internal/repository"
	"find-your-doctor/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AccessGuard gates mutating routes on account status and role.
// Token claims are only a capability cache: status and role are re-read
// from the users table on every gated request, so an admin revoking a
// user's accept status takes effect immediately, not at token expiry.
type AccessGuard struct {
	userRepo *repository.UserRepository
}

// NewAccessGuard creates the status/role guard middleware
func NewAccessGuard(userRepo *repository.UserRepository) *AccessGuard {
	return &AccessGuard{userRepo: userRepo}
}

// currentUser loads the fresh user row for the authenticated request
func (g *AccessGuard) currentUser(c *gin.Context) (*models.User, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		c.Abort()
		return nil, false
	}

	user, err := g.userRepo.FindUserByID(userID.(uint))
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User account not found")
		c.Abort()
		return nil, false
	}

	// Refresh the context with current values for downstream handlers
	c.Set("role", user.Role)
	c.Set("status", user.Status)

	return user, true
}

// RequireStatus checks the user's current account status.
// Admins bypass the gate through their role.
func (g *AccessGuard) RequireStatus(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := g.currentUser(c)
		if !ok {
			return
		}

		if user.Role != models.RoleAdmin && user.Status != expected {
			utils.ErrorResponse(c, http.StatusForbidden, "Account status does not permit this action")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAccepted is the common gate for create/edit/request routes
func (g *AccessGuard) RequireAccepted() gin.HandlerFunc {
	return g.RequireStatus(models.UserStatusAccept)
}

// RequireAdmin checks the user's current role against the users table
func (g *AccessGuard) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := g.currentUser(c)
		if !ok {
			return
		}

		if user.Role != models.RoleAdmin {
			utils.ErrorResponse(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
