package authUtils

import (
	"janconnect-be/models"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextUserID   = "user_id"
	ContextUserType = "user_type"
	ContextJTI      = "jti"
	ContextExpiry   = "exp"
)

// CurrentActor returns the caller set by the auth middleware, or the zero
// Actor for anonymous requests.
func CurrentActor(c *gin.Context) models.Actor {
	return models.Actor{
		UserID:   c.GetString(ContextUserID),
		UserType: models.UserType(c.GetString(ContextUserType)),
	}
}
