package middlewares

import (
	"context"
	"log"
	"net/http"
	"strings"

	"janconnect-be/models"
	authUtils "janconnect-be/utils"

	"github.com/gin-gonic/gin"
)

// AuthCookie is the cookie a browser session token may travel in.
const AuthCookie = "auth_token"

// TokenVerifier checks a session token, including sign-out.
type TokenVerifier interface {
	Authenticate(ctx context.Context, token string) (*authUtils.Claims, error)
}

func tokenFromRequest(c *gin.Context) string {
	authHeader := c.Request.Header.Get("Authorization")
	if authHeader != "" {
		// Extracting token from "Bearer <token>" format
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(AuthCookie); err == nil {
		return cookie
	}
	return ""
}

func setClaims(c *gin.Context, claims *authUtils.Claims) {
	c.Set(authUtils.ContextUserID, claims.UserID)
	c.Set(authUtils.ContextUserType, claims.UserType)
	c.Set(authUtils.ContextJTI, claims.JTI)
	c.Set(authUtils.ContextExpiry, claims.ExpiresAt)
}

// AuthMiddleware rejects requests without a valid session token.
func AuthMiddleware(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		claims, err := v.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and lets
// anonymous requests through.
func OptionalAuth(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := tokenFromRequest(c); tokenString != "" {
			if claims, err := v.Authenticate(c.Request.Context(), tokenString); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(types ...models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := authUtils.CurrentActor(c)
		for _, t := range types {
			if actor.UserType == t {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
		c.Abort()
	}
}
