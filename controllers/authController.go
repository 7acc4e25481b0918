package controllers

import (
	"net/http"
	"time"

	"janconnect-be/middlewares"
	"janconnect-be/services"
	authUtils "janconnect-be/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth   *services.AuthService
	domain string
	// production hides reset tokens and marks cookies secure
	production bool
}

func NewAuthController(auth *services.AuthService, domain string, production bool) *AuthController {
	return &AuthController{auth: auth, domain: domain, production: production}
}

// RegisterUser handles user registration
func (ac *AuthController) RegisterUser(c *gin.Context) {
	var input services.SignUpInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	profile, err := ac.auth.SignUp(ctx, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": profile})
}

// LoginUser handles user login
func (ac *AuthController) LoginUser(c *gin.Context) {
	var input services.SignInInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	session, err := ac.auth.SignIn(ctx, input)
	if err != nil {
		respondError(c, err)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.AuthCookie, session.Token, maxAge, "/", ac.domain, ac.production, true)
	c.JSON(http.StatusOK, session)
}

func (ac *AuthController) LogoutUser(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	exp, _ := c.Get(authUtils.ContextExpiry)
	expiresAt, _ := exp.(time.Time)
	if err := ac.auth.SignOut(ctx, c.GetString(authUtils.ContextJTI), expiresAt); err != nil {
		respondError(c, err)
		return
	}
	c.SetCookie(middlewares.AuthCookie, "", -1, "/", ac.domain, ac.production, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetMe returns the profile of the signed-in user
func (ac *AuthController) GetMe(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	profile, err := ac.auth.Session(ctx, authUtils.CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (ac *AuthController) RequestPasswordReset(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	token, err := ac.auth.RequestPasswordReset(ctx, input.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"message": "If the email is registered, a reset link has been sent"}
	if !ac.production && token != "" {
		resp["reset_token"] = token
	}
	c.JSON(http.StatusOK, resp)
}

func (ac *AuthController) ConfirmPasswordReset(c *gin.Context) {
	var input services.ResetPasswordInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ac.auth.ResetPassword(ctx, input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
