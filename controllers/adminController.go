package controllers

import (
	"net/http"

	"janconnect-be/services"
	authUtils "janconnect-be/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	svc *services.Services
}

func NewAdminController(svc *services.Services) *AdminController {
	return &AdminController{svc: svc}
}

func (ac *AdminController) GetDashboard(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	stats, err := ac.svc.Dashboard.Stats(ctx, authUtils.CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (ac *AdminController) AssignIssue(c *gin.Context) {
	var input services.Assignment
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	issue, err := ac.svc.Issues.AssignIssue(ctx, authUtils.CurrentActor(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

func (ac *AdminController) ResolveIssue(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	issue, err := ac.svc.Issues.ResolveIssue(ctx, authUtils.CurrentActor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// CreateTenderFromIssue posts a tender for an issue and hands the issue over
// to tender management
func (ac *AdminController) CreateTenderFromIssue(c *gin.Context) {
	var input services.TenderFromIssueInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	tender, err := ac.svc.Tenders.CreateTenderFromIssue(ctx, authUtils.CurrentActor(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tender)
}

func (ac *AdminController) ListUsers(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	profiles, err := ac.svc.Profiles.ListProfiles(ctx, authUtils.CurrentActor(c), c.Query("user_type"), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (ac *AdminController) UpdateUser(c *gin.Context) {
	var input services.AdminProfileUpdate
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	profile, err := ac.svc.Profiles.AdminUpdateProfile(ctx, authUtils.CurrentActor(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (ac *AdminController) DeleteUser(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ac.svc.Profiles.DeleteUser(ctx, authUtils.CurrentActor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (ac *AdminController) CreateOfficial(c *gin.Context) {
	var input services.OfficialInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	official, err := ac.svc.Officials.CreateOfficial(ctx, authUtils.CurrentActor(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, official)
}

func (ac *AdminController) UpdateOfficial(c *gin.Context) {
	var input struct {
		IsActive bool `json:"is_active"`
	}
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ac.svc.Officials.SetOfficialActive(ctx, authUtils.CurrentActor(c), c.Param("id"), input.IsActive); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Official updated successfully"})
}
