package controllers

import (
	"net/http"

	"janconnect-be/services"
	authUtils "janconnect-be/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	profiles    *services.ProfileService
	leaderboard *services.LeaderboardService
	officials   *services.OfficialService
}

func NewUserController(profiles *services.ProfileService, leaderboard *services.LeaderboardService, officials *services.OfficialService) *UserController {
	return &UserController{profiles: profiles, leaderboard: leaderboard, officials: officials}
}

func (uc *UserController) GetLeaderboard(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	entries, err := uc.leaderboard.Leaderboard(ctx, c.Query("period"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (uc *UserController) GetProfile(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	profile, err := uc.profiles.GetProfile(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (uc *UserController) UpdateMyProfile(c *gin.Context) {
	var patch services.ProfilePatch
	if !bindJSON(c, &patch) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	profile, err := uc.profiles.UpdateMyProfile(ctx, authUtils.CurrentActor(c), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (uc *UserController) GetOfficials(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	officials, err := uc.officials.ListOfficials(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, officials)
}
