package controllers

import (
	"net/http"

	"janconnect-be/services"
	authUtils "janconnect-be/utils"

	"github.com/gin-gonic/gin"
)

type CommunityController struct {
	community *services.CommunityService
}

func NewCommunityController(community *services.CommunityService) *CommunityController {
	return &CommunityController{community: community}
}

func (cc *CommunityController) CreatePost(c *gin.Context) {
	var input services.PostInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := cc.community.CreatePost(ctx, authUtils.CurrentActor(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (cc *CommunityController) GetPosts(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	posts, err := cc.community.ListPosts(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// SubmitFeedback accepts feedback from signed-in and anonymous users
func (cc *CommunityController) SubmitFeedback(c *gin.Context) {
	var input services.FeedbackInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	fb, err := cc.community.SubmitFeedback(ctx, authUtils.CurrentActor(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}

func (cc *CommunityController) GetMyFeedback(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := cc.community.MyFeedback(ctx, authUtils.CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (cc *CommunityController) GetNotifications(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := cc.community.MyNotifications(ctx, authUtils.CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (cc *CommunityController) MarkNotificationRead(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := cc.community.MarkNotificationRead(ctx, authUtils.CurrentActor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
