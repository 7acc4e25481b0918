package controllers

import (
	"log"
	"net/http"
	"strconv"

	"janconnect-be/models"
	"janconnect-be/services"
	authUtils "janconnect-be/utils"

	"github.com/gin-gonic/gin"
)

type IssueController struct {
	issues   *services.IssueService
	profiles *services.ProfileService
}

func NewIssueController(issues *services.IssueService, profiles *services.ProfileService) *IssueController {
	return &IssueController{issues: issues, profiles: profiles}
}

// CreateIssue handles the creation of a new issue and rewards the reporter
func (ic *IssueController) CreateIssue(c *gin.Context) {
	var input services.CreateIssueInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	issue, err := ic.issues.CreateIssue(ctx, authUtils.CurrentActor(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := ic.profiles.AwardIssuePoints(ctx, issue); err != nil {
		log.Printf("award points for issue %s: %v", issue.ID, err)
	}
	c.JSON(http.StatusCreated, issue)
}

func listInput(c *gin.Context) services.ListIssuesInput {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return services.ListIssuesInput{
		Category:   c.Query("category"),
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		Location:   c.Query("location"),
		Department: c.Query("department"),
		Search:     c.Query("search"),
		Sort:       c.DefaultQuery("sort", "newest"),
		Page:       page,
		Limit:      limit,
	}
}

// GetAllIssues handles retrieving issues with filtering and pagination
func (ic *IssueController) GetAllIssues(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	page, err := ic.issues.ListIssues(ctx, listInput(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ic *IssueController) GetMyIssues(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	in := listInput(c)
	in.UserID = authUtils.CurrentActor(c).UserID
	page, err := ic.issues.ListIssues(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ic *IssueController) GetTrendingIssues(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	issues, err := ic.issues.TrendingIssues(ctx, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issues)
}

// GetIssue returns one issue, counts the view and includes the caller's vote
func (ic *IssueController) GetIssue(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	id := c.Param("id")
	if err := ic.issues.RecordView(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	issue, err := ic.issues.GetIssue(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	userVote, err := ic.issues.UserVote(ctx, authUtils.CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"issue": issue, "user_vote": userVote})
}

func (ic *IssueController) UpdateIssue(c *gin.Context) {
	var patch services.IssuePatch
	if !bindJSON(c, &patch) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	issue, err := ic.issues.UpdateIssue(ctx, authUtils.CurrentActor(c), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

func (ic *IssueController) DeleteIssue(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ic.issues.DeleteIssue(ctx, authUtils.CurrentActor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Issue deleted successfully"})
}

// VoteIssue toggles the caller's vote on an issue
func (ic *IssueController) VoteIssue(c *gin.Context) {
	var input struct {
		VoteType models.VoteType `json:"vote_type"`
	}
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := ic.issues.VoteOnIssue(ctx, authUtils.CurrentActor(c), c.Param("id"), input.VoteType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ic *IssueController) AddComment(c *gin.Context) {
	var input services.CommentInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	comment, err := ic.issues.AddComment(ctx, authUtils.CurrentActor(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (ic *IssueController) GetComments(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	comments, err := ic.issues.ListComments(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
