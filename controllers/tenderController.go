package controllers

import (
	"net/http"

	"janconnect-be/models"
	"janconnect-be/services"
	authUtils "janconnect-be/utils"

	"github.com/gin-gonic/gin"
)

type TenderController struct {
	tenders *services.TenderService
}

func NewTenderController(tenders *services.TenderService) *TenderController {
	return &TenderController{tenders: tenders}
}

func (tc *TenderController) GetTenders(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	tenders, err := tc.tenders.ListTenders(ctx, c.DefaultQuery("status", string(models.TenderAvailable)))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenders)
}

func (tc *TenderController) CreateTender(c *gin.Context) {
	var input services.TenderInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	tender, err := tc.tenders.CreateTender(ctx, authUtils.CurrentActor(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tender)
}

func (tc *TenderController) CreateBid(c *gin.Context) {
	var input services.BidInput
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	bid, err := tc.tenders.CreateBid(ctx, authUtils.CurrentActor(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bid)
}

func (tc *TenderController) GetMyBids(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	bids, err := tc.tenders.ListMyBids(ctx, authUtils.CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bids)
}

func (tc *TenderController) UpdateTenderStatus(c *gin.Context) {
	var input struct {
		Status models.TenderStatus `json:"status"`
	}
	if !bindJSON(c, &input) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	tender, err := tc.tenders.UpdateTenderStatus(ctx, authUtils.CurrentActor(c), c.Param("id"), input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tender)
}
