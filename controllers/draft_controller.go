package controllers

import (
	"strconv"

	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/pkg/resp"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/services"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/utils"

	"github.com/gin-gonic/gin"
)

// DraftController 商家填表的编辑会话，刷新页面后可继续
type DraftController struct {
	Drafts *services.DraftService
}

func NewDraftController(drafts *services.DraftService) *DraftController {
	return &DraftController{Drafts: drafts}
}

type BeginDraftRequest struct {
	HotelID uint   `json:"hotelId"` // 0 表示新建酒店
	Payload string `json:"payload"`
}

type UpdateDraftRequest struct {
	Payload string `json:"payload" binding:"required"`
}

type CommitDraftRequest struct {
	Submit bool `json:"submit"`
}

func draftIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid draft id")
		return 0, false
	}
	return uint(id), true
}

// POST /merchant/drafts
func (ctl *DraftController) Begin(c *gin.Context) {
	var req BeginDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	draft, err := ctl.Drafts.Begin(utils.CurrentUserID(c), req.HotelID, req.Payload)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, draft)
}

// GET /merchant/drafts
func (ctl *DraftController) List(c *gin.Context) {
	drafts, err := ctl.Drafts.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": drafts})
}

// PATCH /merchant/drafts/:id
func (ctl *DraftController) Update(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}

	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	draft, err := ctl.Drafts.Update(utils.CurrentUserID(c), id, req.Payload)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, draft)
}

// POST /merchant/drafts/:id/commit
func (ctl *DraftController) Commit(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}

	var req CommitDraftRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
	}

	hotel, err := ctl.Drafts.Commit(utils.CurrentUserID(c), id, req.Submit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, hotel)
}

// DELETE /merchant/drafts/:id
func (ctl *DraftController) Discard(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}

	if err := ctl.Drafts.Discard(utils.CurrentUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"discarded": id})
}
