package controllers

import (
	"strconv"

	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/pkg/resp"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/services"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/utils"

	"github.com/gin-gonic/gin"
)

// HotelController 商家侧：酒店的增删改查与送审
type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{Hotels: hotels}
}

type CreateHotelRequest struct {
	services.HotelInput
	// true 直接送审，false 存草稿
	Submit bool `json:"submit"`
}

// GET /merchant/hotels?keyword=
func (ctl *HotelController) List(c *gin.Context) {
	hotels, err := ctl.Hotels.List(utils.CurrentUserID(c), c.Query("keyword"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": hotels})
}

// GET /merchant/hotels/:id
func (ctl *HotelController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid hotel id")
		return
	}

	hotel, err := ctl.Hotels.Get(utils.CurrentUserID(c), uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, hotel)
}

// POST /merchant/hotels
func (ctl *HotelController) Create(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	hotel, err := ctl.Hotels.Create(utils.CurrentUserID(c), &req.HotelInput, req.Submit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, hotel)
}

// PUT /merchant/hotels/:id
func (ctl *HotelController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid hotel id")
		return
	}

	var req services.HotelInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	hotel, err := ctl.Hotels.Update(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, hotel)
}

// PATCH /merchant/hotels/:id/submit
func (ctl *HotelController) Submit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid hotel id")
		return
	}

	hotel, err := ctl.Hotels.SubmitForReview(utils.CurrentUserID(c), uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, hotel)
}

// DELETE /merchant/hotels/:id
func (ctl *HotelController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid hotel id")
		return
	}

	if err := ctl.Hotels.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
