package controllers

import (
	"strconv"

	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/entity"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/pkg/resp"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/repository"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/services"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/utils"

	"github.com/gin-gonic/gin"
)

// AdminController 管理端：审核、审计日志、仪表盘
type AdminController struct {
	Review *services.ReviewService
	Stats  *services.StatsService
	Auth   *services.AuthService
	Hotels *repository.HotelRepository
	Logs   *repository.AuditLogRepository
}

func NewAdminController(review *services.ReviewService, stats *services.StatsService, auth *services.AuthService,
	hotels *repository.HotelRepository, logs *repository.AuditLogRepository) *AdminController {
	return &AdminController{Review: review, Stats: stats, Auth: auth, Hotels: hotels, Logs: logs}
}

// operatorName 审计日志里记录操作者昵称，取不到时退回 email
func (ac *AdminController) operatorName(c *gin.Context) string {
	user, err := ac.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		return "unknown"
	}
	if user.Nickname != "" {
		return user.Nickname
	}
	return user.Email
}

func hotelIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid hotel id")
		return 0, false
	}
	return uint(id), true
}

// GET /admin/hotels?status=pending
func (ac *AdminController) ListHotels(c *gin.Context) {
	status := entity.HotelStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		resp.BadRequest(c, "unknown status: "+string(status))
		return
	}

	hotels, err := ac.Hotels.FindByStatus(status)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	type row struct {
		entity.Hotel
		StatusLabel string `json:"statusLabel"`
		StatusColor string `json:"statusColor"`
	}
	items := make([]row, 0, len(hotels))
	for _, h := range hotels {
		items = append(items, row{Hotel: h, StatusLabel: h.Status.Label(), StatusColor: h.Status.Color()})
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /admin/hotels/:id/approve
func (ac *AdminController) Approve(c *gin.Context) {
	id, ok := hotelIDParam(c)
	if !ok {
		return
	}

	hotel, err := ac.Review.Approve(id, ac.operatorName(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, hotel)
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// PATCH /admin/hotels/:id/reject
func (ac *AdminController) Reject(c *gin.Context) {
	id, ok := hotelIDParam(c)
	if !ok {
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	hotel, err := ac.Review.Reject(id, req.Reason, ac.operatorName(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, hotel)
}

// PATCH /admin/hotels/:id/offline
func (ac *AdminController) Offline(c *gin.Context) {
	id, ok := hotelIDParam(c)
	if !ok {
		return
	}

	hotel, err := ac.Review.TakeOffline(id, ac.operatorName(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, hotel)
}

// PATCH /admin/hotels/:id/online
func (ac *AdminController) Online(c *gin.Context) {
	id, ok := hotelIDParam(c)
	if !ok {
		return
	}

	hotel, err := ac.Review.RestoreOnline(id, ac.operatorName(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, hotel)
}

// GET /admin/audit-logs?limit=
func (ac *AdminController) AuditLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	logs, err := ac.Logs.FindAll(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": logs})
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	stats, err := ac.Stats.Dashboard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /admin/dashboard/trend?days=7
func (ac *AdminController) Trend(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	points, err := ac.Stats.Trend(days)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"points": points})
}
