package services

import (
	"testing"
	"time"

	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/entity"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStatsService(db *gorm.DB) *StatsService {
	return NewStatsService(repository.NewHotelRepository(db), repository.NewAuditLogRepository(db))
}

func TestDashboardEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)

	stats, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, &DashboardStats{}, stats)
}

func TestDashboardCounts(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)

	for i := 0; i < 3; i++ {
		seedHotel(t, db, 1, entity.StatusPending)
	}
	for i := 0; i < 2; i++ {
		seedHotel(t, db, 1, entity.StatusApproved)
	}
	seedHotel(t, db, 1, entity.StatusRejected)
	seedHotel(t, db, 1, entity.StatusOffline)
	// draft 不计入仪表盘，但计入商家自己的列表
	seedHotel(t, db, 1, entity.StatusDraft)

	stats, err := svc.Dashboard()
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Pending)
	assert.EqualValues(t, 2, stats.Approved)
	assert.EqualValues(t, 1, stats.Rejected)
	assert.EqualValues(t, 1, stats.Offline)
	assert.Equal(t, stats.Pending+stats.Approved+stats.Rejected+stats.Offline, stats.Total)
}

func seedAuditLog(t *testing.T, db *gorm.DB, action string, at time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&entity.AuditLog{
		TargetID:   1,
		TargetName: "易宿测试酒店",
		ActionType: action,
		CreatedAt:  at,
	}).Error)
}

func TestTrendSevenPoints(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)

	points, err := svc.Trend(7)
	require.NoError(t, err)
	require.Len(t, points, 7)

	// 日期严格递增，空库时全部为零
	today := time.Now()
	for i, p := range points {
		day := today.AddDate(0, 0, i-6)
		assert.Equal(t, day.Format("01-02"), p.Date)
		assert.Zero(t, p.Approved)
		assert.Zero(t, p.Rejected)
		assert.Zero(t, p.Total)
	}
}

func TestTrendAggregatesSameDay(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)
	now := time.Now()

	seedAuditLog(t, db, entity.ActionApprove, now)
	seedAuditLog(t, db, entity.ActionApprove, now)
	seedAuditLog(t, db, entity.ActionReject, now)
	// offline 不属于审核决定，不计入趋势
	seedAuditLog(t, db, entity.ActionOffline, now)
	// 窗口外的记录被忽略
	seedAuditLog(t, db, entity.ActionApprove, now.AddDate(0, 0, -10))

	points, err := svc.Trend(7)
	require.NoError(t, err)
	require.Len(t, points, 7)

	last := points[6] // 今天
	assert.Equal(t, 2, last.Approved)
	assert.Equal(t, 1, last.Rejected)
	assert.Equal(t, 3, last.Total)

	for _, p := range points[:6] {
		assert.Zero(t, p.Total)
	}
}

func TestTrendMultipleDays(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)
	now := time.Now()

	seedAuditLog(t, db, entity.ActionApprove, now.AddDate(0, 0, -2))
	seedAuditLog(t, db, entity.ActionReject, now.AddDate(0, 0, -2))
	seedAuditLog(t, db, entity.ActionReject, now.AddDate(0, 0, -6))

	points, err := svc.Trend(7)
	require.NoError(t, err)

	assert.Equal(t, 1, points[0].Rejected)
	assert.Equal(t, 1, points[4].Approved)
	assert.Equal(t, 1, points[4].Rejected)
	assert.Equal(t, 2, points[4].Total)

	for _, p := range points {
		assert.Equal(t, p.Approved+p.Rejected, p.Total)
	}
}

func TestTrendDefaultWindow(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)

	points, err := svc.Trend(0)
	require.NoError(t, err)
	assert.Len(t, points, 7)

	points, err = svc.Trend(-3)
	require.NoError(t, err)
	assert.Len(t, points, 7)

	// 超长窗口收到 31 天，避免 MM-DD 键跨年重复
	points, err = svc.Trend(400)
	require.NoError(t, err)
	assert.Len(t, points, 31)
}
