package services

import (
	"testing"

	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejectPendingHotel(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	hotel := seedHotel(t, db, 1, entity.StatusPending)

	got, err := svc.Reject(hotel.ID, "缺少营业执照", "审核员A")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, got.Status)
	require.NotNil(t, got.RejectedReason)
	assert.Equal(t, "缺少营业执照", *got.RejectedReason)

	// 恰好一条审计记录，内容为驳回理由
	var log entity.AuditLog
	require.NoError(t, db.First(&log).Error)
	assert.Equal(t, hotel.ID, log.TargetID)
	assert.Equal(t, hotel.NameZh, log.TargetName)
	assert.Equal(t, entity.ActionReject, log.ActionType)
	assert.Equal(t, "缺少营业执照", log.Content)
	assert.Equal(t, "审核员A", log.OperatorName)
	assert.EqualValues(t, 1, countAuditLogs(t, db, ""))
}

func TestRejectRequiresReason(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	hotel := seedHotel(t, db, 1, entity.StatusPending)

	for _, reason := range []string{"", "   ", "\t\n"} {
		_, err := svc.Reject(hotel.ID, reason, "审核员A")
		assert.ErrorIs(t, err, ErrValidation)
	}

	// 状态未变，也没有审计记录
	var got entity.Hotel
	require.NoError(t, db.First(&got, hotel.ID).Error)
	assert.Equal(t, entity.StatusPending, got.Status)
	assert.EqualValues(t, 0, countAuditLogs(t, db, ""))
}

func TestRejectTwiceFails(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	hotel := seedHotel(t, db, 1, entity.StatusPending)

	_, err := svc.Reject(hotel.ID, "资质不全", "审核员A")
	require.NoError(t, err)

	// 第二次已不在 pending，必须失败且不再写日志
	_, err = svc.Reject(hotel.ID, "资质不全", "审核员A")
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.EqualValues(t, 1, countAuditLogs(t, db, entity.ActionReject))
}

func TestApproveClearsRejectedReason(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	hotel := seedHotel(t, db, 1, entity.StatusPending)

	_, err := svc.Reject(hotel.ID, "照片模糊", "审核员A")
	require.NoError(t, err)

	// 重新送审后通过，驳回理由必须清空
	require.NoError(t, db.Model(&entity.Hotel{}).Where("id = ?", hotel.ID).
		Update("status", entity.StatusPending).Error)

	got, err := svc.Approve(hotel.ID, "审核员B")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, got.Status)
	assert.Nil(t, got.RejectedReason)
	assert.EqualValues(t, 1, countAuditLogs(t, db, entity.ActionApprove))
}

func TestApproveRequiresPending(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	for _, status := range []entity.HotelStatus{
		entity.StatusDraft, entity.StatusApproved, entity.StatusRejected, entity.StatusOffline,
	} {
		hotel := seedHotel(t, db, 1, status)
		_, err := svc.Approve(hotel.ID, "审核员A")
		assert.ErrorIs(t, err, ErrInvalidState, "status %s", status)
	}
	assert.EqualValues(t, 0, countAuditLogs(t, db, ""))
}

func TestOfflineAndRestoreOnline(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	hotel := seedHotel(t, db, 1, entity.StatusApproved)

	got, err := svc.TakeOffline(hotel.ID, "审核员A")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOffline, got.Status)

	// 已下线的酒店不能再下线
	_, err = svc.TakeOffline(hotel.ID, "审核员A")
	assert.ErrorIs(t, err, ErrInvalidState)

	got, err = svc.RestoreOnline(hotel.ID, "审核员A")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, got.Status)

	assert.EqualValues(t, 1, countAuditLogs(t, db, entity.ActionOffline))
	assert.EqualValues(t, 1, countAuditLogs(t, db, entity.ActionOnline))
}

func TestApproveSurvivesAuditFailure(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	hotel := seedHotel(t, db, 1, entity.StatusPending)

	// 审计表不可写时状态变更依然生效，错误只记日志不上抛
	require.NoError(t, db.Migrator().DropTable(&entity.AuditLog{}))

	got, err := svc.Approve(hotel.ID, "审核员A")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, got.Status)
	assert.Nil(t, got.RejectedReason)
}

func TestReviewHotelNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	_, err := svc.Approve(999, "审核员A")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Reject(999, "任意理由", "审核员A")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.TakeOffline(999, "审核员A")
	assert.ErrorIs(t, err, ErrNotFound)
}

type captureEvents struct {
	logs []*entity.AuditLog
}

func (c *captureEvents) Publish(log *entity.AuditLog) { c.logs = append(c.logs, log) }

func TestReviewPublishesEvents(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	events := &captureEvents{}
	svc.Events = events

	hotel := seedHotel(t, db, 1, entity.StatusPending)
	_, err := svc.Approve(hotel.ID, "审核员A")
	require.NoError(t, err)

	require.Len(t, events.logs, 1)
	assert.Equal(t, entity.ActionApprove, events.logs[0].ActionType)
}
