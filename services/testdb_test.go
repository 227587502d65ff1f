package services

import (
	"testing"

	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/entity"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Hotel{}, &entity.RoomType{},
		&entity.AuditLog{},
		&entity.DraftSession{},
	))
	return db
}

func seedHotel(t *testing.T, db *gorm.DB, merchantID uint, status entity.HotelStatus) *entity.Hotel {
	t.Helper()
	hotel := &entity.Hotel{
		NameZh:     "易宿测试酒店",
		NameEn:     "Yisu Test Hotel",
		Address:    "软件园路 1 号",
		StarRating: 4,
		Status:     status,
		MerchantID: merchantID,
	}
	require.NoError(t, db.Create(hotel).Error)
	return hotel
}

func countAuditLogs(t *testing.T, db *gorm.DB, action string) int64 {
	t.Helper()
	var n int64
	q := db.Model(&entity.AuditLog{})
	if action != "" {
		q = q.Where("action_type = ?", action)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(repository.NewHotelRepository(db), repository.NewAuditLogRepository(db))
}
