package repository

import (
	"time"

	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/entity"

	"gorm.io/gorm"
)

// AuditLogRepository 审计日志只追加，不暴露更新和删除
type AuditLogRepository struct {
	DB *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{DB: db}
}

func (r *AuditLogRepository) Append(log *entity.AuditLog) error {
	return r.DB.Create(log).Error
}

func (r *AuditLogRepository) FindAll(limit int) ([]entity.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var logs []entity.AuditLog
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

// FindDecisionsSince 趋势图用：取起始时间后的 approve/reject 记录
func (r *AuditLogRepository) FindDecisionsSince(since time.Time) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := r.DB.
		Where("created_at >= ?", since).
		Where("action_type IN ?", []string{entity.ActionApprove, entity.ActionReject}).
		Find(&logs).Error
	return logs, err
}
