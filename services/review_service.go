package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/entity"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/pkg/logger"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventPublisher 把审核事件推给在线的管理端（如 ws hub），可以为 nil
type EventPublisher interface {
	Publish(log *entity.AuditLog)
}

// ReviewService 审核流程：校验 -> 条件更新状态 -> 追加审计日志
type ReviewService struct {
	Hotels *repository.HotelRepository
	Logs   *repository.AuditLogRepository
	Events EventPublisher
}

func NewReviewService(hotels *repository.HotelRepository, logs *repository.AuditLogRepository) *ReviewService {
	return &ReviewService{Hotels: hotels, Logs: logs}
}

// Approve 通过审核：pending -> approved，清空驳回理由
func (s *ReviewService) Approve(hotelID uint, operator string) (*entity.Hotel, error) {
	return s.decide(hotelID, operator, entity.ActionApprove, "",
		entity.StatusPending, entity.StatusApproved,
		map[string]any{"status": entity.StatusApproved, "rejected_reason": nil})
}

// RestoreOnline 恢复上线：offline -> approved
// 原型里恢复上线复用通过审核，这里拆成独立流转，审计动作记为 online
func (s *ReviewService) RestoreOnline(hotelID uint, operator string) (*entity.Hotel, error) {
	return s.decide(hotelID, operator, entity.ActionOnline, "",
		entity.StatusOffline, entity.StatusApproved,
		map[string]any{"status": entity.StatusApproved, "rejected_reason": nil})
}

// Reject 驳回：pending -> rejected，理由必填且原样保存
func (s *ReviewService) Reject(hotelID uint, reason, operator string) (*entity.Hotel, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: 驳回理由不能为空", ErrValidation)
	}
	return s.decide(hotelID, operator, entity.ActionReject, reason,
		entity.StatusPending, entity.StatusRejected,
		map[string]any{"status": entity.StatusRejected, "rejected_reason": reason})
}

// TakeOffline 强制下线：approved -> offline
func (s *ReviewService) TakeOffline(hotelID uint, operator string) (*entity.Hotel, error) {
	return s.decide(hotelID, operator, entity.ActionOffline, "",
		entity.StatusApproved, entity.StatusOffline,
		map[string]any{"status": entity.StatusOffline})
}

// decide 执行一次管理员决定。先读取酒店（404 区分 + 审计名称快照），
// 按流转表预检状态，真正落库时再按 from 做条件更新，把并发窗口关死
func (s *ReviewService) decide(hotelID uint, operator, action, content string, from, target entity.HotelStatus, updates map[string]any) (*entity.Hotel, error) {
	hotel, err := s.Hotels.FindByID(hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 酒店不存在", ErrNotFound)
		}
		return nil, err
	}
	if hotel.Status != from || !from.CanTransition(target) {
		return nil, fmt.Errorf("%w: 酒店当前状态为 %s，不能执行 %s", ErrInvalidState, hotel.Status, action)
	}

	affected, err := s.Hotels.UpdateStatusGuard(hotelID, []entity.HotelStatus{from}, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: 酒店状态已被其他操作修改", ErrInvalidState)
	}

	s.recordLog(hotel, action, content, operator)

	return s.Hotels.FindByID(hotelID)
}

// recordLog 审计日志尽力而为：写失败只记日志，不回滚已生效的状态变更
func (s *ReviewService) recordLog(hotel *entity.Hotel, action, content, operator string) {
	log := &entity.AuditLog{
		TargetID:     hotel.ID,
		TargetName:   hotel.NameZh,
		ActionType:   action,
		Content:      content,
		OperatorName: operator,
	}
	if err := s.Logs.Append(log); err != nil {
		logger.L().Warn("append audit log failed",
			zap.Uint("hotelId", hotel.ID),
			zap.String("action", action),
			zap.Error(err))
		return
	}
	if s.Events != nil {
		s.Events.Publish(log)
	}
}
