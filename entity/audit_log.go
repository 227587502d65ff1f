package entity

import (
	"time"
)

// AuditLog 管理员操作的审计记录，只插入，不更新不删除
type AuditLog struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	TargetID     uint      `gorm:"not null;index" json:"targetId"`
	TargetName   string    `json:"targetName"`                       // 操作时的酒店名快照
	ActionType   string    `gorm:"not null;index" json:"actionType"` // approve / reject / offline / online
	Content      string    `json:"content"`                          // 如驳回理由
	OperatorName string    `json:"operatorName"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
}
