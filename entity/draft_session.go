package entity

import (
	"gorm.io/gorm"
)

// DraftSession 商家编辑中的表单草稿，刷新页面后可恢复
// 一个商家对同一家酒店同时只有一份草稿，HotelID 为 0 表示新建酒店
type DraftSession struct {
	gorm.Model
	MerchantID uint   `gorm:"not null;index:idx_draft_owner,unique" json:"merchantId"`
	HotelID    uint   `gorm:"index:idx_draft_owner,unique" json:"hotelId"`
	Payload    string `gorm:"type:text" json:"payload"` // 表单原始 JSON
}
