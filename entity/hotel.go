package entity

import (
	"gorm.io/gorm"
)

// Hotel 商家创建的酒店，需管理员审核后才能上线
type Hotel struct {
	gorm.Model
	NameZh       string `gorm:"not null" json:"nameZh"`
	NameEn       string `json:"nameEn"`
	Region       string `gorm:"type:text" json:"region"` // JSON 数组，省/市/区
	Address      string `json:"address"`
	StarRating   int    `json:"starRating"` // 1-5
	OpeningDate  string `json:"openingDate"`
	ContactPhone string `json:"contactPhone"`
	CoverImage   string `json:"coverImage"`
	Album        string `gorm:"type:text" json:"album"` // JSON 数组，图集引用

	// draft / pending / approved / rejected / offline
	Status HotelStatus `gorm:"not null;default:draft;index" json:"status"`

	// 仅在最近一次驳回后有值，审核通过时清空
	RejectedReason *string `json:"rejectedReason,omitempty"`

	MerchantID uint `gorm:"not null;index" json:"merchantId"` // 创建者，不可转移
	Merchant   User `gorm:"foreignKey:MerchantID" json:"-"`

	RoomTypes []RoomType `gorm:"foreignKey:HotelID" json:"roomTypes"`
}
