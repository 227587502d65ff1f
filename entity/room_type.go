package entity

import (
	"gorm.io/gorm"
)

// RoomType 房型，随酒店编辑整组替换
type RoomType struct {
	gorm.Model
	HotelID     uint    `gorm:"not null;index" json:"hotelId"`
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `json:"price"`    // >= 0
	Quantity    int     `json:"quantity"` // >= 1
	Size        float64 `json:"size"`     // 面积，> 0
	Description string  `json:"description"`
	Images      string  `gorm:"type:text" json:"images"` // JSON 数组
}
