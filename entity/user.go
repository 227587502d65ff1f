package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Nickname string `json:"nickname"`
	Phone    string `json:"phone"`
	Role     string `gorm:"not null;default:merchant" json:"role"` // merchant / admin

	Hotels []Hotel `gorm:"foreignKey:MerchantID" json:"-"`
}
