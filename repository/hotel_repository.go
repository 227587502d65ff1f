package repository

import (
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/entity"

	"gorm.io/gorm"
)

// HotelRepository 只负责 hotels / room_types 两张表的读写
type HotelRepository struct {
	DB *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{DB: db}
}

func (r *HotelRepository) FindByID(id uint) (*entity.Hotel, error) {
	var hotel entity.Hotel
	if err := r.DB.Preload("RoomTypes").First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

// FindByMerchant 商家自己的酒店，按更新时间倒序；keyword 匹配中英文名或地址
func (r *HotelRepository) FindByMerchant(merchantID uint, keyword string) ([]entity.Hotel, error) {
	q := r.DB.Preload("RoomTypes").
		Where("merchant_id = ?", merchantID).
		Order("updated_at DESC")
	if keyword != "" {
		like := "%" + keyword + "%"
		q = q.Where("name_zh LIKE ? OR name_en LIKE ? OR address LIKE ?", like, like, like)
	}
	var hotels []entity.Hotel
	err := q.Find(&hotels).Error
	return hotels, err
}

// FindByStatus 管理端列表；status 为空返回全部
func (r *HotelRepository) FindByStatus(status entity.HotelStatus) ([]entity.Hotel, error) {
	q := r.DB.Preload("RoomTypes").Order("updated_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var hotels []entity.Hotel
	err := q.Find(&hotels).Error
	return hotels, err
}

// CreateWithRoomTypes 同一事务内创建酒店与房型
func (r *HotelRepository) CreateWithRoomTypes(hotel *entity.Hotel, rooms []entity.RoomType) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(hotel).Error; err != nil {
			return err
		}
		for i := range rooms {
			rooms[i].HotelID = hotel.ID
		}
		if len(rooms) > 0 {
			if err := tx.Create(&rooms).Error; err != nil {
				return err
			}
		}
		hotel.RoomTypes = rooms
		return nil
	})
}

// UpdateWithRoomTypes 更新酒店字段并整组替换房型
func (r *HotelRepository) UpdateWithRoomTypes(hotelID uint, updates map[string]any, rooms []entity.RoomType) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Hotel{}).Where("id = ?", hotelID).Updates(updates).Error; err != nil {
			return err
		}
		// 先删旧房型再插新的，对调用方来说是原子替换
		if err := tx.Unscoped().Where("hotel_id = ?", hotelID).Delete(&entity.RoomType{}).Error; err != nil {
			return err
		}
		for i := range rooms {
			rooms[i].ID = 0
			rooms[i].HotelID = hotelID
		}
		if len(rooms) > 0 {
			if err := tx.Create(&rooms).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateStatusGuard 条件更新：status 仍是 from 时才落库，并发竞争时 affected=0
func (r *HotelRepository) UpdateStatusGuard(hotelID uint, from []entity.HotelStatus, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Hotel{}).
		Where("id = ? AND status IN ?", hotelID, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// Delete 硬删除酒店及其房型
func (r *HotelRepository) Delete(hotelID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("hotel_id = ?", hotelID).Delete(&entity.RoomType{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.Hotel{}, hotelID).Error
	})
}

// CountByStatus 仪表盘用的单状态计数
func (r *HotelRepository) CountByStatus(status entity.HotelStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Hotel{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
