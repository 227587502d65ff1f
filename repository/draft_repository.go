package repository

import (
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/entity"

	"gorm.io/gorm"
)

type DraftRepository struct {
	DB *gorm.DB
}

func NewDraftRepository(db *gorm.DB) *DraftRepository {
	return &DraftRepository{DB: db}
}

func (r *DraftRepository) FindByOwner(merchantID, hotelID uint) (*entity.DraftSession, error) {
	var draft entity.DraftSession
	if err := r.DB.Where("merchant_id = ? AND hotel_id = ?", merchantID, hotelID).
		First(&draft).Error; err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *DraftRepository) FindByIDAndMerchant(id, merchantID uint) (*entity.DraftSession, error) {
	var draft entity.DraftSession
	if err := r.DB.Where("id = ? AND merchant_id = ?", id, merchantID).
		First(&draft).Error; err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *DraftRepository) FindAllByMerchant(merchantID uint) ([]entity.DraftSession, error) {
	var drafts []entity.DraftSession
	err := r.DB.Where("merchant_id = ?", merchantID).Order("updated_at DESC").Find(&drafts).Error
	return drafts, err
}

func (r *DraftRepository) Create(draft *entity.DraftSession) error {
	return r.DB.Create(draft).Error
}

func (r *DraftRepository) UpdatePayload(id uint, payload string) error {
	return r.DB.Model(&entity.DraftSession{}).Where("id = ?", id).
		Update("payload", payload).Error
}

// Delete 草稿提交或放弃后彻底删除
func (r *DraftRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.DraftSession{}, id).Error
}
