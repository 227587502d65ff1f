package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/entity"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/repository"

	"gorm.io/gorm"
)

// DraftService 编辑会话：商家填写中的表单先落库，刷新后可恢复，
// commit 时才写入正式的酒店数据
type DraftService struct {
	Drafts *repository.DraftRepository
	Hotels *HotelService
}

func NewDraftService(drafts *repository.DraftRepository, hotels *HotelService) *DraftService {
	return &DraftService{Drafts: drafts, Hotels: hotels}
}

// Begin 开启编辑会话；同一 (商家, 酒店) 已有会话时直接复用
func (s *DraftService) Begin(merchantID, hotelID uint, payload string) (*entity.DraftSession, error) {
	if payload != "" && !json.Valid([]byte(payload)) {
		return nil, fmt.Errorf("%w: payload 必须是合法 JSON", ErrValidation)
	}

	existing, err := s.Drafts.FindByOwner(merchantID, hotelID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	draft := &entity.DraftSession{
		MerchantID: merchantID,
		HotelID:    hotelID,
		Payload:    payload,
	}
	if err := s.Drafts.Create(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *DraftService) List(merchantID uint) ([]entity.DraftSession, error) {
	return s.Drafts.FindAllByMerchant(merchantID)
}

// Update 覆盖会话内容
func (s *DraftService) Update(merchantID, draftID uint, payload string) (*entity.DraftSession, error) {
	if !json.Valid([]byte(payload)) {
		return nil, fmt.Errorf("%w: payload 必须是合法 JSON", ErrValidation)
	}
	draft, err := s.owned(merchantID, draftID)
	if err != nil {
		return nil, err
	}
	if err := s.Drafts.UpdatePayload(draft.ID, payload); err != nil {
		return nil, err
	}
	draft.Payload = payload
	return draft, nil
}

// Commit 把会话内容写成正式数据：HotelID 为 0 走新建，否则走编辑；
// 成功后删除会话。submit=true 时新建的酒店直接送审
func (s *DraftService) Commit(merchantID, draftID uint, submit bool) (*entity.Hotel, error) {
	draft, err := s.owned(merchantID, draftID)
	if err != nil {
		return nil, err
	}

	var input HotelInput
	if err := json.Unmarshal([]byte(draft.Payload), &input); err != nil {
		return nil, fmt.Errorf("%w: 草稿内容无法解析: %v", ErrValidation, err)
	}

	var hotel *entity.Hotel
	if draft.HotelID == 0 {
		hotel, err = s.Hotels.Create(merchantID, &input, submit)
	} else {
		hotel, err = s.Hotels.Update(merchantID, draft.HotelID, &input)
		// 已在待审核的酒店视为送审完成，不再流转
		if err == nil && submit && hotel.Status != entity.StatusPending {
			hotel, err = s.Hotels.SubmitForReview(merchantID, draft.HotelID)
		}
	}
	if err != nil {
		return nil, err
	}

	if err := s.Drafts.Delete(draft.ID); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Discard 放弃会话
func (s *DraftService) Discard(merchantID, draftID uint) error {
	draft, err := s.owned(merchantID, draftID)
	if err != nil {
		return err
	}
	return s.Drafts.Delete(draft.ID)
}

func (s *DraftService) owned(merchantID, draftID uint) (*entity.DraftSession, error) {
	draft, err := s.Drafts.FindByIDAndMerchant(draftID, merchantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 草稿不存在", ErrNotFound)
		}
		return nil, err
	}
	return draft, nil
}
