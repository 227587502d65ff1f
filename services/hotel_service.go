package services

import (
	"errors"
	"fmt"

	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/entity"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/repository"

	"gorm.io/gorm"
)

// HotelService 商家侧的酒店与房型维护
type HotelService struct {
	Hotels *repository.HotelRepository
}

func NewHotelService(hotels *repository.HotelRepository) *HotelService {
	return &HotelService{Hotels: hotels}
}

// RoomTypeInput 编辑时整组提交，旧房型全部替换
type RoomTypeInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Size        float64 `json:"size"`
	Description string  `json:"description"`
	Images      string  `json:"images"`
}

type HotelInput struct {
	NameZh       string          `json:"nameZh" binding:"required"`
	NameEn       string          `json:"nameEn"`
	Region       string          `json:"region"`
	Address      string          `json:"address"`
	StarRating   int             `json:"starRating"`
	OpeningDate  string          `json:"openingDate"`
	ContactPhone string          `json:"contactPhone"`
	CoverImage   string          `json:"coverImage"`
	Album        string          `json:"album"`
	RoomTypes    []RoomTypeInput `json:"roomTypes"`
}

func validateInput(in *HotelInput) error {
	if in.StarRating < 1 || in.StarRating > 5 {
		return fmt.Errorf("%w: 星级必须在 1-5 之间", ErrValidation)
	}
	for _, rt := range in.RoomTypes {
		if rt.Name == "" {
			return fmt.Errorf("%w: 房型名称不能为空", ErrValidation)
		}
		if rt.Price < 0 {
			return fmt.Errorf("%w: 房型价格不能为负", ErrValidation)
		}
		if rt.Quantity < 1 {
			return fmt.Errorf("%w: 房型数量必须为正整数", ErrValidation)
		}
		if rt.Size <= 0 {
			return fmt.Errorf("%w: 房型面积必须大于 0", ErrValidation)
		}
	}
	return nil
}

func toRoomTypes(inputs []RoomTypeInput) []entity.RoomType {
	rooms := make([]entity.RoomType, 0, len(inputs))
	for _, in := range inputs {
		rooms = append(rooms, entity.RoomType{
			Name:        in.Name,
			Price:       in.Price,
			Quantity:    in.Quantity,
			Size:        in.Size,
			Description: in.Description,
			Images:      in.Images,
		})
	}
	return rooms
}

// List 商家自己的酒店，keyword 可选
func (s *HotelService) List(merchantID uint, keyword string) ([]entity.Hotel, error) {
	return s.Hotels.FindByMerchant(merchantID, keyword)
}

func (s *HotelService) Get(merchantID, hotelID uint) (*entity.Hotel, error) {
	hotel, err := s.ownedHotel(merchantID, hotelID)
	if err != nil {
		return nil, err
	}
	return hotel, nil
}

// Create 新建酒店。submit=false 存草稿，true 直接送审
func (s *HotelService) Create(merchantID uint, in *HotelInput, submit bool) (*entity.Hotel, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	status := entity.StatusDraft
	if submit {
		status = entity.StatusPending
	}

	hotel := &entity.Hotel{
		NameZh:       in.NameZh,
		NameEn:       in.NameEn,
		Region:       in.Region,
		Address:      in.Address,
		StarRating:   in.StarRating,
		OpeningDate:  in.OpeningDate,
		ContactPhone: in.ContactPhone,
		CoverImage:   in.CoverImage,
		Album:        in.Album,
		Status:       status,
		MerchantID:   merchantID,
	}

	if err := s.Hotels.CreateWithRoomTypes(hotel, toRoomTypes(in.RoomTypes)); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Update 编辑酒店。只有 draft/pending/rejected 状态可改，房型整组替换
func (s *HotelService) Update(merchantID, hotelID uint, in *HotelInput) (*entity.Hotel, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	hotel, err := s.ownedHotel(merchantID, hotelID)
	if err != nil {
		return nil, err
	}
	if !hotel.Status.Editable() {
		return nil, fmt.Errorf("%w: 状态为 %s 的酒店不能编辑", ErrInvalidState, hotel.Status)
	}

	updates := map[string]any{
		"name_zh":       in.NameZh,
		"name_en":       in.NameEn,
		"region":        in.Region,
		"address":       in.Address,
		"star_rating":   in.StarRating,
		"opening_date":  in.OpeningDate,
		"contact_phone": in.ContactPhone,
		"cover_image":   in.CoverImage,
		"album":         in.Album,
	}
	if err := s.Hotels.UpdateWithRoomTypes(hotelID, updates, toRoomTypes(in.RoomTypes)); err != nil {
		return nil, err
	}
	return s.Hotels.FindByID(hotelID)
}

// SubmitForReview 送审：draft/rejected -> pending，条件更新防并发
func (s *HotelService) SubmitForReview(merchantID, hotelID uint) (*entity.Hotel, error) {
	hotel, err := s.ownedHotel(merchantID, hotelID)
	if err != nil {
		return nil, err
	}

	affected, err := s.Hotels.UpdateStatusGuard(hotelID,
		[]entity.HotelStatus{entity.StatusDraft, entity.StatusRejected},
		map[string]any{"status": entity.StatusPending})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: 酒店当前状态为 %s，不能送审", ErrInvalidState, hotel.Status)
	}
	return s.Hotels.FindByID(hotelID)
}

// Delete 商家随时可删除自己的酒店，连同房型一并硬删除
func (s *HotelService) Delete(merchantID, hotelID uint) error {
	if _, err := s.ownedHotel(merchantID, hotelID); err != nil {
		return err
	}
	return s.Hotels.Delete(hotelID)
}

func (s *HotelService) ownedHotel(merchantID, hotelID uint) (*entity.Hotel, error) {
	hotel, err := s.Hotels.FindByID(hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 酒店不存在", ErrNotFound)
		}
		return nil, err
	}
	if hotel.MerchantID != merchantID {
		return nil, fmt.Errorf("%w: 只能操作自己的酒店", ErrForbidden)
	}
	return hotel, nil
}
