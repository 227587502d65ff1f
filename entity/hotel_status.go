package entity

// HotelStatus 酒店审核状态
type HotelStatus string

const (
	StatusDraft    HotelStatus = "draft"
	StatusPending  HotelStatus = "pending"
	StatusApproved HotelStatus = "approved"
	StatusRejected HotelStatus = "rejected"
	StatusOffline  HotelStatus = "offline"
)

// Audit log action types written by the review workflow.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionOffline = "offline"
	ActionOnline  = "online"
)

// transitions holds every legal admin/merchant move; anything absent is illegal.
var transitions = map[HotelStatus][]HotelStatus{
	StatusDraft:    {StatusPending},
	StatusRejected: {StatusPending},
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusOffline},
	StatusOffline:  {StatusApproved},
}

func (s HotelStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected, StatusOffline:
		return true
	}
	return false
}

// CanTransition reports whether a hotel may move from s to target.
func (s HotelStatus) CanTransition(target HotelStatus) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Editable reports whether a merchant may still edit the listing.
func (s HotelStatus) Editable() bool {
	return s == StatusDraft || s == StatusPending || s == StatusRejected
}

// Label is the display name shown in tables and drawers.
func (s HotelStatus) Label() string {
	switch s {
	case StatusDraft:
		return "草稿"
	case StatusPending:
		return "待审核"
	case StatusApproved:
		return "已通过"
	case StatusRejected:
		return "已驳回"
	case StatusOffline:
		return "已下线"
	}
	return string(s)
}

// Color is the badge color used by the frontend status tags.
func (s HotelStatus) Color() string {
	switch s {
	case StatusDraft:
		return "gray"
	case StatusPending:
		return "orange"
	case StatusApproved:
		return "green"
	case StatusRejected:
		return "red"
	case StatusOffline:
		return "purple"
	}
	return "gray"
}
