package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []HotelStatus{
	StatusDraft, StatusPending, StatusApproved, StatusRejected, StatusOffline,
}

func TestStatusValid(t *testing.T) {
	for _, s := range allStatuses {
		assert.True(t, s.Valid(), "%s", s)
	}
	assert.False(t, HotelStatus("online").Valid())
	assert.False(t, HotelStatus("").Valid())
}

func TestCanTransition(t *testing.T) {
	legal := map[HotelStatus][]HotelStatus{
		StatusDraft:    {StatusPending},
		StatusRejected: {StatusPending},
		StatusPending:  {StatusApproved, StatusRejected},
		StatusApproved: {StatusOffline},
		StatusOffline:  {StatusApproved},
	}

	// 表里没有的组合一律非法
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := false
			for _, ok := range legal[from] {
				if ok == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestEditable(t *testing.T) {
	assert.True(t, StatusDraft.Editable())
	assert.True(t, StatusPending.Editable())
	assert.True(t, StatusRejected.Editable())
	assert.False(t, StatusApproved.Editable())
	assert.False(t, StatusOffline.Editable())
}

func TestLabelAndColorExhaustive(t *testing.T) {
	// 新增状态时这里必须跟着补展示映射
	for _, s := range allStatuses {
		assert.NotEqual(t, string(s), s.Label(), "missing label for %s", s)
		assert.NotEmpty(t, s.Color(), "missing color for %s", s)
	}
}
