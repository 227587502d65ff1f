package services

import (
	"time"

	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/entity"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/repository"

	"golang.org/x/sync/errgroup"
)

// StatsService 仪表盘统计与七日审核趋势，每次调用都重新计算
type StatsService struct {
	Hotels *repository.HotelRepository
	Logs   *repository.AuditLogRepository
}

func NewStatsService(hotels *repository.HotelRepository, logs *repository.AuditLogRepository) *StatsService {
	return &StatsService{Hotels: hotels, Logs: logs}
}

type DashboardStats struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
	Offline  int64 `json:"offline"`
	Total    int64 `json:"total"`
}

type TrendPoint struct {
	Date     string `json:"date"` // MM-DD
	Approved int    `json:"approved"`
	Rejected int    `json:"rejected"`
	Total    int    `json:"total"`
}

// Dashboard 四个状态计数并发查询，任一失败整体失败，不返回部分结果
func (s *StatsService) Dashboard() (*DashboardStats, error) {
	var stats DashboardStats
	var g errgroup.Group

	count := func(status entity.HotelStatus, dst *int64) func() error {
		return func() error {
			n, err := s.Hotels.CountByStatus(status)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		}
	}

	g.Go(count(entity.StatusPending, &stats.Pending))
	g.Go(count(entity.StatusApproved, &stats.Approved))
	g.Go(count(entity.StatusRejected, &stats.Rejected))
	g.Go(count(entity.StatusOffline, &stats.Offline))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	stats.Total = stats.Pending + stats.Approved + stats.Rejected + stats.Offline
	return &stats, nil
}

// Trend 最近 windowDays 天（含今天）每天的 approve/reject 次数，
// 无记录的天补零，从最早到今天排列
func (s *StatsService) Trend(windowDays int) ([]TrendPoint, error) {
	if windowDays <= 0 {
		windowDays = 7
	}
	// 点位用 MM-DD 作键，窗口跨年会撞键，上限一个月
	if windowDays > 31 {
		windowDays = 31
	}

	now := time.Now()
	// 窗口起点取第一天的本地零点，保证整天计入
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(windowDays - 1))

	logs, err := s.Logs.FindDecisionsSince(start)
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, windowDays)
	index := make(map[string]*TrendPoint, windowDays)
	for i := 0; i < windowDays; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format("01-02")
		points[i] = TrendPoint{Date: key}
		index[key] = &points[i]
	}

	for _, row := range logs {
		point, ok := index[row.CreatedAt.Format("01-02")]
		if !ok {
			continue
		}
		switch row.ActionType {
		case entity.ActionApprove:
			point.Approved++
		case entity.ActionReject:
			point.Rejected++
		}
		point.Total++
	}

	return points, nil
}
