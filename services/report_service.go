package services

import (
	"github.com/Nagesh2809/cafe-management/repository"
)

type SalesPoint struct {
	Date  string  `json:"date"`
	Sales float64 `json:"sales"`
}

type Stats struct {
	Revenue      float64      `json:"revenue"`
	Orders       int64        `json:"orders"`
	Users        int64        `json:"users"`
	SalesHistory []SalesPoint `json:"sales_history"`
}

type ReportService struct {
	repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

// Stats aggregates revenue, counts and per-day sales. Days appear in
// the order they are first encountered while scanning orders.
func (s *ReportService) Stats() (*Stats, error) {
	orders, err := s.repo.AllOrderHeaders()
	if err != nil {
		return nil, err
	}

	var revenue float64
	byDate := make(map[string]float64)
	var days []string
	for _, o := range orders {
		revenue += o.Total
		d := o.Date.Format("2006-01-02")
		if _, seen := byDate[d]; !seen {
			days = append(days, d)
		}
		byDate[d] += o.Total
	}

	history := make([]SalesPoint, 0, len(days))
	for _, d := range days {
		history = append(history, SalesPoint{Date: d, Sales: byDate[d]})
	}

	orderCount, err := s.repo.CountOrders()
	if err != nil {
		return nil, err
	}
	userCount, err := s.repo.CountUsers()
	if err != nil {
		return nil, err
	}

	return &Stats{
		Revenue:      revenue,
		Orders:       orderCount,
		Users:        userCount,
		SalesHistory: history,
	}, nil
}
