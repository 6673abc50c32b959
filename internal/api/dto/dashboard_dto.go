package dto

import "github.com/Behnamfe76/aftersales-ops/internal/domain"

// DealerStatsResponse wraps the dealer rollup.
type DealerStatsResponse struct {
	Dealers []domain.DealerStats `json:"dealers"`
}

// EmployeeStatsResponse wraps the employee rollup.
type EmployeeStatsResponse struct {
	Employees []domain.EmployeeStats `json:"employees"`
}

// RepairStatsResponse wraps the repair-shop rollup.
type RepairStatsResponse struct {
	Repairs []domain.RepairStats `json:"repairs"`
}

// TrendResponse wraps the monthly trend.
type TrendResponse struct {
	Months []domain.MonthBucket `json:"months"`
}

// RefreshResponse reports a completed snapshot refresh.
type RefreshResponse struct {
	TicketCount int `json:"ticket_count"`
}
