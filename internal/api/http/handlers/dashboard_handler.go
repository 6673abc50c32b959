package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Behnamfe76/aftersales-ops/internal/api/dto"
	"github.com/Behnamfe76/aftersales-ops/internal/service"
)

// DashboardHandler serves the aggregated dashboard views.
type DashboardHandler struct {
	dashboard *service.DashboardService
	export    *service.ExportService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *service.DashboardService, export *service.ExportService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, export: export}
}

// DealerStats GET /dashboard/dealers.
func (h *DashboardHandler) DealerStats(c *fiber.Ctx) error {
	stats, err := h.dashboard.DealerStats(c.UserContext(), h.queryOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.DealerStatsResponse{Dealers: stats})
}

// EmployeeStats GET /dashboard/employees.
func (h *DashboardHandler) EmployeeStats(c *fiber.Ctx) error {
	stats, err := h.dashboard.EmployeeStats(c.UserContext(), h.queryOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.EmployeeStatsResponse{Employees: stats})
}

// RepairStats GET /dashboard/repairs.
func (h *DashboardHandler) RepairStats(c *fiber.Ctx) error {
	stats, err := h.dashboard.RepairStats(c.UserContext(), h.queryOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.RepairStatsResponse{Repairs: stats})
}

// MonthlyTrend GET /dashboard/trends/monthly.
func (h *DashboardHandler) MonthlyTrend(c *fiber.Ctx) error {
	months, err := h.dashboard.MonthlyTrend(c.UserContext(), h.queryOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.TrendResponse{Months: months})
}

// StatusMatrix GET /dashboard/matrix.
func (h *DashboardHandler) StatusMatrix(c *fiber.Ctx) error {
	matrix, err := h.dashboard.StatusMatrix(c.UserContext(), c.Query("claim_type"), h.queryOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(matrix)
}

// Refresh POST /dashboard/refresh.
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	count, err := h.dashboard.Refresh(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.RefreshResponse{TicketCount: count})
}

// Export GET /dashboard/export streams the stats workbook.
func (h *DashboardHandler) Export(c *fiber.Ctx) error {
	ctx := c.UserContext()
	opts := h.queryOptions(c)

	dealers, err := h.dashboard.DealerStats(ctx, opts)
	if err != nil {
		return err
	}
	employees, err := h.dashboard.EmployeeStats(ctx, opts)
	if err != nil {
		return err
	}
	repairs, err := h.dashboard.RepairStats(ctx, opts)
	if err != nil {
		return err
	}

	workbook, err := h.export.BuildWorkbook(dealers, employees, repairs)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="aftersales-stats.xlsx"`)
	return c.Send(workbook)
}

func (h *DashboardHandler) queryOptions(c *fiber.Ctx) service.QueryOptions {
	opts := h.dashboard.DefaultQueryOptions()
	if raw := c.Query("exclude_statuses"); raw != "" {
		parts := strings.Split(raw, ",")
		statuses := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				statuses = append(statuses, trimmed)
			}
		}
		opts.ExcludedStatuses = statuses
	}
	if raw := c.Query("dealer_visibility"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			opts.Visibility.ApplyDealershipVisibility = parsed
		}
	}
	if raw := c.Query("employee_visibility"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			opts.Visibility.ApplyEmployeeVisibility = parsed
		}
	}
	if raw := c.Query("repair_visibility"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			opts.Visibility.ApplyRepairVisibility = parsed
		}
	}
	if raw := c.Query("months"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			opts.TrendMonths = parsed
		}
	}
	return opts
}
