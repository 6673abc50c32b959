package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Behnamfe76/aftersales-ops/internal/analytics"
	"github.com/Behnamfe76/aftersales-ops/internal/domain"
)

// ExportService renders aggregated statistics into an xlsx workbook.
type ExportService struct{}

// NewExportService constructs the service.
func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildWorkbook writes one sheet per entity kind and returns the xlsx bytes.
func (s *ExportService) BuildWorkbook(dealers []domain.DealerStats, employees []domain.EmployeeStats, repairs []domain.RepairStats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeDealerSheet(f, dealers); err != nil {
		return nil, err
	}
	if err := writeEmployeeSheet(f, employees); err != nil {
		return nil, err
	}
	if err := writeRepairSheet(f, repairs); err != nil {
		return nil, err
	}

	// Drop the default sheet so the workbook opens on Dealers.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeDealerSheet(f *excelize.File, dealers []domain.DealerStats) error {
	const sheet = "Dealers"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headers := []any{"Dealer ID", "Dealer Name", "Total Tickets", "Distinct Chassis", "Avg Time Consumed"}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}
	for i, d := range dealers {
		row := []any{
			d.DealerID,
			d.DealerName,
			d.TotalTickets,
			len(d.ChassisNumbers),
			analytics.FormatTimeBreakdown(d.AvgTimeConsumed),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeEmployeeSheet(f *excelize.File, employees []domain.EmployeeStats) error {
	const sheet = "Employees"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headers := []any{"Employee ID", "Employee Name", "Total", "Active", "Closed", "Pending Approval", "Awaiting Response", "Avg Time Per Ticket"}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}
	for i, e := range employees {
		row := []any{
			e.EmployeeID,
			e.EmployeeName,
			e.TotalTickets,
			e.ActiveTickets,
			e.ClosedTickets,
			e.PendingApproval,
			e.AwaitingResponse,
			analytics.FormatTimeBreakdown(e.AvgTimePerTicket),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRepairSheet(f *excelize.File, repairs []domain.RepairStats) error {
	const sheet = "Repairs"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headers := []any{"Repair ID", "Repair Name", "Tickets", "Total Cost", "Avg Cost", "Low", "Medium", "High", "Unique Chassis"}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}
	for i, r := range repairs {
		row := []any{
			r.RepairID,
			r.RepairName,
			r.TicketCount,
			r.TotalCost,
			r.AvgCost,
			r.CostRanges.Low,
			r.CostRanges.Medium,
			r.CostRanges.High,
			r.UniqueChassisCount,
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

