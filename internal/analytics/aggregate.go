package analytics

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
)

// Cost bucket boundaries for repair statistics.
const (
	costRangeLowMax    = 500.0
	costRangeMediumMax = 2000.0
)

// ClosedPredicate decides whether a ticket counts as closed for the
// active/closed employee split.
type ClosedPredicate func(domain.Ticket) bool

// StatusClosed is the canonical closed rule: status code "Z9" or a status
// text containing "closed", case-insensitive.
func StatusClosed(t domain.Ticket) bool {
	return t.StatusCode == "Z9" || strings.Contains(strings.ToLower(t.StatusText), "closed")
}

// StatusApproved is the superseded rule kept for reports that still count
// approved tickets as completed.
func StatusApproved(t domain.Ticket) bool {
	return strings.Contains(strings.ToLower(t.StatusText), "approved")
}

// EmployeeOptions parameterizes the employee reducer. The zero value is not
// usable; start from DefaultEmployeeOptions.
type EmployeeOptions struct {
	Closed ClosedPredicate
}

// DefaultEmployeeOptions applies the canonical closed rule.
func DefaultEmployeeOptions() EmployeeOptions {
	return EmployeeOptions{Closed: StatusClosed}
}

// sortedIDs gives the deterministic iteration order every reducer uses, so
// repeated runs over the same collection produce identical output.
func sortedIDs(tickets domain.TicketCollection) []string {
	ids := make([]string, 0, len(tickets))
	for id := range tickets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ParseAmount parses a decimal cost string, treating anything unparseable as
// zero.
func ParseAmount(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}

// AnalyzeDealers folds the collection into per-dealer statistics, sorted by
// total tickets descending (ties keep first-seen order).
func AnalyzeDealers(tickets domain.TicketCollection) []domain.DealerStats {
	ids := sortedIDs(tickets)

	order := make([]string, 0)
	groups := make(map[string]*domain.DealerStats)
	chassisSeen := make(map[string]map[string]struct{})

	for _, id := range ids {
		t := tickets[id]
		dealer := ResolveDealer(t)
		stats, ok := groups[dealer.ID]
		if !ok {
			stats = &domain.DealerStats{
				DealerID:        dealer.ID,
				DealerName:      dealer.Name,
				TicketsByStatus: make(map[string]int),
				TicketsByType:   make(map[string]int),
				ChassisNumbers:  []string{},
			}
			groups[dealer.ID] = stats
			chassisSeen[dealer.ID] = make(map[string]struct{})
			order = append(order, dealer.ID)
		}
		stats.TotalTickets++
		if t.StatusText != "" {
			stats.TicketsByStatus[t.StatusText]++
		}
		if t.TypeText != "" {
			stats.TicketsByType[t.TypeText]++
		}
		if chassis := NormalizeID(t.ChassisOrSerialID); chassis != "" {
			if _, dup := chassisSeen[dealer.ID][chassis]; !dup {
				chassisSeen[dealer.ID][chassis] = struct{}{}
				stats.ChassisNumbers = append(stats.ChassisNumbers, chassis)
			}
		}
	}

	// Second pass: average time consumed per dealer over tickets that carry a
	// duration.
	for dealerID, stats := range groups {
		times := make([]domain.TimeBreakdown, 0)
		for _, id := range ids {
			t := tickets[id]
			if ResolveDealer(t).ID != dealerID || strings.TrimSpace(t.TimeConsumed) == "" {
				continue
			}
			times = append(times, ParseTimeConsumed(t.TimeConsumed))
		}
		stats.AvgTimeConsumed = AverageTimeBreakdown(times)
	}

	result := make([]domain.DealerStats, 0, len(order))
	for _, dealerID := range order {
		result = append(result, *groups[dealerID])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalTickets > result[j].TotalTickets
	})
	return result
}

// AnalyzeEmployees folds the collection into per-employee statistics using
// the closed rule from opts, sorted by total tickets descending.
func AnalyzeEmployees(tickets domain.TicketCollection, opts EmployeeOptions) []domain.EmployeeStats {
	closed := opts.Closed
	if closed == nil {
		closed = StatusClosed
	}
	ids := sortedIDs(tickets)

	order := make([]string, 0)
	groups := make(map[string]*domain.EmployeeStats)

	for _, id := range ids {
		t := tickets[id]
		employee := ResolveEmployee(t)
		stats, ok := groups[employee.ID]
		if !ok {
			stats = &domain.EmployeeStats{
				EmployeeID:      employee.ID,
				EmployeeName:    employee.Name,
				TicketsByStatus: make(map[string]int),
			}
			groups[employee.ID] = stats
			order = append(order, employee.ID)
		}
		stats.TotalTickets++
		if closed(t) {
			stats.ClosedTickets++
		} else {
			stats.ActiveTickets++
		}
		if strings.TrimSpace(t.ApprovalNumber) == "" {
			stats.PendingApproval++
		}
		if !t.Responded {
			stats.AwaitingResponse++
		}
		if t.StatusText != "" {
			stats.TicketsByStatus[t.StatusText]++
		}
	}

	for employeeID, stats := range groups {
		times := make([]domain.TimeBreakdown, 0)
		for _, id := range ids {
			t := tickets[id]
			if ResolveEmployee(t).ID != employeeID || strings.TrimSpace(t.TimeConsumed) == "" {
				continue
			}
			times = append(times, ParseTimeConsumed(t.TimeConsumed))
		}
		stats.TotalTimeConsumed = SumTimeBreakdowns(times)
		stats.AvgTimePerTicket = AverageTimeBreakdown(times)
	}

	result := make([]domain.EmployeeStats, 0, len(order))
	for _, employeeID := range order {
		result = append(result, *groups[employeeID])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalTickets > result[j].TotalTickets
	})
	return result
}

// AnalyzeRepairs folds the collection into per-repair-shop cost statistics,
// sorted by total cost descending. When a group was first seen through the
// no-repair sentinel but a later ticket carries a real shop name, the real
// name is applied to the whole group.
func AnalyzeRepairs(tickets domain.TicketCollection) []domain.RepairStats {
	ids := sortedIDs(tickets)

	order := make([]string, 0)
	groups := make(map[string]*domain.RepairStats)
	chassisSeen := make(map[string]map[string]struct{})

	for _, id := range ids {
		t := tickets[id]
		repair := ResolveRepair(t)
		stats, ok := groups[repair.ID]
		if !ok {
			stats = &domain.RepairStats{
				RepairID:   repair.ID,
				RepairName: repair.Name,
				CostByType: make(map[string]float64),
			}
			groups[repair.ID] = stats
			chassisSeen[repair.ID] = make(map[string]struct{})
			order = append(order, repair.ID)
		}
		if stats.RepairName == NoRepairAssigned.Name && repair.Name != NoRepairAssigned.Name {
			stats.RepairName = repair.Name
		}

		cost := ParseAmount(t.AmountIncludingTax)
		stats.TicketCount++
		stats.TotalCost += cost
		if t.TypeText != "" {
			stats.CostByType[t.TypeText] += cost
		}
		switch {
		case cost < costRangeLowMax:
			stats.CostRanges.Low++
		case cost < costRangeMediumMax:
			stats.CostRanges.Medium++
		default:
			stats.CostRanges.High++
		}
		if chassis := NormalizeID(t.ChassisOrSerialID); chassis != "" {
			stats.ChassisTicketCount++
			if _, dup := chassisSeen[repair.ID][chassis]; !dup {
				chassisSeen[repair.ID][chassis] = struct{}{}
				stats.UniqueChassisCount++
			}
		}
	}

	result := make([]domain.RepairStats, 0, len(order))
	for _, repairID := range order {
		stats := groups[repairID]
		if stats.TicketCount > 0 {
			stats.AvgCost = stats.TotalCost / float64(stats.TicketCount)
			stats.ChassisTicketRatio = float64(stats.ChassisTicketCount) / float64(stats.TicketCount)
			stats.UniqueChassisRatio = float64(stats.UniqueChassisCount) / float64(stats.TicketCount)
		}
		result = append(result, *stats)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalCost > result[j].TotalCost
	})
	return result
}
