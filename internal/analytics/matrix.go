package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
)

// statusColumnPriority is the canonical leading column order; statuses
// discovered beyond it are appended alphabetically.
var statusColumnPriority = []string{"Closed", "Open", "Parts", "Reparing", "Suspended"}

// MatrixRowSpec defines one matrix row: either every ticket created in
// calendar year Year, or — when WithinMonths is positive — every ticket
// created within that many months of the reference time. WithinMonths rows
// are the age-bucketed ones that also report the distinct open-ticket count.
type MatrixRowSpec struct {
	Label        string
	Year         int
	WithinMonths int
}

// DefaultMatrixRows yields the standard report layout: the two previous
// calendar years, the current year, and 3/6/12-month age buckets.
func DefaultMatrixRows(now time.Time) []MatrixRowSpec {
	year := now.Year()
	return []MatrixRowSpec{
		{Label: fmt.Sprintf("Created in %d", year-2), Year: year - 2},
		{Label: fmt.Sprintf("Created in %d", year-1), Year: year - 1},
		{Label: fmt.Sprintf("Created in %d", year), Year: year},
		{Label: "Last 3 months", WithinMonths: 3},
		{Label: "Last 6 months", WithinMonths: 6},
		{Label: "Last 12 months", WithinMonths: 12},
	}
}

// BuildStatusMatrix computes the status×age matrix over the tickets whose
// type matches claimType (an empty claimType keeps every ticket). Columns are
// the discovered first-level statuses in priority-then-alphabetical order.
// Percentages are computed against each row's own total with one decimal
// place; a zero-total row reports "0.0" everywhere.
func BuildStatusMatrix(tickets domain.TicketCollection, mapping domain.StatusMapping, claimType string, rows []MatrixRowSpec, now time.Time) domain.StatusMatrix {
	ids := sortedIDs(tickets)

	type entry struct {
		ticket  domain.Ticket
		created time.Time
		status  string
	}
	entries := make([]entry, 0, len(ids))
	discovered := make(map[string]struct{})
	for _, id := range ids {
		t := tickets[id]
		if claimType != "" && t.TypeText != claimType {
			continue
		}
		created, ok := ParseCreatedOn(t.CreatedOn)
		if !ok {
			continue
		}
		status := FirstLevelStatus(t, mapping)
		discovered[status] = struct{}{}
		entries = append(entries, entry{ticket: t, created: created, status: status})
	}

	columns := orderStatusColumns(discovered)

	matrixRows := make([]domain.MatrixRow, 0, len(rows))
	for _, spec := range rows {
		row := domain.MatrixRow{
			Label:             spec.Label,
			StatusCounts:      make(map[string]int),
			StatusPercentages: make(map[string]string),
			AgeBucketed:       spec.WithinMonths > 0,
		}
		openNames := make(map[string]struct{})
		for _, e := range entries {
			if !rowContains(spec, e.created, now) {
				continue
			}
			row.Total++
			row.StatusCounts[e.status]++
			if spec.WithinMonths > 0 && !strings.Contains(strings.ToLower(e.status), "close") {
				name := strings.TrimSpace(e.ticket.TicketName)
				if name == "" {
					name = e.ticket.TicketID
				}
				openNames[name] = struct{}{}
			}
		}
		for _, status := range columns {
			if row.Total == 0 {
				row.StatusPercentages[status] = "0.0"
				continue
			}
			percent := float64(row.StatusCounts[status]) * 100 / float64(row.Total)
			row.StatusPercentages[status] = fmt.Sprintf("%.1f", percent)
		}
		row.OpenDistinct = len(openNames)
		matrixRows = append(matrixRows, row)
	}

	return domain.StatusMatrix{Columns: columns, Rows: matrixRows}
}

func rowContains(spec MatrixRowSpec, created, now time.Time) bool {
	if spec.WithinMonths > 0 {
		earliest := now.AddDate(0, -spec.WithinMonths, 0)
		return !created.Before(earliest) && !created.After(now)
	}
	return created.Year() == spec.Year
}

func orderStatusColumns(discovered map[string]struct{}) []string {
	columns := make([]string, 0, len(discovered))
	remaining := make(map[string]struct{}, len(discovered))
	for status := range discovered {
		remaining[status] = struct{}{}
	}
	for _, status := range statusColumnPriority {
		if _, ok := remaining[status]; ok {
			columns = append(columns, status)
			delete(remaining, status)
		}
	}
	rest := make([]string, 0, len(remaining))
	for status := range remaining {
		rest = append(rest, status)
	}
	sort.Strings(rest)
	return append(columns, rest...)
}
