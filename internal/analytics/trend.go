package analytics

import (
	"strings"
	"time"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
)

var createdOnLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// ParseCreatedOn parses the ticket creation date, accepting ISO and
// dd/mm/yyyy forms. The boolean reports success; invalid dates simply drop
// the ticket out of date-bucketed views, never error.
func ParseCreatedOn(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range createdOnLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

const monthKeyLayout = "2006-01"

// MonthlyTrend buckets ticket creations and derived completions per calendar
// month over [start, now]. A completion instant is createdOn plus the parsed
// time-consumed duration; tickets without a duration only count as created.
// Months with no completions report an average of zero.
func MonthlyTrend(tickets domain.TicketCollection, start, now time.Time) []domain.MonthBucket {
	startMonth := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	endMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if endMonth.Before(startMonth) {
		return []domain.MonthBucket{}
	}

	type bucket struct {
		created        int
		completed      int
		minutesToClose int
	}
	buckets := make(map[string]*bucket)
	keys := make([]string, 0)
	for month := startMonth; !month.After(endMonth); month = month.AddDate(0, 1, 0) {
		key := month.Format(monthKeyLayout)
		buckets[key] = &bucket{}
		keys = append(keys, key)
	}

	inWindow := func(t time.Time) (string, bool) {
		month := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		if month.Before(startMonth) || month.After(endMonth) {
			return "", false
		}
		return month.Format(monthKeyLayout), true
	}

	for _, id := range sortedIDs(tickets) {
		t := tickets[id]
		created, ok := ParseCreatedOn(t.CreatedOn)
		if !ok {
			continue
		}
		if key, in := inWindow(created); in {
			buckets[key].created++
		}
		if strings.TrimSpace(t.TimeConsumed) == "" {
			continue
		}
		consumed := ParseTimeConsumed(t.TimeConsumed)
		completedAt := created.Add(time.Duration(consumed.TotalMinutes) * time.Minute)
		if key, in := inWindow(completedAt); in {
			buckets[key].completed++
			buckets[key].minutesToClose += consumed.TotalMinutes
		}
	}

	trend := make([]domain.MonthBucket, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		avgHours := 0.0
		if b.completed > 0 {
			avgHours = float64(b.minutesToClose) / 60.0 / float64(b.completed)
		}
		trend = append(trend, domain.MonthBucket{
			Month:              key,
			Created:            b.created,
			Completed:          b.completed,
			AvgHoursToComplete: avgHours,
		})
	}
	return trend
}
