package analytics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
)

const minutesPerDay = 24 * 60

var (
	daysPattern    = regexp.MustCompile(`(\d+)\s*D`)
	hoursPattern   = regexp.MustCompile(`(\d+)\s*H`)
	minutesPattern = regexp.MustCompile(`(\d+)\s*M`)
)

// ParseTimeConsumed parses the upstream "{n}D {n}H {n}M" duration notation.
// Each unit token is extracted independently, so token order does not matter
// and a missing token contributes zero. Empty input yields the zero
// breakdown.
func ParseTimeConsumed(raw string) domain.TimeBreakdown {
	days := firstTokenValue(daysPattern, raw)
	hours := firstTokenValue(hoursPattern, raw)
	minutes := firstTokenValue(minutesPattern, raw)
	total := days*minutesPerDay + hours*60 + minutes
	return domain.TimeBreakdown{
		Days:         days,
		Hours:        hours,
		Minutes:      minutes,
		TotalMinutes: total,
	}
}

func firstTokenValue(pattern *regexp.Regexp, raw string) int {
	match := pattern.FindStringSubmatch(raw)
	if match == nil {
		return 0
	}
	value, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return value
}

// BreakdownFromMinutes redecomposes a total-minutes value into the canonical
// days/hours/minutes form. Negative input is clamped to zero.
func BreakdownFromMinutes(totalMinutes int) domain.TimeBreakdown {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return domain.TimeBreakdown{
		Days:         totalMinutes / minutesPerDay,
		Hours:        (totalMinutes % minutesPerDay) / 60,
		Minutes:      totalMinutes % 60,
		TotalMinutes: totalMinutes,
	}
}

// SumTimeBreakdowns adds breakdowns and redecomposes the summed total.
func SumTimeBreakdowns(times []domain.TimeBreakdown) domain.TimeBreakdown {
	total := 0
	for _, t := range times {
		total += t.TotalMinutes
	}
	return BreakdownFromMinutes(total)
}

// AverageTimeBreakdown computes the floor mean of the total minutes and
// redecomposes it. An empty slice yields the zero breakdown.
func AverageTimeBreakdown(times []domain.TimeBreakdown) domain.TimeBreakdown {
	if len(times) == 0 {
		return domain.TimeBreakdown{}
	}
	total := 0
	for _, t := range times {
		total += t.TotalMinutes
	}
	return BreakdownFromMinutes(total / len(times))
}

// FormatTimeBreakdown renders non-zero components as "{n}d {n}h {n}m"; an
// all-zero breakdown renders as "0m".
func FormatTimeBreakdown(t domain.TimeBreakdown) string {
	parts := make([]string, 0, 3)
	if t.Days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", t.Days))
	}
	if t.Hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", t.Hours))
	}
	if t.Minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", t.Minutes))
	}
	if len(parts) == 0 {
		return "0m"
	}
	return strings.Join(parts, " ")
}
