package analytics

import (
	"strings"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
)

// FilterOptions selects which visibility checks apply. There is no implicit
// default: callers pass explicit options, usually starting from
// DefaultFilterOptions.
type FilterOptions struct {
	ApplyDealershipVisibility bool
	ApplyEmployeeVisibility   bool
	ApplyRepairVisibility     bool
}

// DefaultFilterOptions enables dealer and repair visibility checks and leaves
// employee visibility off, matching the dashboard's standard views.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		ApplyDealershipVisibility: true,
		ApplyEmployeeVisibility:   false,
		ApplyRepairVisibility:     true,
	}
}

// FilterByDisplaySettings drops tickets whose resolved dealer, employee or
// repair shop has been hidden. Each check runs only when enabled in opts; a
// ticket is retained when every enabled check passes. A nil settings pointer
// disables filtering entirely and returns the input collection unchanged.
func FilterByDisplaySettings(tickets domain.TicketCollection, settings *domain.DisplaySettings, opts FilterOptions) domain.TicketCollection {
	if settings == nil {
		return tickets
	}
	filtered := make(domain.TicketCollection, len(tickets))
	for id, t := range tickets {
		if opts.ApplyDealershipVisibility && !domain.Visibility(settings.Dealerships, ResolveDealer(t).ID) {
			continue
		}
		if opts.ApplyEmployeeVisibility && !domain.Visibility(settings.Employees, ResolveEmployee(t).ID) {
			continue
		}
		if opts.ApplyRepairVisibility && !domain.Visibility(settings.Repairs, ResolveRepair(t).ID) {
			continue
		}
		filtered[id] = t
	}
	return filtered
}

// FilterByFirstLevelStatus drops tickets whose first-level status matches the
// exclusion list, case-insensitively. A nil mapping or an empty exclusion
// list returns the input unchanged.
func FilterByFirstLevelStatus(tickets domain.TicketCollection, mapping domain.StatusMapping, excludedFirstLevelStatuses []string) domain.TicketCollection {
	if mapping == nil || len(excludedFirstLevelStatuses) == 0 {
		return tickets
	}
	excluded := make(map[string]struct{}, len(excludedFirstLevelStatuses))
	for _, status := range excludedFirstLevelStatuses {
		excluded[strings.ToLower(status)] = struct{}{}
	}
	filtered := make(domain.TicketCollection, len(tickets))
	for id, t := range tickets {
		status := strings.ToLower(FirstLevelStatus(t, mapping))
		if _, drop := excluded[status]; drop {
			continue
		}
		filtered[id] = t
	}
	return filtered
}
