package analytics

import (
	"strings"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
)

// UnmappedStatus is the first-level status of tickets no mapping entry or
// status text can classify.
const UnmappedStatus = "Unmapped"

// FirstLevelStatus classifies a ticket into its coarse status category using
// the admin-edited mapping table. Lookup order: status code, then status
// text; within a matched entry, FirstLevelStatus wins over TicketStatusText.
// With no usable entry the raw status text is returned as-is. The function is
// total: a ticket with blank status fields and an empty mapping classifies as
// UnmappedStatus.
func FirstLevelStatus(t domain.Ticket, mapping domain.StatusMapping) string {
	result := ""
	if entry, ok := lookupStatus(t, mapping); ok {
		if entry.FirstLevelStatus != "" {
			result = entry.FirstLevelStatus
		} else if entry.TicketStatusText != "" {
			result = entry.TicketStatusText
		}
	}
	if result == "" {
		result = t.StatusText
	}
	result = strings.TrimSpace(result)
	if result == "" {
		return UnmappedStatus
	}
	return result
}

func lookupStatus(t domain.Ticket, mapping domain.StatusMapping) (domain.StatusMappingEntry, bool) {
	if mapping == nil {
		return domain.StatusMappingEntry{}, false
	}
	if t.StatusCode != "" {
		if entry, ok := mapping[t.StatusCode]; ok {
			return entry, true
		}
	}
	if t.StatusText != "" {
		if entry, ok := mapping[t.StatusText]; ok {
			return entry, true
		}
	}
	return domain.StatusMappingEntry{}, false
}
