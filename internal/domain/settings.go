package domain

// VisibilityCategory identifies one of the three display-settings maps.
type VisibilityCategory string

const (
	VisibilityDealerships VisibilityCategory = "dealerships"
	VisibilityEmployees   VisibilityCategory = "employees"
	VisibilityRepairs     VisibilityCategory = "repairs"
)

// DisplaySettings holds per-entity visibility flags. A missing key means the
// entity is visible (default-true semantics).
type DisplaySettings struct {
	Dealerships map[string]bool `json:"dealerships"`
	Employees   map[string]bool `json:"employees"`
	Repairs     map[string]bool `json:"repairs"`
}

// NewDisplaySettings returns settings with empty maps, i.e. everything
// visible.
func NewDisplaySettings() DisplaySettings {
	return DisplaySettings{
		Dealerships: make(map[string]bool),
		Employees:   make(map[string]bool),
		Repairs:     make(map[string]bool),
	}
}

// Category returns the map for the given category, or nil if the category is
// unknown.
func (s DisplaySettings) Category(category VisibilityCategory) map[string]bool {
	switch category {
	case VisibilityDealerships:
		return s.Dealerships
	case VisibilityEmployees:
		return s.Employees
	case VisibilityRepairs:
		return s.Repairs
	default:
		return nil
	}
}

// Visibility resolves the flag for key within the given sparse map, applying
// the default-true contract when the key is absent.
func Visibility(flags map[string]bool, key string) bool {
	if flags == nil {
		return true
	}
	visible, ok := flags[key]
	if !ok {
		return true
	}
	return visible
}

// StatusMappingEntry is one row of the admin-edited status mapping table.
type StatusMappingEntry struct {
	TicketStatusText string `json:"ticketStatusText"`
	FirstLevelStatus string `json:"firstLevelStatus"`
}

// StatusMapping maps a raw status code (or, as fallback key space, status
// text) to its classification entry.
type StatusMapping map[string]StatusMappingEntry
