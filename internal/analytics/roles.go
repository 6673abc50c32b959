package analytics

import (
	"strings"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
)

// Sentinel parties substituted when a role is absent or blank. Resolver
// output never carries an empty id or name.
var (
	UnknownDealer    = domain.Party{ID: "unknown", Name: "Unknown Dealer"}
	UnassignedParty  = domain.Party{ID: "unassigned", Name: "Unassigned"}
	NoRepairAssigned = domain.Party{ID: "no-repair", Name: "No Repair Shop Assigned"}
)

// ResolveDealer extracts the dealer party from a ticket, substituting the
// unknown-dealer sentinel when the role is missing or its partner id is
// blank. A blank-but-present field is treated the same as an absent one:
// values are trimmed before the emptiness check.
func ResolveDealer(t domain.Ticket) domain.Party {
	return resolveParty(t, domain.RoleCodeDealer, UnknownDealer)
}

// ResolveEmployee extracts the internal-employee party, sentinel
// "unassigned".
func ResolveEmployee(t domain.Ticket) domain.Party {
	return resolveParty(t, domain.RoleCodeEmployee, UnassignedParty)
}

// ResolveRepair extracts the repair-shop party, sentinel "no-repair".
func ResolveRepair(t domain.Ticket) domain.Party {
	return resolveParty(t, domain.RoleCodeRepair, NoRepairAssigned)
}

func resolveParty(t domain.Ticket, roleCode string, sentinel domain.Party) domain.Party {
	role, ok := t.Roles[roleCode]
	if !ok {
		return sentinel
	}
	id := strings.TrimSpace(role.PartnerID)
	if id == "" {
		return sentinel
	}
	name := strings.TrimSpace(role.PartnerName)
	if name == "" {
		name = sentinel.Name
	}
	return domain.Party{ID: id, Name: name}
}
