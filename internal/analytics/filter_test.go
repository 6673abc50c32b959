package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
)

func ticketWithDealer(dealerID string) domain.Ticket {
	return domain.Ticket{Roles: map[string]domain.PartyRole{
		domain.RoleCodeDealer: {PartnerID: dealerID, PartnerName: "Dealer " + dealerID},
	}}
}

func TestFilterByDisplaySettingsNilSettingsIsNoOp(t *testing.T) {
	tickets := domain.TicketCollection{
		"t1": ticketWithDealer("D1"),
		"t2": ticketWithDealer("D2"),
	}
	got := FilterByDisplaySettings(tickets, nil, DefaultFilterOptions())
	assert.Equal(t, tickets, got)
}

func TestFilterByDisplaySettings(t *testing.T) {
	tickets := domain.TicketCollection{
		"t1": ticketWithDealer("D1"),
		"t2": ticketWithDealer("D2"),
		"t3": {}, // no dealer role, resolves to the unknown sentinel
	}
	settings := domain.NewDisplaySettings()
	settings.Dealerships["D2"] = false

	got := FilterByDisplaySettings(tickets, &settings, DefaultFilterOptions())
	require.Len(t, got, 2)
	assert.Contains(t, got, "t1")
	assert.Contains(t, got, "t3")

	// Hiding the sentinel hides role-less tickets too.
	settings.Dealerships[UnknownDealer.ID] = false
	got = FilterByDisplaySettings(tickets, &settings, DefaultFilterOptions())
	require.Len(t, got, 1)
	assert.Contains(t, got, "t1")
}

func TestFilterByDisplaySettingsDisabledCheckIgnoresFlags(t *testing.T) {
	tickets := domain.TicketCollection{"t1": ticketWithDealer("D1")}
	settings := domain.NewDisplaySettings()
	settings.Dealerships["D1"] = false

	got := FilterByDisplaySettings(tickets, &settings, FilterOptions{})
	assert.Len(t, got, 1)
}

func TestFilterByDisplaySettingsEmployeeCheckOptIn(t *testing.T) {
	tickets := domain.TicketCollection{
		"t1": {Roles: map[string]domain.PartyRole{
			domain.RoleCodeEmployee: {PartnerID: "E1", PartnerName: "Pat"},
		}},
	}
	settings := domain.NewDisplaySettings()
	settings.Employees["E1"] = false

	// Default options leave the employee check off.
	assert.Len(t, FilterByDisplaySettings(tickets, &settings, DefaultFilterOptions()), 1)

	opts := DefaultFilterOptions()
	opts.ApplyEmployeeVisibility = true
	assert.Len(t, FilterByDisplaySettings(tickets, &settings, opts), 0)
}

func TestFilterByFirstLevelStatus(t *testing.T) {
	mapping := domain.StatusMapping{
		"Z9": {FirstLevelStatus: "Closed"},
	}
	tickets := domain.TicketCollection{
		"t1": {StatusCode: "Z9", StatusText: "Done"},
		"t2": {StatusCode: "A1", StatusText: "Open"},
		"t3": {StatusCode: "Z9", StatusText: "Finished"},
	}

	got := FilterByFirstLevelStatus(tickets, mapping, []string{"CLOSED"})
	require.Len(t, got, 1)
	assert.Contains(t, got, "t2")
}

func TestFilterByFirstLevelStatusNoOpContracts(t *testing.T) {
	tickets := domain.TicketCollection{"t1": {StatusText: "Open"}}
	assert.Equal(t, tickets, FilterByFirstLevelStatus(tickets, nil, []string{"open"}))
	assert.Equal(t, tickets, FilterByFirstLevelStatus(tickets, domain.StatusMapping{}, nil))
}
