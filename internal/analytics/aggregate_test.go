package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
)

func scenarioTickets() domain.TicketCollection {
	return domain.TicketCollection{
		"a": {
			TicketID:           "a",
			AmountIncludingTax: "450",
			StatusText:         "Open",
			TypeText:           "Warranty",
			Roles: map[string]domain.PartyRole{
				domain.RoleCodeDealer: {PartnerID: "D1", PartnerName: "Acme"},
			},
		},
		"b": {
			TicketID:           "b",
			AmountIncludingTax: "2500",
			StatusText:         "Closed",
			TypeText:           "Warranty",
			Roles: map[string]domain.PartyRole{
				domain.RoleCodeDealer: {PartnerID: "D1", PartnerName: "Acme"},
			},
		},
		"c": {
			TicketID:           "c",
			AmountIncludingTax: "abc",
			StatusText:         "Open",
			TypeText:           "Goodwill",
		},
	}
}

func TestAnalyzeDealersScenario(t *testing.T) {
	stats := AnalyzeDealers(scenarioTickets())
	require.Len(t, stats, 2)

	assert.Equal(t, "D1", stats[0].DealerID)
	assert.Equal(t, "Acme", stats[0].DealerName)
	assert.Equal(t, 2, stats[0].TotalTickets)
	assert.Equal(t, 1, stats[0].TicketsByStatus["Open"])
	assert.Equal(t, 1, stats[0].TicketsByStatus["Closed"])
	assert.Equal(t, 2, stats[0].TicketsByType["Warranty"])

	assert.Equal(t, UnknownDealer.ID, stats[1].DealerID)
	assert.Equal(t, 1, stats[1].TotalTickets)
}

func TestAnalyzeDealersChassisDedup(t *testing.T) {
	tickets := domain.TicketCollection{
		"a": {ChassisOrSerialID: "WDB-123", Roles: map[string]domain.PartyRole{
			domain.RoleCodeDealer: {PartnerID: "D1", PartnerName: "Acme"},
		}},
		"b": {ChassisOrSerialID: "WDB123", Roles: map[string]domain.PartyRole{
			domain.RoleCodeDealer: {PartnerID: "D1", PartnerName: "Acme"},
		}},
		"c": {ChassisOrSerialID: "XYZ", Roles: map[string]domain.PartyRole{
			domain.RoleCodeDealer: {PartnerID: "D1", PartnerName: "Acme"},
		}},
	}
	stats := AnalyzeDealers(tickets)
	require.Len(t, stats, 1)
	assert.ElementsMatch(t, []string{"WDB123", "XYZ"}, stats[0].ChassisNumbers)
}

func TestAnalyzeDealersAvgTimeConsumed(t *testing.T) {
	tickets := domain.TicketCollection{
		"a": {TimeConsumed: "1H", Roles: map[string]domain.PartyRole{
			domain.RoleCodeDealer: {PartnerID: "D1", PartnerName: "Acme"},
		}},
		"b": {TimeConsumed: "2H", Roles: map[string]domain.PartyRole{
			domain.RoleCodeDealer: {PartnerID: "D1", PartnerName: "Acme"},
		}},
		"c": {Roles: map[string]domain.PartyRole{ // no duration, excluded from the average
			domain.RoleCodeDealer: {PartnerID: "D1", PartnerName: "Acme"},
		}},
	}
	stats := AnalyzeDealers(tickets)
	require.Len(t, stats, 1)
	assert.Equal(t, 90, stats[0].AvgTimeConsumed.TotalMinutes)
}

func TestAnalyzeEmployees(t *testing.T) {
	tickets := domain.TicketCollection{
		"a": {StatusCode: "Z9", StatusText: "Done", ApprovalNumber: "AP1", Responded: true,
			Roles: map[string]domain.PartyRole{
				domain.RoleCodeEmployee: {PartnerID: "E1", PartnerName: "Pat"},
			}},
		"b": {StatusCode: "A1", StatusText: "Case closed by customer", Responded: false,
			Roles: map[string]domain.PartyRole{
				domain.RoleCodeEmployee: {PartnerID: "E1", PartnerName: "Pat"},
			}},
		"c": {StatusCode: "A1", StatusText: "In progress", TimeConsumed: "2H",
			Roles: map[string]domain.PartyRole{
				domain.RoleCodeEmployee: {PartnerID: "E1", PartnerName: "Pat"},
			}},
		"d": {StatusText: "Open"},
	}

	stats := AnalyzeEmployees(tickets, DefaultEmployeeOptions())
	require.Len(t, stats, 2)

	pat := stats[0]
	assert.Equal(t, "E1", pat.EmployeeID)
	assert.Equal(t, 3, pat.TotalTickets)
	assert.Equal(t, 2, pat.ClosedTickets) // Z9 code plus "closed" substring
	assert.Equal(t, 1, pat.ActiveTickets)
	assert.Equal(t, 2, pat.PendingApproval)
	assert.Equal(t, 2, pat.AwaitingResponse)
	assert.Equal(t, 120, pat.TotalTimeConsumed.TotalMinutes)
	assert.Equal(t, 120, pat.AvgTimePerTicket.TotalMinutes)

	assert.Equal(t, UnassignedParty.ID, stats[1].EmployeeID)
}

func TestAnalyzeEmployeesCustomClosedRule(t *testing.T) {
	tickets := domain.TicketCollection{
		"a": {StatusText: "Approved by dealer", Roles: map[string]domain.PartyRole{
			domain.RoleCodeEmployee: {PartnerID: "E1", PartnerName: "Pat"},
		}},
	}
	stats := AnalyzeEmployees(tickets, EmployeeOptions{Closed: StatusApproved})
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].ClosedTickets)

	stats = AnalyzeEmployees(tickets, DefaultEmployeeOptions())
	assert.Equal(t, 0, stats[0].ClosedTickets)
}

func TestAnalyzeRepairsCostBuckets(t *testing.T) {
	tickets := domain.TicketCollection{
		"a": {AmountIncludingTax: "450", Roles: map[string]domain.PartyRole{
			domain.RoleCodeRepair: {PartnerID: "R1", PartnerName: "Shop"},
		}},
		"b": {AmountIncludingTax: "500", Roles: map[string]domain.PartyRole{
			domain.RoleCodeRepair: {PartnerID: "R1", PartnerName: "Shop"},
		}},
		"c": {AmountIncludingTax: "2000", Roles: map[string]domain.PartyRole{
			domain.RoleCodeRepair: {PartnerID: "R1", PartnerName: "Shop"},
		}},
		"d": {AmountIncludingTax: "abc", Roles: map[string]domain.PartyRole{
			domain.RoleCodeRepair: {PartnerID: "R1", PartnerName: "Shop"},
		}},
	}
	stats := AnalyzeRepairs(tickets)
	require.Len(t, stats, 1)

	r := stats[0]
	assert.Equal(t, 4, r.TicketCount)
	assert.Equal(t, 2950.0, r.TotalCost)
	assert.Equal(t, 2950.0/4, r.AvgCost)
	// Unparseable cost lands in the low bucket as zero.
	assert.Equal(t, 2, r.CostRanges.Low)
	assert.Equal(t, 1, r.CostRanges.Medium)
	assert.Equal(t, 1, r.CostRanges.High)
	assert.Equal(t, r.TicketCount, r.CostRanges.Low+r.CostRanges.Medium+r.CostRanges.High)
}

func TestAnalyzeRepairsMeaningfulNameUpgrade(t *testing.T) {
	tickets := domain.TicketCollection{
		"a": {Roles: map[string]domain.PartyRole{
			domain.RoleCodeRepair: {PartnerID: "R1", PartnerName: " "},
		}},
		"b": {Roles: map[string]domain.PartyRole{
			domain.RoleCodeRepair: {PartnerID: "R1", PartnerName: "Real Shop"},
		}},
	}
	stats := AnalyzeRepairs(tickets)
	require.Len(t, stats, 1)
	assert.Equal(t, "Real Shop", stats[0].RepairName)
	assert.Equal(t, 2, stats[0].TicketCount)
}

func TestAnalyzeRepairsChassisCounts(t *testing.T) {
	tickets := domain.TicketCollection{
		"a": {ChassisOrSerialID: "WDB-1", Roles: map[string]domain.PartyRole{
			domain.RoleCodeRepair: {PartnerID: "R1", PartnerName: "Shop"},
		}},
		"b": {ChassisOrSerialID: "WDB1", Roles: map[string]domain.PartyRole{
			domain.RoleCodeRepair: {PartnerID: "R1", PartnerName: "Shop"},
		}},
		"c": {Roles: map[string]domain.PartyRole{
			domain.RoleCodeRepair: {PartnerID: "R1", PartnerName: "Shop"},
		}},
	}
	stats := AnalyzeRepairs(tickets)
	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].ChassisTicketCount)
	assert.Equal(t, 1, stats[0].UniqueChassisCount)
	assert.InDelta(t, 2.0/3, stats[0].ChassisTicketRatio, 1e-9)
	assert.InDelta(t, 1.0/3, stats[0].UniqueChassisRatio, 1e-9)
}

func TestAnalyzeRepairsIdempotent(t *testing.T) {
	tickets := scenarioTickets()
	first := AnalyzeRepairs(tickets)
	second := AnalyzeRepairs(tickets)
	assert.Equal(t, first, second)
}

func TestAnalyzeRepairsSortedByTotalCost(t *testing.T) {
	tickets := domain.TicketCollection{
		"a": {AmountIncludingTax: "100", Roles: map[string]domain.PartyRole{
			domain.RoleCodeRepair: {PartnerID: "R1", PartnerName: "Cheap"},
		}},
		"b": {AmountIncludingTax: "9000", Roles: map[string]domain.PartyRole{
			domain.RoleCodeRepair: {PartnerID: "R2", PartnerName: "Dear"},
		}},
	}
	stats := AnalyzeRepairs(tickets)
	require.Len(t, stats, 2)
	assert.Equal(t, "R2", stats[0].RepairID)
	assert.Equal(t, "R1", stats[1].RepairID)
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 450.0, ParseAmount("450"))
	assert.Equal(t, 12.5, ParseAmount(" 12.5 "))
	assert.Equal(t, 0.0, ParseAmount("abc"))
	assert.Equal(t, 0.0, ParseAmount(""))
}
