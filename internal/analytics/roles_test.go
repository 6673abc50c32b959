package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
)

func TestResolveDealer(t *testing.T) {
	tests := []struct {
		name   string
		ticket domain.Ticket
		want   domain.Party
	}{
		{
			"present role",
			domain.Ticket{Roles: map[string]domain.PartyRole{
				domain.RoleCodeDealer: {PartnerID: "D1", PartnerName: "Acme"},
			}},
			domain.Party{ID: "D1", Name: "Acme"},
		},
		{
			"missing role",
			domain.Ticket{},
			UnknownDealer,
		},
		{
			"blank partner id",
			domain.Ticket{Roles: map[string]domain.PartyRole{
				domain.RoleCodeDealer: {PartnerID: "   ", PartnerName: "Acme"},
			}},
			UnknownDealer,
		},
		{
			"blank partner name keeps real id",
			domain.Ticket{Roles: map[string]domain.PartyRole{
				domain.RoleCodeDealer: {PartnerID: "D2", PartnerName: " "},
			}},
			domain.Party{ID: "D2", Name: UnknownDealer.Name},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDealer(tt.ticket))
		})
	}
}

func TestResolversNeverReturnEmpty(t *testing.T) {
	tickets := []domain.Ticket{
		{},
		{Roles: map[string]domain.PartyRole{}},
		{Roles: map[string]domain.PartyRole{
			domain.RoleCodeDealer:   {},
			domain.RoleCodeEmployee: {PartnerID: ""},
			domain.RoleCodeRepair:   {PartnerID: " ", PartnerName: " "},
		}},
	}
	for _, ticket := range tickets {
		for _, party := range []domain.Party{
			ResolveDealer(ticket),
			ResolveEmployee(ticket),
			ResolveRepair(ticket),
		} {
			assert.NotEmpty(t, party.ID)
			assert.NotEmpty(t, party.Name)
		}
	}
}

func TestResolveEmployeeAndRepairSentinels(t *testing.T) {
	assert.Equal(t, UnassignedParty, ResolveEmployee(domain.Ticket{}))
	assert.Equal(t, NoRepairAssigned, ResolveRepair(domain.Ticket{}))
}

func TestResolveDoesNotMutateTicket(t *testing.T) {
	ticket := domain.Ticket{Roles: map[string]domain.PartyRole{
		domain.RoleCodeRepair: {PartnerID: "R1", PartnerName: "Shop"},
	}}
	_ = ResolveRepair(ticket)
	assert.Equal(t, "R1", ticket.Roles[domain.RoleCodeRepair].PartnerID)
	assert.Equal(t, "Shop", ticket.Roles[domain.RoleCodeRepair].PartnerName)
}
