package domain

// Role codes attached to a ticket record by the upstream store.
const (
	RoleCodeDealer   = "1001"
	RoleCodeEmployee = "40"
	RoleCodeRepair   = "43"
)

// PartyRole is a role-bound party reference on a ticket. Any field may be
// blank or missing in upstream data.
type PartyRole struct {
	PartnerID    string `json:"partnerId"`
	PartnerName  string `json:"partnerName"`
	ContactName  string `json:"contactName,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
}

// Party is a resolved (id, name) pair, either a real partner or a sentinel.
type Party struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Ticket is an immutable snapshot of one after-sales ticket as delivered by
// the external document store. The service never writes tickets back.
type Ticket struct {
	TicketID           string               `json:"ticketId"`
	TicketName         string               `json:"ticketName"`
	AmountIncludingTax string               `json:"amountIncludingTax"`
	ChassisOrSerialID  string               `json:"chassisOrSerialId"`
	CreatedOn          string               `json:"createdOn"`
	StatusCode         string               `json:"statusCode"`
	StatusText         string               `json:"statusText"`
	TypeText           string               `json:"typeText"`
	TimeConsumed       string               `json:"timeConsumed"`
	ApprovalNumber     string               `json:"approvalNumber"`
	Responded          bool                 `json:"responded"`
	Roles              map[string]PartyRole `json:"roles"`
}

// TicketCollection maps ticket id to its record, mirroring the store's
// document layout. Key iteration order is not significant; ordered views are
// derived in the analytics package by sorting on ticket id.
type TicketCollection map[string]Ticket

// TimeBreakdown decomposes an elapsed duration into days, hours and minutes.
// Invariant: TotalMinutes == Days*1440 + Hours*60 + Minutes.
type TimeBreakdown struct {
	Days         int `json:"days"`
	Hours        int `json:"hours"`
	Minutes      int `json:"minutes"`
	TotalMinutes int `json:"totalMinutes"`
}
