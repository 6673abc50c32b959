package dto

import "github.com/Behnamfe76/aftersales-ops/internal/domain"

// SetVisibilityRequest payload.
type SetVisibilityRequest struct {
	Visible bool `json:"visible"`
}

// SettingsResponse wraps the display settings.
type SettingsResponse struct {
	Settings domain.DisplaySettings `json:"settings"`
}

// UpsertStatusMappingRequest payload.
type UpsertStatusMappingRequest struct {
	TicketStatusText string `json:"ticket_status_text"`
	FirstLevelStatus string `json:"first_level_status"`
}

// StatusMappingResponse wraps the mapping table.
type StatusMappingResponse struct {
	Mapping domain.StatusMapping `json:"mapping"`
}
