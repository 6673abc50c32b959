package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSettingsChanged      EventType = "settings_changed"
	EventStatusMappingChanged EventType = "status_mapping_changed"
	EventTicketsRefreshed     EventType = "tickets_refreshed"
)

// Event represents a state change emitted by services. Consumers use these
// to drop memoized dashboard snapshots.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SettingsChangedPayload payload.
type SettingsChangedPayload struct {
	Category string `json:"category"`
	EntityID string `json:"entity_id"`
	Visible  bool   `json:"visible"`
}

// StatusMappingChangedPayload payload.
type StatusMappingChangedPayload struct {
	StatusCode string `json:"status_code"`
}

// TicketsRefreshedPayload payload.
type TicketsRefreshedPayload struct {
	TicketCount int `json:"ticket_count"`
}
