package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
)

func TestFirstLevelStatus(t *testing.T) {
	mapping := domain.StatusMapping{
		"Z9":         {TicketStatusText: "Case Closed", FirstLevelStatus: "Closed"},
		"In Transit": {TicketStatusText: "Parts In Transit"},
		"E1":         {},
	}

	tests := []struct {
		name   string
		ticket domain.Ticket
		want   string
	}{
		{"code match takes first level", domain.Ticket{StatusCode: "Z9", StatusText: "whatever"}, "Closed"},
		{"text fallback key", domain.Ticket{StatusCode: "XX", StatusText: "In Transit"}, "Parts In Transit"},
		{"entry without values falls back to raw text", domain.Ticket{StatusCode: "E1", StatusText: "Escalated"}, "Escalated"},
		{"no entry uses raw text", domain.Ticket{StatusCode: "QQ", StatusText: "Waiting"}, "Waiting"},
		{"everything empty", domain.Ticket{}, UnmappedStatus},
		{"whitespace-only result", domain.Ticket{StatusText: "   "}, UnmappedStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstLevelStatus(tt.ticket, mapping))
		})
	}
}

func TestFirstLevelStatusTotalWithNilMapping(t *testing.T) {
	assert.Equal(t, UnmappedStatus, FirstLevelStatus(domain.Ticket{}, nil))
	assert.Equal(t, "Open", FirstLevelStatus(domain.Ticket{StatusText: "Open"}, nil))
}
