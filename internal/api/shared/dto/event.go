package dto

import (
	"time"

	"github.com/brawldash/club-sync/internal/store/schema"
)

// ClubEvent is the API representation of one membership audit event.
type ClubEvent struct {
	ID         uint64    `json:"id"`
	EventType  string    `json:"event_type"`
	Tag        string    `json:"tag"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPage is one page of club events with pagination cursors.
type EventPage struct {
	Items      []ClubEvent `json:"items"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
	NextOffset *int        `json:"next_offset,omitempty"`
}

// ClubEventFromSchema converts a storage event row to its API representation.
func ClubEventFromSchema(e *schema.ClubEvent) ClubEvent {
	return ClubEvent{
		ID:         e.ID,
		EventType:  string(e.EventType),
		Tag:        e.Tag.String(),
		Name:       e.Name,
		OccurredAt: e.OccurredAt,
	}
}
