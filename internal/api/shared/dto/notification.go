package dto

import (
	"time"

	"github.com/brawldash/club-sync/internal/store/schema"
)

// Notification is the API representation of one in-app notification.
type Notification struct {
	ID        uint64    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Tag       string    `json:"tag,omitempty"`
	Name      string    `json:"name,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationPage is one page of notifications with pagination cursors.
type NotificationPage struct {
	Items      []Notification `json:"items"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
	NextOffset *int           `json:"next_offset,omitempty"`
}

// NotificationFromSchema converts a storage notification row to its API
// representation.
func NotificationFromSchema(n *schema.Notification) Notification {
	return Notification{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Tag:       n.Tag.String(),
		Name:      n.Name,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
