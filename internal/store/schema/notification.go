package schema

import (
	"time"

	"github.com/brawldash/club-sync/internal/domain"
)

// Notification represents the notifications table - in-app notification rows.
// DedupeKey is a content-derived hash (type+tag+title+message, time truncated
// to the second) enforced as a storage-level unique constraint so concurrent
// or duplicate sync runs cannot double-insert.
type Notification struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Type is the notification type, mirrors the membership event types
	Type domain.EventType `gorm:"column:type;not null;type:text"`
	// Title is the short headline
	Title string `gorm:"column:title;not null;type:text"`
	// Message is the notification body
	Message string `gorm:"column:message;not null;type:text"`
	// Tag optionally identifies the player the notification concerns
	Tag domain.Tag `gorm:"column:tag;type:text"`
	// Name optionally carries the player display name
	Name string `gorm:"column:name;type:text"`
	// Read indicates the notification was seen in the dashboard
	Read bool `gorm:"column:read;not null;default:false;index"`
	// DedupeKey is the content-derived uniqueness key
	DedupeKey string `gorm:"column:dedupe_key;not null;uniqueIndex;type:varchar(64)"`
	// CreatedAt is when the notification was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
