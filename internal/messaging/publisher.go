package messaging

import (
	"context"

	"github.com/brawldash/club-sync/internal/domain"
)

// Publisher defines the interface for publishing club events to the message
// broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes one club event to the message broker
	PublishEvent(ctx context.Context, event *domain.ClubEventMessage) error
	// Close closes the connection
	Close()
}
