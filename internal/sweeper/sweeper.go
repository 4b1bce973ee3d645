package sweeper

import (
	"context"
)

// Sweeper is a long-running maintenance loop, such as the retention sweeper
// that prunes battles and activity logs past their cutoff.
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the loop and blocks until the context is canceled
	Start(ctx context.Context) error

	// Stop shuts the loop down, waiting for an in-flight pass to finish
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
