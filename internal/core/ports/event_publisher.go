package ports

import (
	"context"

	"quickdrop/internal/core/domain/model/parcel"
)

// EventPublisher ships parcel lifecycle events to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, events []parcel.Event) error
}
