package interfaces

import (
	"context"

	"mechbid/internal/domain/entities"
)

// IEventPublisher is the fire-and-forget sink for domain events consumed by
// the notification/messaging collaborators. A failed publish is logged and
// never rolls back the committed transition.

type IEventPublisher interface {
	Publish(ctx context.Context, event entities.DomainEvent) error
}
