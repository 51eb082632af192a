package notification

import (
	"context"

	"porter/models"
)

// EventPublisher relays booking-change events to connected dashboards.
// Publish is fire-and-forget: it never blocks the caller, delivery is
// best-effort, and devices the transport rejects are silently pruned.
type EventPublisher interface {
	Publish(event string, payload map[string]string)
}

// NotificationService is the full notification surface: live fan-out plus
// the persisted audit trail.
type NotificationService interface {
	EventPublisher
	Recent(ctx context.Context, limit int64) ([]models.Notification, error)
}
