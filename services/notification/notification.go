package notification

import (
	"context"
	"time"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	deviceRepo "porter/database/repository/device"
	notificationRepo "porter/database/repository/notification"
	"porter/models"
)

// publishTimeout bounds one background fan-out run.
const publishTimeout = 30 * time.Second

// DefaultNotificationService fans events out to every registered dashboard
// device over FCM and writes an audit row per event.
type DefaultNotificationService struct {
	Devices deviceRepo.DeviceRepository
	Audit   notificationRepo.NotificationRepository
	FCM     *messaging.Client
	Logger  *zap.Logger
}

// Publish relays one event to all dashboards. It returns immediately; the
// audit write and the multicast run in the background and failures are only
// logged. The triggering request never waits on delivery confirmation.
func (s *DefaultNotificationService) Publish(event string, payload map[string]string) {
	go s.deliver(event, payload)
}

func (s *DefaultNotificationService) deliver(event string, payload map[string]string) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if _, err := s.Audit.Create(ctx, models.Notification{Event: event, Payload: payload}); err != nil {
		s.Logger.Error("Failed to persist notification audit row",
			zap.String("event", event), zap.Error(err))
	}

	devices, err := s.Devices.All(ctx)
	if err != nil {
		s.Logger.Error("Failed to load dashboard devices for fan-out", zap.Error(err))
		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, d := range devices {
		if d.FCMToken != "" {
			tokens = append(tokens, d.FCMToken)
		}
	}
	if len(tokens) == 0 {
		return
	}

	data := make(map[string]string, len(payload)+1)
	for k, v := range payload {
		data[k] = v
	}
	data["event"] = event

	msg := &messaging.MulticastMessage{
		Tokens: tokens,
		Data:   data,
	}
	resp, err := s.FCM.SendEachForMulticast(ctx, msg)
	if err != nil {
		s.Logger.Error("FCM multicast failed", zap.String("event", event), zap.Error(err))
		return
	}

	// Prune devices the transport no longer knows about.
	for i, result := range resp.Responses {
		if result.Error == nil {
			continue
		}
		if messaging.IsUnregistered(result.Error) {
			if err := s.Devices.DeleteByToken(ctx, tokens[i]); err != nil {
				s.Logger.Warn("Failed to prune stale dashboard device", zap.Error(err))
			}
			continue
		}
		s.Logger.Warn("Push delivery failed for one device",
			zap.String("event", event), zap.Error(result.Error))
	}

	s.Logger.Debug("Published dashboard event",
		zap.String("event", event),
		zap.Int("devices", len(tokens)),
		zap.Int("failures", resp.FailureCount))
}

// Recent returns the latest audit rows for the admin dashboard.
func (s *DefaultNotificationService) Recent(ctx context.Context, limit int64) ([]models.Notification, error) {
	return s.Audit.Recent(ctx, limit)
}
