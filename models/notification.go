package models

import "time"

// Notification is one audit row for a change event relayed to dashboards.
type Notification struct {
	ID        string            `bson:"id" json:"id"`
	Event     string            `bson:"event" json:"event"`
	Payload   map[string]string `bson:"payload" json:"payload"`
	CreatedAt time.Time         `bson:"created_at" json:"createdAt"`
}

// DashboardDevice is a registered dashboard client that receives pushes.
type DashboardDevice struct {
	ID           string    `bson:"id" json:"id"`
	OperatorID   string    `bson:"operator_id" json:"operatorId"`
	Role         string    `bson:"role" json:"role"` // frontdesk | housekeeping | admin
	FCMToken     string    `bson:"fcm_token" json:"fcmToken"`
	RegisteredAt time.Time `bson:"registered_at" json:"registeredAt"`
}

// BookingEvent is the change notification pushed by the upstream provider's
// webhook when a reservation is created, modified or cancelled.
type BookingEvent struct {
	Action  string  `json:"action"` // created | modified | cancelled
	Booking Booking `json:"booking"`
}

// ReminderPayload is the queued payload for a scheduled arrival reminder.
type ReminderPayload struct {
	BookingID int64  `json:"bookingId"`
	GuestName string `json:"guestName"`
	Arrival   string `json:"arrival"`
	RoomID    int64  `json:"roomId"`
}

// DashboardState is an opaque JSON blob a dashboard persists between sessions.
type DashboardState struct {
	Key       string    `bson:"key" json:"key"`
	Payload   string    `bson:"payload" json:"payload"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
