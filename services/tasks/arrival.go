package tasks

import (
	"encoding/json"
	"time"

	"porter/models"

	"github.com/hibiken/asynq"
)

const TypeArrivalReminder = "reminder:arrival"

// NewArrivalReminderTask builds the queued task that reminds the front desk
// of an arrival on the morning of the stay.
func NewArrivalReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeArrivalReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
