package cron

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"porter/config"
	"porter/models"
	"porter/services/notification"
	"porter/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background. It drains scheduled
// arrival reminders and republishes them to the dashboards.
func InitReminderWorker(publisher notification.EventPublisher) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeArrivalReminder, handleArrivalReminder(publisher))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleArrivalReminder(publisher notification.EventPublisher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderWorker] invalid payload: %v", err)
			return err
		}

		publisher.Publish("arrival.reminder", map[string]string{
			"bookingId": strconv.FormatInt(p.BookingID, 10),
			"guestName": p.GuestName,
			"arrival":   p.Arrival,
			"roomId":    strconv.FormatInt(p.RoomID, 10),
		})
		return nil
	}
}
