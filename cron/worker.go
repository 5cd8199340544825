package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"mediconnect/config"
	"mediconnect/models"
	"mediconnect/services/notification"
	"mediconnect/services/scheduling"
	"mediconnect/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(engine scheduling.SchedulingEngine, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
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
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(engine, notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker")
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

// handleReminderTask delivers a queued reminder. Appointments cancelled or
// completed since the reminder was queued are dropped without notifying.
func handleReminderTask(engine scheduling.SchedulingEngine, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		apt, err := engine.GetAppointment(p.AppointmentID)
		if err != nil {
			if scheduling.IsNotFound(err) {
				log.Printf("[ReminderHandler] appointment %s no longer exists, dropping reminder", p.AppointmentID)
				return nil
			}
			return err
		}
		if apt.Status.Terminal() {
			log.Printf("[ReminderHandler] appointment %s is %s, dropping reminder", apt.ID, apt.Status)
			return nil
		}

		return notifSvc.SendAppointmentReminder(ctx, p)
	}
}
