package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"mediconnect/config"
	"mediconnect/models"

	"github.com/hibiken/asynq"
)

// TypeReminderSend is the task type for appointment reminders.
const TypeReminderSend = "reminder:send"

// AsynqReminderScheduler enqueues reminder tasks timed to fire a configured
// lead interval before the appointment. Implements scheduling.ReminderScheduler.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// NewReminderScheduler builds a scheduler backed by the task queue Redis DB.
func NewReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})
	return &AsynqReminderScheduler{Client: client}
}

// ScheduleReminder queues a reminder for the appointment. Appointments too
// close to now (or in the past) are skipped silently; the slot check already
// rejected anything unbookable.
func (s *AsynqReminderScheduler) ScheduleReminder(apt *models.Appointment) error {
	startsAt, err := time.ParseInLocation("2006-01-02 15:04", apt.Date+" "+apt.Time, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse appointment schedule: %w", err)
	}

	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	fireAt := startsAt.Add(-lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		AppointmentID: apt.ID,
		PatientID:     apt.PatientID,
		DoctorName:    apt.DoctorName,
		Date:          apt.Date,
		Time:          apt.Time,
	})
	if err != nil {
		return fmt.Errorf("failed to encode reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.Client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

func (s *AsynqReminderScheduler) Close() error {
	return s.Client.Close()
}
