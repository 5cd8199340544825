package notification

import (
	"context"

	"mediconnect/models"
	"mediconnect/utils"

	"go.uber.org/zap"
)

// NotificationService delivers patient-facing messages. The current platform
// has no push or SMS gateway, so delivery is a structured log entry that the
// downstream notification pipeline tails.
type NotificationService interface {
	SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error
}

type LogNotificationService struct{}

func NewLogNotificationService() *LogNotificationService {
	return &LogNotificationService{}
}

func (s *LogNotificationService) SendAppointmentReminder(_ context.Context, payload models.ReminderPayload) error {
	utils.GetLogger().Info("appointment reminder",
		zap.String("appointmentID", payload.AppointmentID),
		zap.String("patientID", payload.PatientID),
		zap.String("doctorName", payload.DoctorName),
		zap.String("date", payload.Date),
		zap.String("time", payload.Time),
	)
	return nil
}
