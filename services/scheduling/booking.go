package scheduling

import (
	"time"

	"mediconnect/models"
	"mediconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookAppointment validates the requested (doctor, date, time) against the
// doctor's availability and current occupancy, then creates a Booked
// appointment carrying point-in-time snapshots of the patient and doctor
// records. The occupancy check and the insert run under the engine mutex, so
// the booking is immediately visible to subsequent checks and no two bookers
// can claim the same slot.
func (se *DefaultSchedulingEngine) BookAppointment(req models.BookingRequest) (*models.Appointment, error) {
	se.mu.Lock()
	defer se.mu.Unlock()

	if _, err := time.Parse(timeLayout, req.Time); err != nil {
		return nil, newEngineError(CodeValidation, "invalid time %q: expected HH:MM", req.Time)
	}

	patient, err := se.Users.GetByID(req.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, newEngineError(CodeNotFound, "patient %s not found", req.PatientID)
	}

	doctor, err := se.Users.GetByID(req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() {
		return nil, newEngineError(CodeNotFound, "doctor %s not found", req.DoctorID)
	}

	available, err := se.IsDayAvailable(doctor, req.Date)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, newEngineError(CodeDayUnavailable,
			"%s does not consult on the selected day", doctor.DisplayName())
	}

	if !offersSlot(doctor, req.Time) {
		return nil, newEngineError(CodeSlotUnavailable,
			"%s is not one of the doctor's consultation slots", req.Time)
	}

	booked, err := se.IsSlotBooked(doctor.ID, req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, newEngineError(CodeSlotUnavailable,
			"slot %s on %s is already booked", req.Time, req.Date)
	}

	apt := &models.Appointment{
		ID:        uuid.New().String(),
		PatientID: patient.ID,
		DoctorID:  doctor.ID,

		PatientName:           patient.DisplayName(),
		PatientAge:            patient.Age,
		PatientMedicalHistory: patient.MedicalHistory,
		DoctorName:            doctor.DisplayName(),
		Specialization:        doctor.Specialization,
		Location:              doctor.Location,
		ConsultationFeeMinor:  doctor.ConsultationFeeMinor,

		Date:      req.Date,
		Time:      req.Time,
		Status:    models.StatusBooked,
		CreatedAt: time.Now(),
	}

	if err := se.Repo.Create(apt); err != nil {
		return nil, err
	}

	// Reminder delivery is best-effort; a queue failure never fails the booking.
	if se.Reminders != nil {
		if err := se.Reminders.ScheduleReminder(apt); err != nil {
			utils.GetLogger().Warn("failed to schedule appointment reminder",
				zap.String("appointmentID", apt.ID), zap.Error(err))
		}
	}

	return apt, nil
}
