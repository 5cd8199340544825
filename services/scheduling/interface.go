package scheduling

import "mediconnect/models"

// SchedulingEngine decides bookability, enumerates open slots and drives
// appointment lifecycle transitions.
type SchedulingEngine interface {
	// IsSlotBooked reports whether a non-Cancelled appointment occupies
	// (doctorID, date, timeOfDay).
	IsSlotBooked(doctorID, date, timeOfDay string) (bool, error)
	// IsDayAvailable reports whether the doctor consults on the weekday of
	// the given calendar date. Dates are timezone-naive.
	IsDayAvailable(doctor *models.User, date string) (bool, error)
	// ListOpenSlots returns the doctor's configured slots for the date,
	// minus those already booked, in ascending time order. Empty when the
	// day is unavailable.
	ListOpenSlots(doctor *models.User, date string) ([]string, error)

	// BookAppointment creates a Booked appointment, snapshotting the
	// current patient and doctor records. The occupancy check and the
	// insert form a single critical section.
	BookAppointment(req models.BookingRequest) (*models.Appointment, error)

	AcceptAppointment(id string) (*models.Appointment, error)
	RejectAppointment(id, reason string) (*models.Appointment, error)
	CancelAppointment(id, reason string) (*models.Appointment, error)
	UpdateAppointmentStatus(id string, status models.AppointmentStatus) (*models.Appointment, error)

	GetAppointment(id string) (*models.Appointment, error)
	ListAppointmentsForPatient(patientID string) ([]models.Appointment, error)
	ListAppointmentsForDoctor(doctorID string) ([]models.Appointment, error)
	ListAllAppointments() ([]models.Appointment, error)
}

// ReminderScheduler enqueues a consultation reminder for a freshly booked
// appointment. Implemented by the task queue; nil disables reminders.
type ReminderScheduler interface {
	ScheduleReminder(apt *models.Appointment) error
}
