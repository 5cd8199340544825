package appointmentRepo

import "mediconnect/models"

// AppointmentRepository abstracts appointment storage for the scheduling
// engine. Appointments are never deleted; cancellation is a status update.
// Lookups return (nil, nil) when no matching record exists.
type AppointmentRepository interface {
	Create(apt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	Update(apt *models.Appointment) error
	// FindActiveSlot returns the non-Cancelled appointment occupying
	// (doctorID, date, time), if any. This is the double-booking guard.
	FindActiveSlot(doctorID, date, timeOfDay string) (*models.Appointment, error)
	ListByPatient(patientID string) ([]models.Appointment, error)
	ListByDoctor(doctorID string) ([]models.Appointment, error)
	List() ([]models.Appointment, error)
}
