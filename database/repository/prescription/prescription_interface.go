package prescriptionRepo

import "mediconnect/models"

// PrescriptionRepository abstracts prescription storage. Prescriptions are
// write-once; there is no update or delete. Lookups return (nil, nil) when
// no matching record exists.
type PrescriptionRepository interface {
	Create(rx *models.Prescription) error
	GetByID(id string) (*models.Prescription, error)
	// GetByAppointment returns the prescription issued for an appointment,
	// if any. At most one exists per appointment.
	GetByAppointment(appointmentID string) (*models.Prescription, error)
	ListByPatient(patientID string) ([]models.Prescription, error)
	ListByDoctor(doctorID string) ([]models.Prescription, error)
}
