package prescription

import (
	"errors"
	"fmt"
	"strings"

	prescriptionRepo "mediconnect/database/repository/prescription"
	"mediconnect/models"
	"mediconnect/services/scheduling"

	"github.com/google/uuid"
)

// Error codes returned by the prescription service.
const (
	CodeDuplicate  = "duplicatePrescription"
	CodeValidation = "validationError"
	CodeNotFound   = "notFound"
)

type PrescriptionError struct {
	Code    string
	Message string
}

func (e *PrescriptionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newPrescriptionError(code, format string, args ...any) error {
	return &PrescriptionError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode extracts the prescription error code, or "" for foreign errors.
func ErrorCode(err error) string {
	var pe *PrescriptionError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

func IsDuplicate(err error) bool  { return ErrorCode(err) == CodeDuplicate }
func IsValidation(err error) bool { return ErrorCode(err) == CodeValidation }
func IsNotFound(err error) bool   { return ErrorCode(err) == CodeNotFound }

// PrescriptionService issues and retrieves prescriptions. Issuing is gated on
// the appointment existing and not already carrying a prescription.
type PrescriptionService interface {
	IssuePrescription(appointmentID, doctorID string, input models.PrescriptionInput) (*models.Prescription, error)
	GetPrescription(id string) (*models.Prescription, error)
	GetByAppointment(appointmentID string) (*models.Prescription, error)
	ListForPatient(patientID string) ([]models.Prescription, error)
	ListForDoctor(doctorID string) ([]models.Prescription, error)
}

type DefaultPrescriptionService struct {
	Repo   prescriptionRepo.PrescriptionRepository
	Engine scheduling.SchedulingEngine
}

func NewPrescriptionService(repo prescriptionRepo.PrescriptionRepository, engine scheduling.SchedulingEngine) *DefaultPrescriptionService {
	return &DefaultPrescriptionService{Repo: repo, Engine: engine}
}

// IssuePrescription records a prescription against an appointment. Each
// appointment takes at most one prescription; a second attempt fails with
// CodeDuplicate regardless of contents.
func (ps *DefaultPrescriptionService) IssuePrescription(appointmentID, doctorID string, input models.PrescriptionInput) (*models.Prescription, error) {
	if strings.TrimSpace(input.MedicineName) == "" ||
		strings.TrimSpace(input.Dosage) == "" ||
		strings.TrimSpace(input.Duration) == "" {
		return nil, newPrescriptionError(CodeValidation,
			"medicineName, dosage and duration are required")
	}

	apt, err := ps.Engine.GetAppointment(appointmentID)
	if err != nil {
		if scheduling.IsNotFound(err) {
			return nil, newPrescriptionError(CodeNotFound, "appointment %s not found", appointmentID)
		}
		return nil, err
	}
	if doctorID != "" && apt.DoctorID != doctorID {
		return nil, newPrescriptionError(CodeValidation,
			"appointment %s belongs to a different doctor", appointmentID)
	}

	existing, err := ps.Repo.GetByAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, newPrescriptionError(CodeDuplicate,
			"appointment %s already has a prescription", appointmentID)
	}

	rx := &models.Prescription{
		ID:            uuid.New().String(),
		AppointmentID: apt.ID,
		DoctorID:      apt.DoctorID,
		DoctorName:    apt.DoctorName,
		PatientID:     apt.PatientID,
		PatientName:   apt.PatientName,
		Date:          apt.Date,
		MedicineName:  input.MedicineName,
		Dosage:        input.Dosage,
		Duration:      input.Duration,
		Instructions:  input.Instructions,
	}
	if err := ps.Repo.Create(rx); err != nil {
		return nil, err
	}
	return rx, nil
}

func (ps *DefaultPrescriptionService) GetPrescription(id string) (*models.Prescription, error) {
	rx, err := ps.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rx == nil {
		return nil, newPrescriptionError(CodeNotFound, "prescription %s not found", id)
	}
	return rx, nil
}

func (ps *DefaultPrescriptionService) GetByAppointment(appointmentID string) (*models.Prescription, error) {
	return ps.Repo.GetByAppointment(appointmentID)
}

func (ps *DefaultPrescriptionService) ListForPatient(patientID string) ([]models.Prescription, error) {
	return ps.Repo.ListByPatient(patientID)
}

func (ps *DefaultPrescriptionService) ListForDoctor(doctorID string) ([]models.Prescription, error) {
	return ps.Repo.ListByDoctor(doctorID)
}
