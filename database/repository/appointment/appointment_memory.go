package appointmentRepo

import (
	"fmt"
	"sync"

	"mediconnect/models"
)

// MemoryAppointmentRepo implements AppointmentRepository with an in-process
// list, preserving insertion order like the seeded demo store.
type MemoryAppointmentRepo struct {
	mu    sync.RWMutex
	byID  map[string]models.Appointment
	order []string
}

// NewMemoryAppointmentRepo constructs an empty in-memory appointment repository.
func NewMemoryAppointmentRepo() *MemoryAppointmentRepo {
	return &MemoryAppointmentRepo{byID: make(map[string]models.Appointment)}
}

func (repo *MemoryAppointmentRepo) Create(apt *models.Appointment) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byID[apt.ID]; exists {
		return fmt.Errorf("appointment with id %s already exists", apt.ID)
	}
	repo.byID[apt.ID] = *apt
	repo.order = append(repo.order, apt.ID)
	return nil
}

func (repo *MemoryAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if apt, ok := repo.byID[id]; ok {
		return &apt, nil
	}
	return nil, nil
}

func (repo *MemoryAppointmentRepo) Update(apt *models.Appointment) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byID[apt.ID]; !exists {
		return fmt.Errorf("appointment with id %s not found", apt.ID)
	}
	repo.byID[apt.ID] = *apt
	return nil
}

func (repo *MemoryAppointmentRepo) FindActiveSlot(doctorID, date, timeOfDay string) (*models.Appointment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, id := range repo.order {
		apt := repo.byID[id]
		if apt.DoctorID == doctorID && apt.Date == date && apt.Time == timeOfDay &&
			apt.Status != models.StatusCancelled {
			return &apt, nil
		}
	}
	return nil, nil
}

func (repo *MemoryAppointmentRepo) ListByPatient(patientID string) ([]models.Appointment, error) {
	return repo.filter(func(apt models.Appointment) bool { return apt.PatientID == patientID })
}

func (repo *MemoryAppointmentRepo) ListByDoctor(doctorID string) ([]models.Appointment, error) {
	return repo.filter(func(apt models.Appointment) bool { return apt.DoctorID == doctorID })
}

func (repo *MemoryAppointmentRepo) List() ([]models.Appointment, error) {
	return repo.filter(func(models.Appointment) bool { return true })
}

func (repo *MemoryAppointmentRepo) filter(keep func(models.Appointment) bool) ([]models.Appointment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var appointments []models.Appointment
	for _, id := range repo.order {
		if apt := repo.byID[id]; keep(apt) {
			appointments = append(appointments, apt)
		}
	}
	return appointments, nil
}
