package prescriptionRepo

import (
	"fmt"
	"sync"

	"mediconnect/models"
)

// MemoryPrescriptionRepo implements PrescriptionRepository with an in-process
// map, preserving insertion order.
type MemoryPrescriptionRepo struct {
	mu    sync.RWMutex
	byID  map[string]models.Prescription
	order []string
}

// NewMemoryPrescriptionRepo constructs an empty in-memory prescription repository.
func NewMemoryPrescriptionRepo() *MemoryPrescriptionRepo {
	return &MemoryPrescriptionRepo{byID: make(map[string]models.Prescription)}
}

func (repo *MemoryPrescriptionRepo) Create(rx *models.Prescription) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byID[rx.ID]; exists {
		return fmt.Errorf("prescription with id %s already exists", rx.ID)
	}
	repo.byID[rx.ID] = *rx
	repo.order = append(repo.order, rx.ID)
	return nil
}

func (repo *MemoryPrescriptionRepo) GetByID(id string) (*models.Prescription, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if rx, ok := repo.byID[id]; ok {
		return &rx, nil
	}
	return nil, nil
}

func (repo *MemoryPrescriptionRepo) GetByAppointment(appointmentID string) (*models.Prescription, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, id := range repo.order {
		if rx := repo.byID[id]; rx.AppointmentID == appointmentID {
			return &rx, nil
		}
	}
	return nil, nil
}

func (repo *MemoryPrescriptionRepo) ListByPatient(patientID string) ([]models.Prescription, error) {
	return repo.filter(func(rx models.Prescription) bool { return rx.PatientID == patientID })
}

func (repo *MemoryPrescriptionRepo) ListByDoctor(doctorID string) ([]models.Prescription, error) {
	return repo.filter(func(rx models.Prescription) bool { return rx.DoctorID == doctorID })
}

func (repo *MemoryPrescriptionRepo) filter(keep func(models.Prescription) bool) ([]models.Prescription, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var prescriptions []models.Prescription
	for _, id := range repo.order {
		if rx := repo.byID[id]; keep(rx) {
			prescriptions = append(prescriptions, rx)
		}
	}
	return prescriptions, nil
}
