package scheduling

import (
	"sort"
	"sync"
	"time"

	appointmentRepo "mediconnect/database/repository/appointment"
	userRepo "mediconnect/database/repository/user"
	"mediconnect/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// DefaultSchedulingEngine is the production implementation of SchedulingEngine.
// A single mutex serializes every mutation with the double-booking check, so
// two concurrent bookers cannot both pass the occupancy test before either
// commits.
type DefaultSchedulingEngine struct {
	Repo      appointmentRepo.AppointmentRepository
	Users     userRepo.UserRepository
	Reminders ReminderScheduler

	mu sync.Mutex
}

// IsSlotBooked reports whether a non-Cancelled appointment occupies the
// (doctorID, date, timeOfDay) tuple. Cancelled appointments free their slot.
func (se *DefaultSchedulingEngine) IsSlotBooked(doctorID, date, timeOfDay string) (bool, error) {
	apt, err := se.Repo.FindActiveSlot(doctorID, date, timeOfDay)
	if err != nil {
		return false, err
	}
	return apt != nil, nil
}

// IsDayAvailable reports whether the doctor consults on the weekday of date.
// The weekday is computed from the calendar date alone; no timezone handling.
func (se *DefaultSchedulingEngine) IsDayAvailable(doctor *models.User, date string) (bool, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return false, newEngineError(CodeValidation, "invalid date %q: expected YYYY-MM-DD", date)
	}
	weekday := int(day.Weekday())
	for _, d := range doctor.AvailableDays {
		if d == weekday {
			return true, nil
		}
	}
	return false, nil
}

// ListOpenSlots returns the doctor's configured slots for the date minus the
// ones already booked, in ascending time order.
func (se *DefaultSchedulingEngine) ListOpenSlots(doctor *models.User, date string) ([]string, error) {
	available, err := se.IsDayAvailable(doctor, date)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, nil
	}

	slots := make([]string, len(doctor.AvailableSlots))
	copy(slots, doctor.AvailableSlots)
	sort.Strings(slots)

	open := slots[:0]
	for _, slot := range slots {
		booked, err := se.IsSlotBooked(doctor.ID, date, slot)
		if err != nil {
			return nil, err
		}
		if !booked {
			open = append(open, slot)
		}
	}
	return open, nil
}

// offersSlot reports whether timeOfDay is one of the doctor's configured slots.
func offersSlot(doctor *models.User, timeOfDay string) bool {
	for _, slot := range doctor.AvailableSlots {
		if slot == timeOfDay {
			return true
		}
	}
	return false
}

func (se *DefaultSchedulingEngine) GetAppointment(id string) (*models.Appointment, error) {
	apt, err := se.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if apt == nil {
		return nil, newEngineError(CodeNotFound, "appointment %s not found", id)
	}
	return apt, nil
}

func (se *DefaultSchedulingEngine) ListAppointmentsForPatient(patientID string) ([]models.Appointment, error) {
	return se.Repo.ListByPatient(patientID)
}

func (se *DefaultSchedulingEngine) ListAppointmentsForDoctor(doctorID string) ([]models.Appointment, error) {
	return se.Repo.ListByDoctor(doctorID)
}

func (se *DefaultSchedulingEngine) ListAllAppointments() ([]models.Appointment, error) {
	return se.Repo.List()
}
