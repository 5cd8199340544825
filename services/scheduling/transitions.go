package scheduling

import (
	"strings"

	"mediconnect/models"
)

// allowedTransitions is the appointment lifecycle. Completed and Cancelled are
// terminal.
var allowedTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusBooked:     {models.StatusAccepted, models.StatusCancelled},
	models.StatusAccepted:   {models.StatusInProgress, models.StatusCompleted, models.StatusCancelled},
	models.StatusInProgress: {models.StatusCompleted, models.StatusCancelled},
}

func canTransition(from, to models.AppointmentStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AcceptAppointment moves a Booked appointment to Accepted.
func (se *DefaultSchedulingEngine) AcceptAppointment(id string) (*models.Appointment, error) {
	se.mu.Lock()
	defer se.mu.Unlock()

	apt, err := se.GetAppointment(id)
	if err != nil {
		return nil, err
	}
	if apt.Status != models.StatusBooked {
		return nil, newEngineError(CodeInvalidTransition,
			"cannot accept appointment in status %q", apt.Status)
	}

	apt.Status = models.StatusAccepted
	if err := se.Repo.Update(apt); err != nil {
		return nil, err
	}
	return apt, nil
}

// RejectAppointment cancels a Booked appointment with a doctor-supplied
// reason. The reason is mandatory; rejection frees the slot for re-booking.
func (se *DefaultSchedulingEngine) RejectAppointment(id, reason string) (*models.Appointment, error) {
	se.mu.Lock()
	defer se.mu.Unlock()

	if strings.TrimSpace(reason) == "" {
		return nil, newEngineError(CodeValidation, "rejection reason is required")
	}

	apt, err := se.GetAppointment(id)
	if err != nil {
		return nil, err
	}
	if apt.Status != models.StatusBooked {
		return nil, newEngineError(CodeInvalidTransition,
			"cannot reject appointment in status %q", apt.Status)
	}

	apt.Status = models.StatusCancelled
	apt.CancelReason = reason
	if err := se.Repo.Update(apt); err != nil {
		return nil, err
	}
	return apt, nil
}

// CancelAppointment cancels an appointment in any non-terminal status.
// Cancelling an already-Cancelled appointment is a no-op that preserves the
// original reason. Completed appointments cannot be cancelled.
func (se *DefaultSchedulingEngine) CancelAppointment(id, reason string) (*models.Appointment, error) {
	se.mu.Lock()
	defer se.mu.Unlock()

	apt, err := se.GetAppointment(id)
	if err != nil {
		return nil, err
	}
	if apt.Status == models.StatusCancelled {
		return apt, nil
	}
	if apt.Status == models.StatusCompleted {
		return nil, newEngineError(CodeInvalidTransition,
			"cannot cancel a completed appointment")
	}

	if strings.TrimSpace(reason) == "" {
		reason = "Cancelled by admin"
	}
	apt.Status = models.StatusCancelled
	apt.CancelReason = reason
	if err := se.Repo.Update(apt); err != nil {
		return nil, err
	}
	return apt, nil
}

// UpdateAppointmentStatus applies a generic lifecycle transition, typically
// Accepted -> In Progress -> Completed during a consultation.
func (se *DefaultSchedulingEngine) UpdateAppointmentStatus(id string, status models.AppointmentStatus) (*models.Appointment, error) {
	se.mu.Lock()
	defer se.mu.Unlock()

	if !status.Valid() {
		return nil, newEngineError(CodeValidation, "unknown appointment status %q", status)
	}

	apt, err := se.GetAppointment(id)
	if err != nil {
		return nil, err
	}
	if !canTransition(apt.Status, status) {
		return nil, newEngineError(CodeInvalidTransition,
			"cannot move appointment from %q to %q", apt.Status, status)
	}

	apt.Status = status
	if err := se.Repo.Update(apt); err != nil {
		return nil, err
	}
	return apt, nil
}
