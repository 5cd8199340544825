package handlers

import (
	"net/http"

	"mediconnect/models"
	"mediconnect/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookAppointmentHandler books a slot. Patients can only book for themselves;
// admins may book on a patient's behalf.
func BookAppointmentHandler(engine scheduling.SchedulingEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			getLogger(c).Warn("invalid booking request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if c.GetString("role") == string(models.RolePatient) && req.PatientID != c.GetString("userID") {
			c.JSON(http.StatusForbidden, gin.H{"error": "patients can only book for themselves"})
			return
		}

		apt, err := engine.BookAppointment(req)
		if err != nil {
			respondError(c, schedulingErrorStatus(err), err)
			return
		}
		c.JSON(http.StatusCreated, apt)
	}
}

// ListAppointmentsHandler lists appointments scoped to the caller: patients
// see their own, doctors their schedule, admins everything.
func ListAppointmentsHandler(engine scheduling.SchedulingEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			apts []models.Appointment
			err  error
		)
		switch c.GetString("role") {
		case string(models.RolePatient):
			apts, err = engine.ListAppointmentsForPatient(c.GetString("userID"))
		case string(models.RoleDoctor):
			apts, err = engine.ListAppointmentsForDoctor(c.GetString("userID"))
		default:
			apts, err = engine.ListAllAppointments()
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, err)
			return
		}
		if apts == nil {
			apts = []models.Appointment{}
		}
		c.JSON(http.StatusOK, apts)
	}
}

// GetAppointmentHandler returns one appointment, visible only to its patient,
// its doctor, or an admin.
func GetAppointmentHandler(engine scheduling.SchedulingEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		apt, err := engine.GetAppointment(c.Param("id"))
		if err != nil {
			respondError(c, schedulingErrorStatus(err), err)
			return
		}
		if !canSeeAppointment(c, apt) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this appointment"})
			return
		}
		c.JSON(http.StatusOK, apt)
	}
}

// AcceptAppointmentHandler moves a Booked appointment to Accepted. Doctors
// may only accept their own appointments.
func AcceptAppointmentHandler(engine scheduling.SchedulingEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !doctorOwnsAppointment(c, engine) {
			return
		}
		apt, err := engine.AcceptAppointment(c.Param("id"))
		if err != nil {
			respondError(c, schedulingErrorStatus(err), err)
			return
		}
		c.JSON(http.StatusOK, apt)
	}
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

// RejectAppointmentHandler cancels a Booked appointment with a mandatory
// doctor-supplied reason.
func RejectAppointmentHandler(engine scheduling.SchedulingEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !doctorOwnsAppointment(c, engine) {
			return
		}
		var req reasonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			getLogger(c).Warn("invalid rejection request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		apt, err := engine.RejectAppointment(c.Param("id"), req.Reason)
		if err != nil {
			respondError(c, schedulingErrorStatus(err), err)
			return
		}
		c.JSON(http.StatusOK, apt)
	}
}

// CancelAppointmentHandler cancels an appointment. The reason is optional;
// cancelling an already-cancelled appointment is a no-op.
func CancelAppointmentHandler(engine scheduling.SchedulingEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		apt, err := engine.GetAppointment(c.Param("id"))
		if err != nil {
			respondError(c, schedulingErrorStatus(err), err)
			return
		}
		if !canSeeAppointment(c, apt) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this appointment"})
			return
		}

		var req reasonRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				getLogger(c).Warn("invalid cancel request", zap.Error(err))
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
				return
			}
		}

		apt, err = engine.CancelAppointment(c.Param("id"), req.Reason)
		if err != nil {
			respondError(c, schedulingErrorStatus(err), err)
			return
		}
		c.JSON(http.StatusOK, apt)
	}
}

// StartAppointmentHandler moves an Accepted appointment to In Progress when
// the consultation begins.
func StartAppointmentHandler(engine scheduling.SchedulingEngine) gin.HandlerFunc {
	return updateStatusHandler(engine, models.StatusInProgress)
}

// CompleteAppointmentHandler marks the consultation as finished.
func CompleteAppointmentHandler(engine scheduling.SchedulingEngine) gin.HandlerFunc {
	return updateStatusHandler(engine, models.StatusCompleted)
}

func updateStatusHandler(engine scheduling.SchedulingEngine, status models.AppointmentStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !doctorOwnsAppointment(c, engine) {
			return
		}
		apt, err := engine.UpdateAppointmentStatus(c.Param("id"), status)
		if err != nil {
			respondError(c, schedulingErrorStatus(err), err)
			return
		}
		c.JSON(http.StatusOK, apt)
	}
}

func canSeeAppointment(c *gin.Context, apt *models.Appointment) bool {
	switch c.GetString("role") {
	case string(models.RolePatient):
		return apt.PatientID == c.GetString("userID")
	case string(models.RoleDoctor):
		return apt.DoctorID == c.GetString("userID")
	}
	return true
}

// doctorOwnsAppointment enforces that doctor callers only act on their own
// schedule. It writes the error response itself and reports whether the
// handler may proceed.
func doctorOwnsAppointment(c *gin.Context, engine scheduling.SchedulingEngine) bool {
	if c.GetString("role") != string(models.RoleDoctor) {
		return true
	}
	apt, err := engine.GetAppointment(c.Param("id"))
	if err != nil {
		respondError(c, schedulingErrorStatus(err), err)
		return false
	}
	if apt.DoctorID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this appointment"})
		return false
	}
	return true
}
