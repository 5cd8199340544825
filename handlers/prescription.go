package handlers

import (
	"net/http"

	"mediconnect/models"
	prescriptionSvc "mediconnect/services/prescription"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IssuePrescriptionHandler records a prescription for an appointment. Only
// the appointment's doctor may issue one, and only one may exist.
func IssuePrescriptionHandler(svc prescriptionSvc.PrescriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.PrescriptionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			getLogger(c).Warn("invalid prescription request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		doctorID := ""
		if c.GetString("role") == string(models.RoleDoctor) {
			doctorID = c.GetString("userID")
		}

		rx, err := svc.IssuePrescription(c.Param("id"), doctorID, input)
		if err != nil {
			respondError(c, prescriptionErrorStatus(err), err)
			return
		}
		c.JSON(http.StatusCreated, rx)
	}
}

// GetPrescriptionForAppointmentHandler returns the prescription issued for an
// appointment, or 404 when none exists.
func GetPrescriptionForAppointmentHandler(svc prescriptionSvc.PrescriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, err := svc.GetByAppointment(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusInternalServerError, err)
			return
		}
		if rx == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no prescription for this appointment"})
			return
		}
		if !canSeePrescription(c, rx) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this prescription"})
			return
		}
		c.JSON(http.StatusOK, rx)
	}
}

// ListPrescriptionsHandler lists prescriptions scoped to the caller: patients
// see those issued to them, doctors those they wrote, admins everything per
// query filters.
func ListPrescriptionsHandler(svc prescriptionSvc.PrescriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			rxs []models.Prescription
			err error
		)
		switch c.GetString("role") {
		case string(models.RolePatient):
			rxs, err = svc.ListForPatient(c.GetString("userID"))
		case string(models.RoleDoctor):
			rxs, err = svc.ListForDoctor(c.GetString("userID"))
		default:
			if patientID := c.Query("patientId"); patientID != "" {
				rxs, err = svc.ListForPatient(patientID)
			} else if doctorID := c.Query("doctorId"); doctorID != "" {
				rxs, err = svc.ListForDoctor(doctorID)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "provide a patientId or doctorId filter"})
				return
			}
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, err)
			return
		}
		if rxs == nil {
			rxs = []models.Prescription{}
		}
		c.JSON(http.StatusOK, rxs)
	}
}

func canSeePrescription(c *gin.Context, rx *models.Prescription) bool {
	switch c.GetString("role") {
	case string(models.RolePatient):
		return rx.PatientID == c.GetString("userID")
	case string(models.RoleDoctor):
		return rx.DoctorID == c.GetString("userID")
	}
	return true
}
