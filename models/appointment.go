package models

import "time"

// AppointmentStatus is one of the five stored appointment states.
type AppointmentStatus string

const (
	StatusBooked     AppointmentStatus = "Booked"
	StatusAccepted   AppointmentStatus = "Accepted"
	StatusInProgress AppointmentStatus = "In Progress"
	StatusCompleted  AppointmentStatus = "Completed"
	StatusCancelled  AppointmentStatus = "Cancelled"
)

// Valid reports whether s is one of the known status values.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusBooked, StatusAccepted, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions may leave s.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Appointment is a confirmed consultation booking. The patient and doctor
// fields are point-in-time snapshots copied at booking; they are never
// resynced when the underlying profiles change, so the record stays
// historically stable.
type Appointment struct {
	ID        string `bson:"id" json:"id"`
	PatientID string `bson:"patientId" json:"patientId"`
	DoctorID  string `bson:"doctorId" json:"doctorId"`

	PatientName           string `bson:"patientName" json:"patientName"`
	PatientAge            int    `bson:"patientAge,omitempty" json:"patientAge,omitempty"`
	PatientMedicalHistory string `bson:"patientMedicalHistory,omitempty" json:"patientMedicalHistory,omitempty"`
	DoctorName            string `bson:"doctorName" json:"doctorName"`
	Specialization        string `bson:"specialization" json:"specialization"`
	Location              string `bson:"location,omitempty" json:"location,omitempty"`
	ConsultationFeeMinor  int64  `bson:"consultationFeeMinor" json:"consultationFeeMinor"`

	Date         string            `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time         string            `bson:"time" json:"time"` // "HH:MM"
	Status       AppointmentStatus `bson:"status" json:"status"`
	CancelReason string            `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CreatedAt    time.Time         `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the input for creating an appointment.
type BookingRequest struct {
	PatientID string `json:"patientId" binding:"required"`
	DoctorID  string `json:"doctorId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}
