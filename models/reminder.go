package models

// ReminderPayload is the task body queued for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	DoctorName    string `json:"doctorName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
