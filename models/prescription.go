package models

// Prescription is issued by a doctor against exactly one appointment.
// At most one prescription may exist per appointment.
type Prescription struct {
	ID            string `bson:"id" json:"id"`
	AppointmentID string `bson:"appointmentId" json:"appointmentId"`
	DoctorID      string `bson:"doctorId" json:"doctorId"`
	DoctorName    string `bson:"doctorName" json:"doctorName"`
	PatientID     string `bson:"patientId" json:"patientId"`
	PatientName   string `bson:"patientName" json:"patientName"`
	Date          string `bson:"date" json:"date"`
	MedicineName  string `bson:"medicineName" json:"medicineName"`
	Dosage        string `bson:"dosage" json:"dosage"`
	Duration      string `bson:"duration" json:"duration"`
	Instructions  string `bson:"instructions" json:"instructions"`
}

// PrescriptionInput carries the doctor-entered fields of a new prescription.
type PrescriptionInput struct {
	MedicineName string `json:"medicineName" binding:"required"`
	Dosage       string `json:"dosage" binding:"required"`
	Duration     string `json:"duration" binding:"required"`
	Instructions string `json:"instructions"`
}
