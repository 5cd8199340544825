package seed

import (
	"log"
	"time"

	appointmentRepo "mediconnect/database/repository/appointment"
	prescriptionRepo "mediconnect/database/repository/prescription"
	userRepo "mediconnect/database/repository/user"
	"mediconnect/models"

	"golang.org/x/crypto/bcrypt"
)

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}
	return string(hash)
}

func parseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		log.Fatalf("invalid seed timestamp %q: %v", value, err)
	}
	return t
}

// Seed loads the demo clinic dataset into the given repositories. It is only
// used with the in-memory storage driver, where state is rebuilt on every
// start.
func Seed(users userRepo.UserRepository, appointments appointmentRepo.AppointmentRepository, prescriptions prescriptionRepo.PrescriptionRepository) {
	seedUsers := []models.User{
		{
			ID:           "admin-1",
			Username:     "admin",
			Email:        "admin@virtualclinic.com",
			PasswordHash: mustHash("admin123"),
			Phone:        "9876543210",
			FirstName:    "System",
			LastName:     "Admin",
			Role:         models.RoleAdmin,
			CreatedAt:    parseTime("2025-01-01T00:00:00Z"),
		},
		{
			ID:                   "doc-1",
			Username:             "dr.sharma",
			Email:                "sharma@virtualclinic.com",
			PasswordHash:         mustHash("doctor123"),
			Phone:                "9876543211",
			FirstName:            "Rajesh",
			LastName:             "Sharma",
			Role:                 models.RoleDoctor,
			Specialization:       "Cardiology",
			Location:             "Mumbai",
			ConsultationFeeMinor: 50000,
			AvailableDays:        []int{1, 2, 3, 4, 5, 6},
			AvailableSlots:       []string{"09:00", "10:00", "11:00", "15:00", "16:00"},
			CreatedAt:            parseTime("2025-01-15T00:00:00Z"),
		},
		{
			ID:                   "doc-2",
			Username:             "dr.patel",
			Email:                "patel@virtualclinic.com",
			PasswordHash:         mustHash("doctor123"),
			Phone:                "9876543212",
			FirstName:            "Priya",
			LastName:             "Patel",
			Role:                 models.RoleDoctor,
			Specialization:       "Dermatology",
			Location:             "Pune",
			ConsultationFeeMinor: 40000,
			AvailableDays:        []int{1, 2, 3, 4, 5},
			AvailableSlots:       []string{"10:00", "11:00", "14:00", "15:00", "16:00"},
			CreatedAt:            parseTime("2025-02-01T00:00:00Z"),
		},
		{
			ID:             "pat-1",
			Username:       "john.doe",
			Email:          "john@example.com",
			PasswordHash:   mustHash("patient123"),
			Phone:          "9876543213",
			FirstName:      "John",
			LastName:       "Doe",
			Role:           models.RolePatient,
			Age:            32,
			MedicalHistory: "No significant history",
			CreatedAt:      parseTime("2025-03-01T00:00:00Z"),
		},
		{
			ID:             "pat-2",
			Username:       "jane.smith",
			Email:          "jane@example.com",
			PasswordHash:   mustHash("patient123"),
			Phone:          "9876543214",
			FirstName:      "Jane",
			LastName:       "Smith",
			Role:           models.RolePatient,
			Age:            28,
			MedicalHistory: "Mild asthma",
			CreatedAt:      parseTime("2025-03-15T00:00:00Z"),
		},
	}

	seedAppointments := []models.Appointment{
		{
			ID:                    "apt-1",
			PatientID:             "pat-1",
			PatientName:           "John Doe",
			PatientAge:            32,
			PatientMedicalHistory: "No significant history",
			DoctorID:              "doc-1",
			DoctorName:            "Dr. Rajesh Sharma",
			Specialization:        "Cardiology",
			Location:              "Mumbai",
			ConsultationFeeMinor:  50000,
			Date:                  "2026-02-13",
			Time:                  "10:00",
			Status:                models.StatusBooked,
			CreatedAt:             parseTime("2026-02-10T09:00:00Z"),
		},
		{
			ID:                    "apt-2",
			PatientID:             "pat-2",
			PatientName:           "Jane Smith",
			PatientAge:            28,
			PatientMedicalHistory: "Mild asthma",
			DoctorID:              "doc-2",
			DoctorName:            "Dr. Priya Patel",
			Specialization:        "Dermatology",
			Location:              "Pune",
			ConsultationFeeMinor:  40000,
			Date:                  "2026-02-15",
			Time:                  "15:00",
			Status:                models.StatusCompleted,
			CreatedAt:             parseTime("2026-02-12T14:30:00Z"),
		},
	}

	seedPrescriptions := []models.Prescription{
		{
			ID:            "rx-1",
			AppointmentID: "apt-2",
			DoctorID:      "doc-2",
			DoctorName:    "Dr. Priya Patel",
			PatientID:     "pat-2",
			PatientName:   "Jane Smith",
			Date:          "2026-02-15",
			MedicineName:  "Cetirizine",
			Dosage:        "10mg",
			Duration:      "7 days",
			Instructions:  "Take once daily after meals",
		},
	}

	for i := range seedUsers {
		if err := users.Create(&seedUsers[i]); err != nil {
			log.Fatalf("failed to seed user %s: %v", seedUsers[i].ID, err)
		}
	}
	for i := range seedAppointments {
		if err := appointments.Create(&seedAppointments[i]); err != nil {
			log.Fatalf("failed to seed appointment %s: %v", seedAppointments[i].ID, err)
		}
	}
	for i := range seedPrescriptions {
		if err := prescriptions.Create(&seedPrescriptions[i]); err != nil {
			log.Fatalf("failed to seed prescription %s: %v", seedPrescriptions[i].ID, err)
		}
	}

	log.Printf("Seeded demo data: %d users, %d appointments, %d prescriptions",
		len(seedUsers), len(seedAppointments), len(seedPrescriptions))
}
