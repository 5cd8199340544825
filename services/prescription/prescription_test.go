package prescription

import (
	"testing"

	appointmentRepo "mediconnect/database/repository/appointment"
	prescriptionRepo "mediconnect/database/repository/prescription"
	userRepo "mediconnect/database/repository/user"
	"mediconnect/models"
	"mediconnect/services/scheduling"
)

func newTestService(t *testing.T) (*DefaultPrescriptionService, *models.Appointment) {
	t.Helper()

	users := userRepo.NewMemoryUserRepo()
	seed := []models.User{
		{
			ID: "doc-1", FirstName: "Rajesh", LastName: "Sharma", Role: models.RoleDoctor,
			Specialization: "Cardiology", Location: "Mumbai",
			AvailableDays:  []int{1, 2, 3, 4, 5},
			AvailableSlots: []string{"09:00", "10:00"},
		},
		{ID: "pat-1", FirstName: "John", LastName: "Doe", Role: models.RolePatient, Age: 32},
	}
	for i := range seed {
		if err := users.Create(&seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	engine := &scheduling.DefaultSchedulingEngine{
		Repo:  appointmentRepo.NewMemoryAppointmentRepo(),
		Users: users,
	}
	apt, err := engine.BookAppointment(models.BookingRequest{
		PatientID: "pat-1", DoctorID: "doc-1", Date: "2026-02-16", Time: "09:00",
	})
	if err != nil {
		t.Fatalf("booking fixture appointment: %v", err)
	}

	return NewPrescriptionService(prescriptionRepo.NewMemoryPrescriptionRepo(), engine), apt
}

func validInput() models.PrescriptionInput {
	return models.PrescriptionInput{
		MedicineName: "Atorvastatin",
		Dosage:       "20mg",
		Duration:     "30 days",
		Instructions: "Take at night",
	}
}

func TestIssuePrescriptionCopiesAppointmentParties(t *testing.T) {
	svc, apt := newTestService(t)

	rx, err := svc.IssuePrescription(apt.ID, "doc-1", validInput())
	if err != nil {
		t.Fatal(err)
	}
	if rx.ID == "" {
		t.Error("prescription has no ID")
	}
	if rx.AppointmentID != apt.ID {
		t.Errorf("appointmentId = %q, want %q", rx.AppointmentID, apt.ID)
	}
	if rx.DoctorName != apt.DoctorName || rx.PatientName != apt.PatientName {
		t.Errorf("parties = %q/%q, want %q/%q", rx.DoctorName, rx.PatientName, apt.DoctorName, apt.PatientName)
	}
	if rx.Date != apt.Date {
		t.Errorf("date = %q, want %q", rx.Date, apt.Date)
	}
}

func TestIssuePrescriptionIsOncePerAppointment(t *testing.T) {
	svc, apt := newTestService(t)

	if _, err := svc.IssuePrescription(apt.ID, "doc-1", validInput()); err != nil {
		t.Fatal(err)
	}

	input := validInput()
	input.MedicineName = "Something else entirely"
	_, err := svc.IssuePrescription(apt.ID, "doc-1", input)
	if !IsDuplicate(err) {
		t.Fatalf("err = %v, want duplicatePrescription", err)
	}
}

func TestIssuePrescriptionRequiredFields(t *testing.T) {
	svc, apt := newTestService(t)

	cases := map[string]models.PrescriptionInput{
		"no medicine": {Dosage: "20mg", Duration: "30 days"},
		"no dosage":   {MedicineName: "Atorvastatin", Duration: "30 days"},
		"no duration": {MedicineName: "Atorvastatin", Dosage: "20mg"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.IssuePrescription(apt.ID, "doc-1", input); !IsValidation(err) {
				t.Fatalf("err = %v, want validation", err)
			}
		})
	}

	// Instructions are optional.
	input := validInput()
	input.Instructions = ""
	if _, err := svc.IssuePrescription(apt.ID, "doc-1", input); err != nil {
		t.Fatalf("optional instructions rejected: %v", err)
	}
}

func TestIssuePrescriptionUnknownAppointment(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.IssuePrescription("missing", "doc-1", validInput())
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want notFound", err)
	}
}

func TestIssuePrescriptionWrongDoctor(t *testing.T) {
	svc, apt := newTestService(t)

	_, err := svc.IssuePrescription(apt.ID, "doc-2", validInput())
	if !IsValidation(err) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestGetByAppointment(t *testing.T) {
	svc, apt := newTestService(t)

	rx, err := svc.GetByAppointment(apt.ID)
	if err != nil {
		t.Fatal(err)
	}
	if rx != nil {
		t.Fatalf("rx = %+v, want nil before issuing", rx)
	}

	issued, err := svc.IssuePrescription(apt.ID, "doc-1", validInput())
	if err != nil {
		t.Fatal(err)
	}

	rx, err = svc.GetByAppointment(apt.ID)
	if err != nil {
		t.Fatal(err)
	}
	if rx == nil || rx.ID != issued.ID {
		t.Fatalf("rx = %+v, want id %s", rx, issued.ID)
	}
}

func TestListForPatientAndDoctor(t *testing.T) {
	svc, apt := newTestService(t)

	if _, err := svc.IssuePrescription(apt.ID, "doc-1", validInput()); err != nil {
		t.Fatal(err)
	}

	byPatient, err := svc.ListForPatient("pat-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(byPatient) != 1 {
		t.Fatalf("patient list = %d entries, want 1", len(byPatient))
	}

	byDoctor, err := svc.ListForDoctor("doc-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(byDoctor) != 1 {
		t.Fatalf("doctor list = %d entries, want 1", len(byDoctor))
	}

	none, err := svc.ListForPatient("pat-2")
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Fatalf("unrelated patient list = %d entries, want 0", len(none))
	}
}
