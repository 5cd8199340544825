package assistant

import (
	"context"
	"strings"
	"testing"

	appointmentRepo "mediconnect/database/repository/appointment"
	userRepo "mediconnect/database/repository/user"
	"mediconnect/models"
	"mediconnect/services/scheduling"
)

func newTestAssistant(t *testing.T) (*DefaultAssistantService, scheduling.SchedulingEngine) {
	t.Helper()

	users := userRepo.NewMemoryUserRepo()
	seed := []models.User{
		{
			ID: "doc-1", FirstName: "Rajesh", LastName: "Sharma", Role: models.RoleDoctor,
			Specialization: "Cardiology", Location: "Mumbai", ConsultationFeeMinor: 50000,
			AvailableDays:  []int{1, 2, 3, 4, 5},
			AvailableSlots: []string{"09:00", "10:00"},
		},
		{
			ID: "doc-2", FirstName: "Priya", LastName: "Patel", Role: models.RoleDoctor,
			Specialization: "Dermatology", Location: "Pune", ConsultationFeeMinor: 40000,
			AvailableDays:  []int{1, 2, 3, 4, 5},
			AvailableSlots: []string{"10:00", "11:00"},
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
	return NewAssistantService(NewMemorySessionStore(), users, engine), engine
}

// say sends one message and fails the test on transport-level errors.
func say(t *testing.T, svc *DefaultAssistantService, sessionID, message string) *models.AssistantReply {
	t.Helper()
	reply, err := svc.Converse(context.Background(), sessionID, "pat-1", message)
	if err != nil {
		t.Fatalf("message %q: %v", message, err)
	}
	return reply
}

func TestConverseBooksEndToEnd(t *testing.T) {
	svc, _ := newTestAssistant(t)

	reply := say(t, svc, "", "I've been having chest pain at night")
	if reply.Step != models.StepConfirmSpec {
		t.Fatalf("step = %q, want confirm_spec", reply.Step)
	}
	if !strings.Contains(reply.Message, "Cardiology") {
		t.Fatalf("message %q does not mention Cardiology", reply.Message)
	}
	session := reply.SessionID
	if session == "" {
		t.Fatal("no session ID assigned")
	}

	reply = say(t, svc, session, "yes")
	if reply.Step != models.StepDate {
		t.Fatalf("step = %q, want date", reply.Step)
	}

	reply = say(t, svc, session, "2026-02-16")
	if reply.Step != models.StepTime {
		t.Fatalf("step = %q, want time", reply.Step)
	}

	reply = say(t, svc, session, "09:00")
	if reply.Step != models.StepSelectDoctor {
		t.Fatalf("step = %q, want select_doctor: %s", reply.Step, reply.Message)
	}
	if !strings.Contains(reply.Message, "Dr. Rajesh Sharma") {
		t.Fatalf("candidates message %q does not list the cardiologist", reply.Message)
	}

	reply = say(t, svc, session, "1")
	if reply.Step != models.StepConfirm {
		t.Fatalf("step = %q, want confirm", reply.Step)
	}

	reply = say(t, svc, session, "yes")
	if reply.Step != models.StepDone {
		t.Fatalf("step = %q, want done", reply.Step)
	}
	if reply.Appointment == nil {
		t.Fatal("no appointment attached to the final reply")
	}
	if reply.Appointment.DoctorID != "doc-1" || reply.Appointment.Time != "09:00" {
		t.Fatalf("appointment = %+v", reply.Appointment)
	}
	if reply.Appointment.Status != models.StatusBooked {
		t.Fatalf("status = %q, want Booked", reply.Appointment.Status)
	}
}

func TestConverseUnknownSymptomsStaysOnFirstStep(t *testing.T) {
	svc, _ := newTestAssistant(t)

	reply := say(t, svc, "", "I feel a bit off")
	if reply.Step != models.StepSymptoms {
		t.Fatalf("step = %q, want symptoms", reply.Step)
	}
}

func TestConverseDecliningSpecializationRestarts(t *testing.T) {
	svc, _ := newTestAssistant(t)

	reply := say(t, svc, "", "my skin has a rash")
	if !strings.Contains(reply.Message, "Dermatology") {
		t.Fatalf("message %q does not mention Dermatology", reply.Message)
	}

	reply = say(t, svc, reply.SessionID, "no")
	if reply.Step != models.StepSymptoms {
		t.Fatalf("step = %q, want symptoms after declining", reply.Step)
	}
}

func TestConverseRejectsMalformedDateAndTime(t *testing.T) {
	svc, _ := newTestAssistant(t)

	reply := say(t, svc, "", "chest pain")
	session := reply.SessionID
	say(t, svc, session, "yes")

	reply = say(t, svc, session, "next tuesday")
	if reply.Step != models.StepDate {
		t.Fatalf("step = %q, want date retry", reply.Step)
	}

	say(t, svc, session, "2026-02-16")
	reply = say(t, svc, session, "morning")
	if reply.Step != models.StepTime {
		t.Fatalf("step = %q, want time retry", reply.Step)
	}
}

func TestConverseNoDoctorFreeAsksForAnotherTime(t *testing.T) {
	svc, engine := newTestAssistant(t)

	// Occupy the only cardiology slot at 09:00.
	if _, err := engine.BookAppointment(models.BookingRequest{
		PatientID: "pat-1", DoctorID: "doc-1", Date: "2026-02-16", Time: "09:00",
	}); err != nil {
		t.Fatal(err)
	}

	reply := say(t, svc, "", "chest pain")
	session := reply.SessionID
	say(t, svc, session, "yes")
	say(t, svc, session, "2026-02-16")

	reply = say(t, svc, session, "09:00")
	if reply.Step != models.StepTime {
		t.Fatalf("step = %q, want time retry", reply.Step)
	}
	if !strings.Contains(reply.Message, "No Cardiology doctor is free") {
		t.Fatalf("message = %q", reply.Message)
	}
}

func TestConverseBookingConflictKeepsSessionAlive(t *testing.T) {
	svc, engine := newTestAssistant(t)

	reply := say(t, svc, "", "chest pain")
	session := reply.SessionID
	say(t, svc, session, "yes")
	say(t, svc, session, "2026-02-16")
	say(t, svc, session, "09:00")
	say(t, svc, session, "1")

	// Someone else grabs the slot between selection and confirmation.
	if _, err := engine.BookAppointment(models.BookingRequest{
		PatientID: "pat-1", DoctorID: "doc-1", Date: "2026-02-16", Time: "09:00",
	}); err != nil {
		t.Fatal(err)
	}

	reply = say(t, svc, session, "yes")
	if reply.Step != models.StepTime {
		t.Fatalf("step = %q, want time after conflict", reply.Step)
	}
	if reply.Appointment != nil {
		t.Fatal("conflicting confirmation still produced an appointment")
	}

	// The conversation recovers with a free time.
	reply = say(t, svc, session, "10:00")
	if reply.Step != models.StepSelectDoctor {
		t.Fatalf("step = %q, want select_doctor on retry", reply.Step)
	}
}

func TestConverseDecliningConfirmationEndsWithoutBooking(t *testing.T) {
	svc, engine := newTestAssistant(t)

	reply := say(t, svc, "", "chest pain")
	session := reply.SessionID
	say(t, svc, session, "yes")
	say(t, svc, session, "2026-02-16")
	say(t, svc, session, "09:00")
	say(t, svc, session, "1")

	reply = say(t, svc, session, "no")
	if reply.Step != models.StepDone {
		t.Fatalf("step = %q, want done", reply.Step)
	}

	booked, err := engine.IsSlotBooked("doc-1", "2026-02-16", "09:00")
	if err != nil {
		t.Fatal(err)
	}
	if booked {
		t.Fatal("declined confirmation still booked the slot")
	}
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	missing, err := store.Get(ctx, "nope")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Fatalf("missing session = %+v, want nil", missing)
	}

	session := &models.AssistantSession{ID: "s1", PatientID: "pat-1", Step: models.StepDate}
	if err := store.Save(ctx, session); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Step != models.StepDate {
		t.Fatalf("got = %+v", got)
	}

	// Mutating the copy does not corrupt the stored session.
	got.Step = models.StepDone
	again, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if again.Step != models.StepDate {
		t.Fatalf("stored session mutated: %+v", again)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	gone, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if gone != nil {
		t.Fatalf("deleted session = %+v, want nil", gone)
	}
}
