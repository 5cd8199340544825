package scheduling

import (
	"sync"
	"testing"
	"time"

	appointmentRepo "mediconnect/database/repository/appointment"
	userRepo "mediconnect/database/repository/user"
	"mediconnect/models"
)

// 2026-02-16 is a Monday, 2026-02-15 a Sunday.
const (
	monday = "2026-02-16"
	sunday = "2026-02-15"
)

type recordingScheduler struct {
	mu        sync.Mutex
	scheduled []string
}

func (r *recordingScheduler) ScheduleReminder(apt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled = append(r.scheduled, apt.ID)
	return nil
}

func newTestEngine(t *testing.T) (*DefaultSchedulingEngine, *recordingScheduler) {
	t.Helper()

	users := userRepo.NewMemoryUserRepo()
	seed := []models.User{
		{
			ID: "doc-1", FirstName: "Rajesh", LastName: "Sharma", Role: models.RoleDoctor,
			Specialization: "Cardiology", Location: "Mumbai", ConsultationFeeMinor: 50000,
			AvailableDays:  []int{1, 2, 3, 4, 5, 6},
			AvailableSlots: []string{"09:00", "10:00", "11:00", "15:00", "16:00"},
		},
		{
			ID: "doc-2", FirstName: "Priya", LastName: "Patel", Role: models.RoleDoctor,
			Specialization: "Dermatology", Location: "Pune", ConsultationFeeMinor: 40000,
			AvailableDays:  []int{1, 2, 3, 4, 5},
			AvailableSlots: []string{"10:00", "11:00", "14:00", "15:00", "16:00"},
		},
		{
			ID: "pat-1", FirstName: "John", LastName: "Doe", Role: models.RolePatient,
			Age: 32, MedicalHistory: "No significant history",
		},
		{
			ID: "pat-2", FirstName: "Jane", LastName: "Smith", Role: models.RolePatient,
			Age: 28, MedicalHistory: "Mild asthma",
		},
	}
	for i := range seed {
		if err := users.Create(&seed[i]); err != nil {
			t.Fatalf("seeding user %s: %v", seed[i].ID, err)
		}
	}

	reminders := &recordingScheduler{}
	engine := &DefaultSchedulingEngine{
		Repo:      appointmentRepo.NewMemoryAppointmentRepo(),
		Users:     users,
		Reminders: reminders,
	}
	return engine, reminders
}

func mustBook(t *testing.T, engine *DefaultSchedulingEngine, patientID, doctorID, date, timeOfDay string) *models.Appointment {
	t.Helper()
	apt, err := engine.BookAppointment(models.BookingRequest{
		PatientID: patientID, DoctorID: doctorID, Date: date, Time: timeOfDay,
	})
	if err != nil {
		t.Fatalf("booking %s/%s %s %s: %v", patientID, doctorID, date, timeOfDay, err)
	}
	return apt
}

func TestBookAppointmentSnapshotsParties(t *testing.T) {
	engine, reminders := newTestEngine(t)

	apt := mustBook(t, engine, "pat-1", "doc-1", monday, "09:00")

	if apt.Status != models.StatusBooked {
		t.Errorf("status = %q, want %q", apt.Status, models.StatusBooked)
	}
	if apt.ID == "" {
		t.Error("appointment has no ID")
	}
	if apt.DoctorName != "Dr. Rajesh Sharma" {
		t.Errorf("doctorName = %q, want %q", apt.DoctorName, "Dr. Rajesh Sharma")
	}
	if apt.PatientName != "John Doe" {
		t.Errorf("patientName = %q, want %q", apt.PatientName, "John Doe")
	}
	if apt.PatientAge != 32 {
		t.Errorf("patientAge = %d, want 32", apt.PatientAge)
	}
	if apt.Specialization != "Cardiology" || apt.Location != "Mumbai" {
		t.Errorf("doctor snapshot = %q/%q, want Cardiology/Mumbai", apt.Specialization, apt.Location)
	}
	if apt.ConsultationFeeMinor != 50000 {
		t.Errorf("fee = %d, want 50000", apt.ConsultationFeeMinor)
	}
	if apt.CreatedAt.IsZero() {
		t.Error("createdAt not set")
	}

	if len(reminders.scheduled) != 1 || reminders.scheduled[0] != apt.ID {
		t.Errorf("reminders scheduled = %v, want [%s]", reminders.scheduled, apt.ID)
	}
}

func TestBookAppointmentSnapshotSurvivesProfileChange(t *testing.T) {
	engine, _ := newTestEngine(t)

	apt := mustBook(t, engine, "pat-1", "doc-1", monday, "09:00")

	doc, err := engine.Users.GetByID("doc-1")
	if err != nil {
		t.Fatal(err)
	}
	doc.Location = "Delhi"
	doc.ConsultationFeeMinor = 99900
	if err := engine.Users.Update(doc); err != nil {
		t.Fatal(err)
	}

	got, err := engine.GetAppointment(apt.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Location != "Mumbai" || got.ConsultationFeeMinor != 50000 {
		t.Errorf("snapshot changed with profile: %q/%d", got.Location, got.ConsultationFeeMinor)
	}
}

func TestBookAppointmentRejectsDoubleBooking(t *testing.T) {
	engine, _ := newTestEngine(t)

	mustBook(t, engine, "pat-1", "doc-1", monday, "09:00")

	_, err := engine.BookAppointment(models.BookingRequest{
		PatientID: "pat-2", DoctorID: "doc-1", Date: monday, Time: "09:00",
	})
	if !IsSlotUnavailable(err) {
		t.Fatalf("err = %v, want slotUnavailable", err)
	}

	// Same time with the other doctor is fine.
	mustBook(t, engine, "pat-2", "doc-2", monday, "10:00")
}

func TestBookAppointmentRejectsUnavailableDay(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.BookAppointment(models.BookingRequest{
		PatientID: "pat-2", DoctorID: "doc-2", Date: sunday, Time: "10:00",
	})
	if !IsDayUnavailable(err) {
		t.Fatalf("err = %v, want dayUnavailable", err)
	}
}

func TestBookAppointmentRejectsUnofferedSlot(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.BookAppointment(models.BookingRequest{
		PatientID: "pat-1", DoctorID: "doc-1", Date: monday, Time: "12:00",
	})
	if !IsSlotUnavailable(err) {
		t.Fatalf("err = %v, want slotUnavailable", err)
	}
}

func TestBookAppointmentValidation(t *testing.T) {
	engine, _ := newTestEngine(t)

	cases := []struct {
		name string
		req  models.BookingRequest
		want func(error) bool
		code string
	}{
		{"bad date", models.BookingRequest{PatientID: "pat-1", DoctorID: "doc-1", Date: "16-02-2026", Time: "09:00"}, IsValidation, CodeValidation},
		{"bad time", models.BookingRequest{PatientID: "pat-1", DoctorID: "doc-1", Date: monday, Time: "9am"}, IsValidation, CodeValidation},
		{"unknown patient", models.BookingRequest{PatientID: "nobody", DoctorID: "doc-1", Date: monday, Time: "09:00"}, IsNotFound, CodeNotFound},
		{"unknown doctor", models.BookingRequest{PatientID: "pat-1", DoctorID: "nobody", Date: monday, Time: "09:00"}, IsNotFound, CodeNotFound},
		{"patient as doctor", models.BookingRequest{PatientID: "pat-1", DoctorID: "pat-2", Date: monday, Time: "09:00"}, IsNotFound, CodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.BookAppointment(tc.req)
			if !tc.want(err) {
				t.Fatalf("err = %v, want code %s", err, tc.code)
			}
		})
	}
}

func TestConcurrentBookingSingleWinner(t *testing.T) {
	engine, _ := newTestEngine(t)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.BookAppointment(models.BookingRequest{
				PatientID: "pat-1", DoctorID: "doc-1", Date: monday, Time: "10:00",
			})
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case IsSlotUnavailable(err):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if won != 1 {
		t.Fatalf("winners = %d, want 1", won)
	}
}

func TestCancelFreesSlotForRebooking(t *testing.T) {
	engine, _ := newTestEngine(t)

	apt := mustBook(t, engine, "pat-1", "doc-1", monday, "09:00")

	cancelled, err := engine.CancelAppointment(apt.ID, "patient request")
	if err != nil {
		t.Fatal(err)
	}
	if cancelled.Status != models.StatusCancelled || cancelled.CancelReason != "patient request" {
		t.Fatalf("cancelled = %q/%q", cancelled.Status, cancelled.CancelReason)
	}

	booked, err := engine.IsSlotBooked("doc-1", monday, "09:00")
	if err != nil {
		t.Fatal(err)
	}
	if booked {
		t.Fatal("slot still booked after cancellation")
	}

	mustBook(t, engine, "pat-2", "doc-1", monday, "09:00")
}

func TestCancelDefaultsReason(t *testing.T) {
	engine, _ := newTestEngine(t)

	apt := mustBook(t, engine, "pat-1", "doc-1", monday, "09:00")
	cancelled, err := engine.CancelAppointment(apt.ID, "  ")
	if err != nil {
		t.Fatal(err)
	}
	if cancelled.CancelReason != "Cancelled by admin" {
		t.Errorf("reason = %q, want %q", cancelled.CancelReason, "Cancelled by admin")
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	engine, _ := newTestEngine(t)

	apt := mustBook(t, engine, "pat-1", "doc-1", monday, "09:00")
	if _, err := engine.CancelAppointment(apt.ID, "first reason"); err != nil {
		t.Fatal(err)
	}

	again, err := engine.CancelAppointment(apt.ID, "second reason")
	if err != nil {
		t.Fatal(err)
	}
	if again.CancelReason != "first reason" {
		t.Errorf("reason = %q, want the original %q preserved", again.CancelReason, "first reason")
	}
}

func TestCancelCompletedAppointmentFails(t *testing.T) {
	engine, _ := newTestEngine(t)

	apt := mustBook(t, engine, "pat-1", "doc-1", monday, "09:00")
	if _, err := engine.AcceptAppointment(apt.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := engine.UpdateAppointmentStatus(apt.ID, models.StatusCompleted); err != nil {
		t.Fatal(err)
	}

	_, err := engine.CancelAppointment(apt.ID, "too late")
	if !IsInvalidTransition(err) {
		t.Fatalf("err = %v, want invalidTransition", err)
	}
}

func TestRejectRequiresReasonAndFreesSlot(t *testing.T) {
	engine, _ := newTestEngine(t)

	apt := mustBook(t, engine, "pat-1", "doc-1", monday, "09:00")

	if _, err := engine.RejectAppointment(apt.ID, "   "); !IsValidation(err) {
		t.Fatalf("blank reason err = %v, want validation", err)
	}

	rejected, err := engine.RejectAppointment(apt.ID, "fully booked elsewhere")
	if err != nil {
		t.Fatal(err)
	}
	if rejected.Status != models.StatusCancelled || rejected.CancelReason != "fully booked elsewhere" {
		t.Fatalf("rejected = %q/%q", rejected.Status, rejected.CancelReason)
	}

	mustBook(t, engine, "pat-2", "doc-1", monday, "09:00")
}

func TestRejectOnlyFromBooked(t *testing.T) {
	engine, _ := newTestEngine(t)

	apt := mustBook(t, engine, "pat-1", "doc-1", monday, "09:00")
	if _, err := engine.AcceptAppointment(apt.ID); err != nil {
		t.Fatal(err)
	}

	_, err := engine.RejectAppointment(apt.ID, "changed my mind")
	if !IsInvalidTransition(err) {
		t.Fatalf("err = %v, want invalidTransition", err)
	}
}

func TestAppointmentLifecycle(t *testing.T) {
	engine, _ := newTestEngine(t)

	apt := mustBook(t, engine, "pat-1", "doc-1", monday, "09:00")

	accepted, err := engine.AcceptAppointment(apt.ID)
	if err != nil {
		t.Fatal(err)
	}
	if accepted.Status != models.StatusAccepted {
		t.Fatalf("status = %q, want Accepted", accepted.Status)
	}

	started, err := engine.UpdateAppointmentStatus(apt.ID, models.StatusInProgress)
	if err != nil {
		t.Fatal(err)
	}
	if started.Status != models.StatusInProgress {
		t.Fatalf("status = %q, want In Progress", started.Status)
	}

	completed, err := engine.UpdateAppointmentStatus(apt.ID, models.StatusCompleted)
	if err != nil {
		t.Fatal(err)
	}
	if completed.Status != models.StatusCompleted {
		t.Fatalf("status = %q, want Completed", completed.Status)
	}

	if _, err := engine.AcceptAppointment(apt.ID); !IsInvalidTransition(err) {
		t.Fatalf("accept after completion err = %v, want invalidTransition", err)
	}
}

func TestUpdateAppointmentStatusRejectsUnknownStatus(t *testing.T) {
	engine, _ := newTestEngine(t)

	apt := mustBook(t, engine, "pat-1", "doc-1", monday, "09:00")
	_, err := engine.UpdateAppointmentStatus(apt.ID, models.AppointmentStatus("Snoozed"))
	if !IsValidation(err) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestUpdateAppointmentStatusRejectsSkippedStates(t *testing.T) {
	engine, _ := newTestEngine(t)

	apt := mustBook(t, engine, "pat-1", "doc-1", monday, "09:00")
	_, err := engine.UpdateAppointmentStatus(apt.ID, models.StatusInProgress)
	if !IsInvalidTransition(err) {
		t.Fatalf("Booked -> In Progress err = %v, want invalidTransition", err)
	}
}

func TestListOpenSlots(t *testing.T) {
	engine, _ := newTestEngine(t)

	doc, err := engine.Users.GetByID("doc-1")
	if err != nil {
		t.Fatal(err)
	}

	mustBook(t, engine, "pat-1", "doc-1", monday, "10:00")

	open, err := engine.ListOpenSlots(doc, monday)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"09:00", "11:00", "15:00", "16:00"}
	if len(open) != len(want) {
		t.Fatalf("open = %v, want %v", open, want)
	}
	for i := range want {
		if open[i] != want[i] {
			t.Fatalf("open = %v, want %v", open, want)
		}
	}
}

func TestListOpenSlotsEmptyOnUnavailableDay(t *testing.T) {
	engine, _ := newTestEngine(t)

	doc, err := engine.Users.GetByID("doc-2")
	if err != nil {
		t.Fatal(err)
	}
	open, err := engine.ListOpenSlots(doc, sunday)
	if err != nil {
		t.Fatal(err)
	}
	if len(open) != 0 {
		t.Fatalf("open = %v, want empty", open)
	}
}

func TestIsDayAvailableUsesWeekday(t *testing.T) {
	engine, _ := newTestEngine(t)

	doc, err := engine.Users.GetByID("doc-2")
	if err != nil {
		t.Fatal(err)
	}

	for date, want := range map[string]bool{monday: true, sunday: false} {
		got, err := engine.IsDayAvailable(doc, date)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			day, _ := time.Parse("2006-01-02", date)
			t.Errorf("IsDayAvailable(%s %s) = %v, want %v", date, day.Weekday(), got, want)
		}
	}

	if _, err := engine.IsDayAvailable(doc, "not-a-date"); !IsValidation(err) {
		t.Errorf("err = %v, want validation", err)
	}
}

func TestGetAppointmentNotFound(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.GetAppointment("missing")
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want notFound", err)
	}
}
