package appointmentRepo

import (
	"testing"

	"mediconnect/models"
)

func TestFindActiveSlotIgnoresCancelled(t *testing.T) {
	repo := NewMemoryAppointmentRepo()

	apt := &models.Appointment{
		ID: "apt-1", PatientID: "pat-1", DoctorID: "doc-1",
		Date: "2026-02-16", Time: "09:00", Status: models.StatusBooked,
	}
	if err := repo.Create(apt); err != nil {
		t.Fatal(err)
	}

	got, err := repo.FindActiveSlot("doc-1", "2026-02-16", "09:00")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != "apt-1" {
		t.Fatalf("got = %+v, want apt-1", got)
	}

	// Other tuples are unoccupied.
	for _, tuple := range [][3]string{
		{"doc-2", "2026-02-16", "09:00"},
		{"doc-1", "2026-02-17", "09:00"},
		{"doc-1", "2026-02-16", "10:00"},
	} {
		got, err := repo.FindActiveSlot(tuple[0], tuple[1], tuple[2])
		if err != nil {
			t.Fatal(err)
		}
		if got != nil {
			t.Fatalf("FindActiveSlot(%v) = %+v, want nil", tuple, got)
		}
	}

	apt.Status = models.StatusCancelled
	if err := repo.Update(apt); err != nil {
		t.Fatal(err)
	}

	got, err = repo.FindActiveSlot("doc-1", "2026-02-16", "09:00")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("cancelled appointment still occupies the slot: %+v", got)
	}
}

func TestListsAreScoped(t *testing.T) {
	repo := NewMemoryAppointmentRepo()

	seed := []models.Appointment{
		{ID: "a1", PatientID: "pat-1", DoctorID: "doc-1", Date: "2026-02-16", Time: "09:00", Status: models.StatusBooked},
		{ID: "a2", PatientID: "pat-2", DoctorID: "doc-1", Date: "2026-02-16", Time: "10:00", Status: models.StatusBooked},
		{ID: "a3", PatientID: "pat-1", DoctorID: "doc-2", Date: "2026-02-17", Time: "11:00", Status: models.StatusBooked},
	}
	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	byPatient, err := repo.ListByPatient("pat-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(byPatient) != 2 {
		t.Fatalf("patient list = %d, want 2", len(byPatient))
	}

	byDoctor, err := repo.ListByDoctor("doc-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(byDoctor) != 2 {
		t.Fatalf("doctor list = %d, want 2", len(byDoctor))
	}

	all, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("all = %d, want 3", len(all))
	}
}
