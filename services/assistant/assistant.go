package assistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	userRepo "mediconnect/database/repository/user"
	"mediconnect/models"
	"mediconnect/services/scheduling"

	"github.com/google/uuid"
)

// symptomSpecializations maps symptom keywords to the specialization that
// usually handles them. First match wins, scanned in declaration order.
var symptomSpecializations = []struct {
	keywords       []string
	specialization string
}{
	{[]string{"chest pain", "heart", "palpitation", "blood pressure"}, "Cardiology"},
	{[]string{"skin", "rash", "acne", "itch"}, "Dermatology"},
	{[]string{"bone", "joint", "fracture", "back pain", "knee"}, "Orthopedics"},
	{[]string{"fever", "cold", "cough", "headache", "stomach"}, "General Medicine"},
}

func matchSpecialization(message string) string {
	lower := strings.ToLower(message)
	for _, entry := range symptomSpecializations {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.specialization
			}
		}
	}
	return ""
}

func isAffirmative(message string) bool {
	switch strings.ToLower(strings.TrimSpace(message)) {
	case "yes", "y", "yeah", "yep", "sure", "ok", "okay", "confirm":
		return true
	}
	return false
}

// AssistantService runs the guided booking conversation: symptoms are mapped
// to a specialization, then the patient picks a date, a time and a doctor, and
// the booking goes through the scheduling engine like any other.
type AssistantService interface {
	Converse(ctx context.Context, sessionID, patientID, message string) (*models.AssistantReply, error)
}

type DefaultAssistantService struct {
	Sessions SessionStore
	Users    userRepo.UserRepository
	Engine   scheduling.SchedulingEngine
}

func NewAssistantService(sessions SessionStore, users userRepo.UserRepository, engine scheduling.SchedulingEngine) *DefaultAssistantService {
	return &DefaultAssistantService{Sessions: sessions, Users: users, Engine: engine}
}

// Converse advances the conversation by one message. An empty sessionID
// starts a new conversation.
func (as *DefaultAssistantService) Converse(ctx context.Context, sessionID, patientID, message string) (*models.AssistantReply, error) {
	session, err := as.loadOrCreate(ctx, sessionID, patientID)
	if err != nil {
		return nil, err
	}

	reply, err := as.step(session, message)
	if err != nil {
		return nil, err
	}
	reply.SessionID = session.ID
	reply.Step = session.Step

	if session.Step == models.StepDone {
		if err := as.Sessions.Delete(ctx, session.ID); err != nil {
			return nil, err
		}
		return reply, nil
	}
	if err := as.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return reply, nil
}

func (as *DefaultAssistantService) loadOrCreate(ctx context.Context, sessionID, patientID string) (*models.AssistantSession, error) {
	if sessionID != "" {
		session, err := as.Sessions.Get(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if session != nil && session.PatientID == patientID {
			return session, nil
		}
	}
	return &models.AssistantSession{
		ID:        uuid.New().String(),
		PatientID: patientID,
		Step:      models.StepSymptoms,
	}, nil
}

func (as *DefaultAssistantService) step(session *models.AssistantSession, message string) (*models.AssistantReply, error) {
	switch session.Step {
	case models.StepSymptoms:
		spec := matchSpecialization(message)
		if spec == "" {
			return &models.AssistantReply{
				Message: "I could not match your symptoms to a specialty. Could you describe them differently? For example: fever, skin rash, chest pain or joint pain.",
			}, nil
		}
		session.Specialization = spec
		session.Step = models.StepConfirmSpec
		return &models.AssistantReply{
			Message: fmt.Sprintf("Based on your symptoms, a %s consultation looks right. Shall I find you a %s doctor? (yes/no)", spec, spec),
		}, nil

	case models.StepConfirmSpec:
		if !isAffirmative(message) {
			session.Specialization = ""
			session.Step = models.StepSymptoms
			return &models.AssistantReply{
				Message: "No problem. Please describe your symptoms again.",
			}, nil
		}
		session.Step = models.StepDate
		return &models.AssistantReply{
			Message: "Great. What date would you like to come in? (YYYY-MM-DD)",
		}, nil

	case models.StepDate:
		date := strings.TrimSpace(message)
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return &models.AssistantReply{
				Message: "That does not look like a valid date. Please use YYYY-MM-DD, for example 2026-03-02.",
			}, nil
		}
		session.Date = date
		session.Step = models.StepTime
		return &models.AssistantReply{
			Message: "And what time suits you? (HH:MM, 24-hour)",
		}, nil

	case models.StepTime:
		timeOfDay := strings.TrimSpace(message)
		if _, err := time.Parse("15:04", timeOfDay); err != nil {
			return &models.AssistantReply{
				Message: "That does not look like a valid time. Please use HH:MM, for example 10:00.",
			}, nil
		}
		session.Time = timeOfDay
		return as.offerDoctors(session)

	case models.StepSelectDoctor:
		return as.selectDoctor(session, message)

	case models.StepConfirm:
		if !isAffirmative(message) {
			session.Step = models.StepDone
			return &models.AssistantReply{
				Message: "Alright, I have not booked anything. Start a new conversation whenever you are ready.",
			}, nil
		}
		return as.book(session)

	default:
		session.Step = models.StepDone
		return &models.AssistantReply{
			Message: "This conversation has finished. Start a new one to book another appointment.",
		}, nil
	}
}

// offerDoctors lists doctors of the chosen specialization with the requested
// slot still open, and moves the conversation to doctor selection.
func (as *DefaultAssistantService) offerDoctors(session *models.AssistantSession) (*models.AssistantReply, error) {
	doctors, err := as.Users.ListDoctors(session.Specialization, "")
	if err != nil {
		return nil, err
	}

	var candidates []models.User
	for i := range doctors {
		doc := &doctors[i]
		open, err := as.Engine.ListOpenSlots(doc, session.Date)
		if err != nil {
			if scheduling.IsValidation(err) {
				continue
			}
			return nil, err
		}
		for _, slot := range open {
			if slot == session.Time {
				candidates = append(candidates, *doc)
				break
			}
		}
	}

	if len(candidates) == 0 {
		msg := fmt.Sprintf("No %s doctor is free at %s on %s. Please pick another time.",
			session.Specialization, session.Time, session.Date)
		session.Time = ""
		return &models.AssistantReply{Message: msg}, nil
	}

	session.DoctorIDs = session.DoctorIDs[:0]
	var b strings.Builder
	b.WriteString("Here are the available doctors:\n")
	for i := range candidates {
		doc := &candidates[i]
		session.DoctorIDs = append(session.DoctorIDs, doc.ID)
		fmt.Fprintf(&b, "%d. %s (%s, consultation fee %.2f)\n",
			i+1, doc.DisplayName(), doc.Location, float64(doc.ConsultationFeeMinor)/100)
	}
	b.WriteString("Reply with the number of the doctor you would like.")
	session.Step = models.StepSelectDoctor
	return &models.AssistantReply{Message: b.String()}, nil
}

func (as *DefaultAssistantService) selectDoctor(session *models.AssistantSession, message string) (*models.AssistantReply, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(message))
	if err != nil || choice < 1 || choice > len(session.DoctorIDs) {
		return &models.AssistantReply{
			Message: fmt.Sprintf("Please reply with a number between 1 and %d.", len(session.DoctorIDs)),
		}, nil
	}

	session.DoctorID = session.DoctorIDs[choice-1]
	doctor, err := as.Users.GetByID(session.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		session.Step = models.StepTime
		return &models.AssistantReply{
			Message: "That doctor is no longer available. Please pick another time.",
		}, nil
	}

	session.Step = models.StepConfirm
	return &models.AssistantReply{
		Message: fmt.Sprintf("Book %s on %s at %s for a fee of %.2f? (yes/no)",
			doctor.DisplayName(), session.Date, session.Time, float64(doctor.ConsultationFeeMinor)/100),
	}, nil
}

// book attempts the booking. Scheduling failures are surfaced as conversation
// messages so the patient can retry with a different time.
func (as *DefaultAssistantService) book(session *models.AssistantSession) (*models.AssistantReply, error) {
	apt, err := as.Engine.BookAppointment(models.BookingRequest{
		PatientID: session.PatientID,
		DoctorID:  session.DoctorID,
		Date:      session.Date,
		Time:      session.Time,
	})
	if err != nil {
		if code := scheduling.ErrorCode(err); code != "" {
			session.Step = models.StepTime
			session.Time = ""
			session.DoctorID = ""
			session.DoctorIDs = nil
			return &models.AssistantReply{
				Message: fmt.Sprintf("I could not book that slot (%s). Please pick another time.", err.Error()),
			}, nil
		}
		return nil, err
	}

	session.Step = models.StepDone
	return &models.AssistantReply{
		Message: fmt.Sprintf("All set. Your appointment with %s is booked for %s at %s.",
			apt.DoctorName, apt.Date, apt.Time),
		Appointment: apt,
	}, nil
}
