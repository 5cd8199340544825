package models

// AssistantStep tracks where a guided booking conversation currently is.
type AssistantStep string

const (
	StepSymptoms     AssistantStep = "symptoms"
	StepConfirmSpec  AssistantStep = "confirm_spec"
	StepDate         AssistantStep = "date"
	StepTime         AssistantStep = "time"
	StepSelectDoctor AssistantStep = "select_doctor"
	StepConfirm      AssistantStep = "confirm"
	StepDone         AssistantStep = "done"
)

// AssistantSession is the state of one guided booking conversation,
// cached between messages.
type AssistantSession struct {
	ID             string        `json:"id"`
	PatientID      string        `json:"patientId"`
	Step           AssistantStep `json:"step"`
	Specialization string        `json:"specialization,omitempty"`
	Date           string        `json:"date,omitempty"`
	Time           string        `json:"time,omitempty"`
	DoctorIDs      []string      `json:"doctorIds,omitempty"` // candidates offered at select_doctor
	DoctorID       string        `json:"doctorId,omitempty"`
}

// AssistantReply is what the assistant says back after processing a message.
type AssistantReply struct {
	SessionID   string       `json:"sessionId"`
	Message     string       `json:"message"`
	Step        AssistantStep `json:"step"`
	Appointment *Appointment `json:"appointment,omitempty"` // set once a booking was made
}
