package models

import "time"

// Role identifies what a user can do on the platform.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// User represents a clinic account. Doctor- and patient-specific fields are
// only populated for the matching role.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Phone        string    `bson:"phone" json:"phone"`
	FirstName    string    `bson:"firstName" json:"firstName"`
	LastName     string    `bson:"lastName" json:"lastName"`
	Role         Role      `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`

	// Doctor profile.
	Specialization       string   `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Location             string   `bson:"location,omitempty" json:"location,omitempty"`
	ConsultationFeeMinor int64    `bson:"consultationFeeMinor,omitempty" json:"consultationFeeMinor,omitempty"`
	AvailableDays        []int    `bson:"availableDays,omitempty" json:"availableDays,omitempty"` // weekday indices, 0 = Sunday
	AvailableSlots       []string `bson:"availableSlots,omitempty" json:"availableSlots,omitempty"` // "HH:MM", shared across all days

	// Patient profile.
	Age            int    `bson:"age,omitempty" json:"age,omitempty"`
	MedicalHistory string `bson:"medicalHistory,omitempty" json:"medicalHistory,omitempty"`
}

// RegistrationInput carries the fields accepted when creating an account.
type RegistrationInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      Role   `json:"role" binding:"required"`

	Specialization       string   `json:"specialization"`
	Location             string   `json:"location"`
	ConsultationFeeMinor int64    `json:"consultationFeeMinor"`
	AvailableDays        []int    `json:"availableDays"`
	AvailableSlots       []string `json:"availableSlots"`

	Age            int    `json:"age"`
	MedicalHistory string `json:"medicalHistory"`
}

// LoginRequest carries sign-in credentials. Identifier is an email address or
// a username.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful sign-in.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// DisplayName is the name shown on appointments and prescriptions.
func (u *User) DisplayName() string {
	name := u.FirstName + " " + u.LastName
	if u.Role == RoleDoctor {
		return "Dr. " + name
	}
	return name
}

// IsDoctor reports whether the user carries a doctor profile.
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}
