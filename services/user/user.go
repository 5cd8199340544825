package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "mediconnect/database/repository/user"
	"mediconnect/models"
	"mediconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Error codes returned by the user service.
const (
	CodeDuplicate    = "duplicateUser"
	CodeValidation   = "validationError"
	CodeNotFound     = "notFound"
	CodeUnauthorized = "unauthorized"
)

type UserError struct {
	Code    string
	Message string
}

func (e *UserError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newUserError(code, format string, args ...any) error {
	return &UserError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode extracts the user error code, or "" for foreign errors.
func ErrorCode(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Code
	}
	return ""
}

func IsDuplicate(err error) bool    { return ErrorCode(err) == CodeDuplicate }
func IsValidation(err error) bool   { return ErrorCode(err) == CodeValidation }
func IsNotFound(err error) bool     { return ErrorCode(err) == CodeNotFound }
func IsUnauthorized(err error) bool { return ErrorCode(err) == CodeUnauthorized }

const tokenLifetime = 24 * time.Hour

// UserService manages accounts, authentication and doctor discovery.
type UserService interface {
	Register(input models.RegistrationInput) (*models.User, error)
	Authenticate(req models.LoginRequest) (*models.AuthResponse, error)
	GetUser(id string) (*models.User, error)
	UpdateProfile(id string, updated *models.User) (*models.User, error)
	DeleteUser(id string) error
	ListUsers() ([]models.User, error)
	ListDoctors(specialization, location string) ([]models.User, error)
}

type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func NewUserService(repo userRepo.UserRepository) *DefaultUserService {
	return &DefaultUserService{Repo: repo}
}

// Register creates a new account. Email and username must be unique; doctor
// accounts must carry a valid availability configuration.
func (us *DefaultUserService) Register(input models.RegistrationInput) (*models.User, error) {
	switch input.Role {
	case models.RoleAdmin, models.RoleDoctor, models.RolePatient:
	default:
		return nil, newUserError(CodeValidation, "unknown role %q", input.Role)
	}

	if input.Role == models.RoleDoctor {
		if strings.TrimSpace(input.Specialization) == "" {
			return nil, newUserError(CodeValidation, "doctor accounts require a specialization")
		}
		if err := validateAvailability(input.AvailableDays, input.AvailableSlots); err != nil {
			return nil, err
		}
	}

	if existing, err := us.Repo.GetByEmail(input.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, newUserError(CodeDuplicate, "email %s is already registered", input.Email)
	}
	if existing, err := us.Repo.GetByUsername(input.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, newUserError(CodeDuplicate, "username %s is already taken", input.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		CreatedAt:    time.Now(),

		Specialization:       input.Specialization,
		Location:             input.Location,
		ConsultationFeeMinor: input.ConsultationFeeMinor,
		AvailableDays:        input.AvailableDays,
		AvailableSlots:       input.AvailableSlots,

		Age:            input.Age,
		MedicalHistory: input.MedicalHistory,
	}
	if err := us.Repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate verifies credentials and issues a signed token. The token hash
// is cached so the auth middleware can verify revocation cheaply.
func (us *DefaultUserService) Authenticate(req models.LoginRequest) (*models.AuthResponse, error) {
	u, err := us.Repo.GetByEmail(req.Identifier)
	if err != nil {
		return nil, err
	}
	if u == nil {
		if u, err = us.Repo.GetByUsername(req.Identifier); err != nil {
			return nil, err
		}
	}
	if u == nil {
		return nil, newUserError(CodeUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, newUserError(CodeUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(u.ID, string(u.Role), tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	// Skipped when the auth cache is not configured (tests, worker-only runs).
	if cache := utils.AuthCacheClient; cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		key := utils.AuthCachePrefix + utils.HashToken(token)
		if err := cache.Set(ctx, key, u.ID, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache auth token",
				zap.String("userID", u.ID), zap.Error(err))
		}
	}

	return &models.AuthResponse{Token: token, User: u}, nil
}

func (us *DefaultUserService) GetUser(id string) (*models.User, error) {
	u, err := us.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, newUserError(CodeNotFound, "user %s not found", id)
	}
	return u, nil
}

// UpdateProfile applies profile changes. Identity fields (ID, role, password
// hash, creation time) are immutable here; doctor availability changes are
// validated before being stored.
func (us *DefaultUserService) UpdateProfile(id string, updated *models.User) (*models.User, error) {
	current, err := us.GetUser(id)
	if err != nil {
		return nil, err
	}

	if updated.Email != "" && updated.Email != current.Email {
		if existing, err := us.Repo.GetByEmail(updated.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, newUserError(CodeDuplicate, "email %s is already registered", updated.Email)
		}
		current.Email = updated.Email
	}
	if updated.Phone != "" {
		current.Phone = updated.Phone
	}
	if updated.FirstName != "" {
		current.FirstName = updated.FirstName
	}
	if updated.LastName != "" {
		current.LastName = updated.LastName
	}

	if current.IsDoctor() {
		if updated.Specialization != "" {
			current.Specialization = updated.Specialization
		}
		if updated.Location != "" {
			current.Location = updated.Location
		}
		if updated.ConsultationFeeMinor > 0 {
			current.ConsultationFeeMinor = updated.ConsultationFeeMinor
		}
		if updated.AvailableDays != nil || updated.AvailableSlots != nil {
			days := current.AvailableDays
			slots := current.AvailableSlots
			if updated.AvailableDays != nil {
				days = updated.AvailableDays
			}
			if updated.AvailableSlots != nil {
				slots = updated.AvailableSlots
			}
			if err := validateAvailability(days, slots); err != nil {
				return nil, err
			}
			current.AvailableDays = days
			current.AvailableSlots = slots
		}
	} else {
		if updated.Age > 0 {
			current.Age = updated.Age
		}
		if updated.MedicalHistory != "" {
			current.MedicalHistory = updated.MedicalHistory
		}
	}

	if err := us.Repo.Update(current); err != nil {
		return nil, err
	}
	return current, nil
}

func (us *DefaultUserService) DeleteUser(id string) error {
	if _, err := us.GetUser(id); err != nil {
		return err
	}
	return us.Repo.Delete(id)
}

func (us *DefaultUserService) ListUsers() ([]models.User, error) {
	return us.Repo.List()
}

func (us *DefaultUserService) ListDoctors(specialization, location string) ([]models.User, error) {
	return us.Repo.ListDoctors(specialization, location)
}

// validateAvailability checks that weekday indices are 0..6 and slots are
// well-formed HH:MM strings, with no duplicates in either list.
func validateAvailability(days []int, slots []string) error {
	seenDays := make(map[int]bool, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return newUserError(CodeValidation, "availableDays entries must be 0 (Sunday) through 6 (Saturday)")
		}
		if seenDays[d] {
			return newUserError(CodeValidation, "availableDays contains duplicate entry %d", d)
		}
		seenDays[d] = true
	}
	seenSlots := make(map[string]bool, len(slots))
	for _, s := range slots {
		if _, err := time.Parse("15:04", s); err != nil {
			return newUserError(CodeValidation, "invalid slot %q: expected HH:MM", s)
		}
		if seenSlots[s] {
			return newUserError(CodeValidation, "availableSlots contains duplicate entry %q", s)
		}
		seenSlots[s] = true
	}
	return nil
}
