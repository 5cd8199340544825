package scheduling

import (
	"errors"
	"fmt"
)

// Error codes returned by the scheduling engine. Every failure is recoverable
// at the call site; state is never partially mutated.
const (
	CodeDayUnavailable    = "dayUnavailable"    // doctor does not consult on that weekday
	CodeSlotUnavailable   = "slotUnavailable"   // slot not offered, or already booked
	CodeInvalidTransition = "invalidTransition" // status change not permitted from current state
	CodeValidation        = "validationError"   // malformed or missing input
	CodeNotFound          = "notFound"          // unknown appointment, doctor or patient
)

type EngineError struct {
	Code    string
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newEngineError(code, format string, args ...any) error {
	return &EngineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode extracts the engine error code, or "" for foreign errors.
func ErrorCode(err error) string {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ""
}

func IsNotFound(err error) bool          { return ErrorCode(err) == CodeNotFound }
func IsDayUnavailable(err error) bool    { return ErrorCode(err) == CodeDayUnavailable }
func IsSlotUnavailable(err error) bool   { return ErrorCode(err) == CodeSlotUnavailable }
func IsInvalidTransition(err error) bool { return ErrorCode(err) == CodeInvalidTransition }
func IsValidation(err error) bool        { return ErrorCode(err) == CodeValidation }
