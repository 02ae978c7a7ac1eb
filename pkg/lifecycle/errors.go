package lifecycle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

// FieldErrors maps an offending field name to a human-readable message so a
// caller can render the message next to the field instead of as a generic
// failure.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "no field errors"
	}
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fe))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, fe[field]))
	}
	return strings.Join(parts, "; ")
}

// NotEditableError is returned when a requester attempts to change or delete
// a request that already left the PENDING state.
type NotEditableError struct {
	ID     uint
	Status models.RequestStatus
}

func (e *NotEditableError) Error() string {
	return fmt.Sprintf("request %d is %s and can no longer be edited", e.ID, e.Status)
}

// InvalidTransitionError is returned when approve or reject is attempted on a
// request that is not PENDING. APPROVED and REJECTED are terminal.
type InvalidTransitionError struct {
	ID   uint
	From models.RequestStatus
	To   models.RequestStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("request %d cannot move from %s to %s", e.ID, e.From, e.To)
}

// SensorUnavailableError is returned when an approval names a sensor that is
// not in the AVAILABLE state.
type SensorUnavailableError struct {
	SensorID uint
	Status   models.SensorStatus
}

func (e *SensorUnavailableError) Error() string {
	return fmt.Sprintf("sensor %d is %s and cannot be assigned", e.SensorID, e.Status)
}
