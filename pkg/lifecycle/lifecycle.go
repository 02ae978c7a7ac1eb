// Package lifecycle holds the status state machine for community
// sensor-placement requests: PENDING is the initial state, APPROVED and
// REJECTED are terminal, and exactly one transition ever happens, by admin
// action. The package only validates input and computes new records; callers
// own persistence.
package lifecycle

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

const (
	JustificationMinLen = 30
	JustificationMaxLen = 150
)

const (
	FieldRequestedLocation = "requestedLocation"
	FieldCoordinates       = "coordinates"
	FieldJustification     = "justification"
)

// CreateInput carries the requester-settable fields of a new request.
// Latitude and Longitude are pointers so "never picked on the map" is
// distinguishable from a genuine (0, 0) point.
type CreateInput struct {
	RequestedLocation string   `json:"requestedLocation"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	Justification     string   `json:"justification"`
}

// Patch carries a partial edit; nil fields are left untouched.
type Patch struct {
	RequestedLocation *string  `json:"requestedLocation,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	Justification     *string  `json:"justification,omitempty"`
}

func justificationLengthOK(justification string) bool {
	n := utf8.RuneCountInString(justification)
	return n >= JustificationMinLen && n <= JustificationMaxLen
}

// ValidateCreate checks the requester-settable fields and returns a
// field-keyed error map, nil when everything passes. It never rejects with a
// generic failure, so callers can surface inline messages.
func ValidateCreate(input CreateInput) FieldErrors {
	fieldErrs := FieldErrors{}

	if strings.TrimSpace(input.RequestedLocation) == "" {
		fieldErrs[FieldRequestedLocation] = "requested location is required"
	}
	if input.Latitude == nil || input.Longitude == nil {
		fieldErrs[FieldCoordinates] = "a location must be picked on the map"
	}
	if !justificationLengthOK(input.Justification) {
		fieldErrs[FieldJustification] = "justification must be 30 to 150 characters"
	}

	if len(fieldErrs) == 0 {
		return nil
	}
	return fieldErrs
}

// ValidateEdit checks a partial edit against an existing request. A request
// that already left PENDING yields a NotEditableError; otherwise each field
// present in the patch is held to the same constraints as on create.
func ValidateEdit(existing *models.CommunityRequest, patch Patch) error {
	if !existing.IsPending() {
		return &NotEditableError{ID: existing.ID, Status: existing.Status}
	}

	fieldErrs := FieldErrors{}

	if patch.RequestedLocation != nil && strings.TrimSpace(*patch.RequestedLocation) == "" {
		fieldErrs[FieldRequestedLocation] = "requested location is required"
	}
	// Coordinates move together, a point picked on the map has both.
	if (patch.Latitude == nil) != (patch.Longitude == nil) {
		fieldErrs[FieldCoordinates] = "latitude and longitude must be updated together"
	}
	if patch.Justification != nil && !justificationLengthOK(*patch.Justification) {
		fieldErrs[FieldJustification] = "justification must be 30 to 150 characters"
	}

	if len(fieldErrs) == 0 {
		return nil
	}
	return fieldErrs
}

// ApplyPatch returns a copy of existing with the patch fields applied and
// UpdatedAt bumped. Callers validate first.
func ApplyPatch(existing *models.CommunityRequest, patch Patch) models.CommunityRequest {
	updated := *existing
	if patch.RequestedLocation != nil {
		updated.RequestedLocation = *patch.RequestedLocation
	}
	if patch.Latitude != nil {
		updated.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		updated.Longitude = *patch.Longitude
	}
	if patch.Justification != nil {
		updated.Justification = *patch.Justification
	}
	updated.UpdatedAt = time.Now()
	return updated
}

// Approve computes the APPROVED record for a pending request: assigns the
// sensor, stamps ApprovedAt and attribution, and records the (optional)
// admin comments. The sensor must currently be AVAILABLE.
func Approve(existing *models.CommunityRequest, sensor *models.Sensor, approvedByName, comments string) (models.CommunityRequest, error) {
	if !existing.IsPending() {
		return models.CommunityRequest{}, &InvalidTransitionError{
			ID:   existing.ID,
			From: existing.Status,
			To:   models.RequestStatusApproved,
		}
	}
	if !sensor.IsAvailable() {
		return models.CommunityRequest{}, &SensorUnavailableError{
			SensorID: sensor.ID,
			Status:   sensor.Status,
		}
	}

	now := time.Now()
	approved := *existing
	approved.Status = models.RequestStatusApproved
	approved.SensorID = &sensor.ID
	approved.SensorName = sensor.Name
	approved.AdminComments = comments
	approved.ApprovedAt = &now
	approved.ApprovedByName = approvedByName
	approved.UpdatedAt = now
	return approved, nil
}

// Reject computes the REJECTED record for a pending request. Comments are
// always recorded; an empty string is allowed by policy.
func Reject(existing *models.CommunityRequest, comments string) (models.CommunityRequest, error) {
	if !existing.IsPending() {
		return models.CommunityRequest{}, &InvalidTransitionError{
			ID:   existing.ID,
			From: existing.Status,
			To:   models.RequestStatusRejected,
		}
	}

	now := time.Now()
	rejected := *existing
	rejected.Status = models.RequestStatusRejected
	rejected.AdminComments = comments
	rejected.RejectedAt = &now
	rejected.UpdatedAt = now
	return rejected, nil
}
