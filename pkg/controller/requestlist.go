package controller

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/common"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/lifecycle"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

var requestListLogger = common.GetLoggerWith(common.LoggerNameController, zap.String(common.LoggerFieldCategory, common.LoggerCategoryRequest))

// RequestList drives the "my requests" view. Local state only changes
// from confirmed server responses; a failed call leaves the list as it
// was.
type RequestList struct {
	api API

	mu       sync.Mutex
	requests []models.CommunityRequest
	loading  bool
	loadGen  uint64
	closed   bool
}

func NewRequestList(api API) *RequestList {
	return &RequestList{api: api}
}

// Load fetches the caller's requests. When loads overlap, only the
// most recently started one is allowed to publish its result.
func (rl *RequestList) Load(ctx context.Context) error {
	rl.mu.Lock()
	if rl.closed {
		rl.mu.Unlock()
		return ErrClosed
	}
	rl.loadGen++
	gen := rl.loadGen
	rl.loading = true
	rl.mu.Unlock()

	requests, err := rl.api.MyRequests(ctx)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if gen != rl.loadGen || rl.closed {
		// a newer load started while this one was in flight
		return nil
	}
	rl.loading = false
	if err != nil {
		requestListLogger.Warn("Load failed", zap.Error(err))
		return err
	}
	rl.requests = requests
	return nil
}

func (rl *RequestList) Loading() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.loading
}

// Requests returns a snapshot of the loaded list.
func (rl *RequestList) Requests() []models.CommunityRequest {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	out := make([]models.CommunityRequest, len(rl.requests))
	copy(out, rl.requests)
	return out
}

// StatusAll selects every request regardless of status.
const StatusAll models.RequestStatus = "ALL"

// FilterByStatus narrows the snapshot to one status, preserving the
// loaded order. StatusAll (or the empty string) passes everything
// through. It never mutates controller state.
func (rl *RequestList) FilterByStatus(status models.RequestStatus) []models.CommunityRequest {
	if status == StatusAll || status == "" {
		return rl.Requests()
	}
	return common.Filter(rl.Requests(), func(r models.CommunityRequest) bool {
		return r.Status == status
	})
}

// View returns a copy of one loaded request.
func (rl *RequestList) View(id uint) (models.CommunityRequest, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for _, r := range rl.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return models.CommunityRequest{}, ErrUnknownRequest
}

// Create validates locally first. Validation failures never reach the
// network; they come back as lifecycle.FieldErrors for the form.
func (rl *RequestList) Create(ctx context.Context, input lifecycle.CreateInput) (*models.CommunityRequest, error) {
	rl.mu.Lock()
	if rl.closed {
		rl.mu.Unlock()
		return nil, ErrClosed
	}
	rl.mu.Unlock()

	if fieldErrs := lifecycle.ValidateCreate(input); fieldErrs != nil {
		return nil, fieldErrs
	}

	created, err := rl.api.CreateRequest(ctx, input)
	if err != nil {
		requestListLogger.Warn("Create failed", zap.Error(err))
		return nil, err
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if !rl.closed {
		rl.requests = append(rl.requests, *created)
	}
	return created, nil
}

// Edit validates the patch against the loaded copy, then sends it.
// The local entry is replaced only with what the server confirmed.
func (rl *RequestList) Edit(ctx context.Context, id uint, patch lifecycle.Patch) (*models.CommunityRequest, error) {
	existing, err := rl.View(id)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.ValidateEdit(&existing, patch); err != nil {
		return nil, err
	}

	updated, err := rl.api.UpdateRequest(ctx, id, patch)
	if err != nil {
		requestListLogger.Warn("Edit failed", zap.Uint("request_id", id), zap.Error(err))
		return nil, err
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for i := range rl.requests {
		if rl.requests[i].ID == id {
			rl.requests[i] = *updated
			break
		}
	}
	return updated, nil
}

// Delete requires an explicit confirmation and removes the local entry
// only after the server accepted the deletion.
func (rl *RequestList) Delete(ctx context.Context, id uint, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	existing, err := rl.View(id)
	if err != nil {
		return err
	}
	if !existing.IsPending() {
		return &lifecycle.NotEditableError{ID: existing.ID, Status: existing.Status}
	}

	if err := rl.api.DeleteRequest(ctx, id); err != nil {
		requestListLogger.Warn("Delete failed", zap.Uint("request_id", id), zap.Error(err))
		return err
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.requests = common.Filter(rl.requests, func(r models.CommunityRequest) bool {
		return r.ID != id
	})
	return nil
}

// Close makes the controller inert. In-flight loads are discarded when
// they come back.
func (rl *RequestList) Close() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.closed = true
}
