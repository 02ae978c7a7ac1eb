package controller

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/common"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

var adminReviewLogger = common.GetLoggerWith(common.LoggerNameController, zap.String(common.LoggerFieldCategory, common.LoggerCategoryRequest))

// AdminReview drives the moderation queue. It keeps the pending
// requests and the sensors an approval may draw from; both sets only
// shrink on confirmed server responses.
type AdminReview struct {
	api API

	mu      sync.Mutex
	pending []models.CommunityRequest
	sensors []models.Sensor
	loadGen uint64
	closed  bool
}

func NewAdminReview(api API) *AdminReview {
	return &AdminReview{api: api}
}

// LoadPending fetches the full request list and narrows it to the
// pending ones client side, together with the available sensors.
// Calling it again is a plain refetch. Overlapping loads resolve in
// favor of the most recently started one.
func (ar *AdminReview) LoadPending(ctx context.Context) error {
	ar.mu.Lock()
	if ar.closed {
		ar.mu.Unlock()
		return ErrClosed
	}
	ar.loadGen++
	gen := ar.loadGen
	ar.mu.Unlock()

	requests, err := ar.api.AllRequests(ctx)
	if err != nil {
		adminReviewLogger.Warn("Loading requests failed", zap.Error(err))
		return err
	}

	sensors, err := ar.api.AvailableSensors(ctx)
	if err != nil {
		adminReviewLogger.Warn("Loading sensors failed", zap.Error(err))
		return err
	}

	ar.mu.Lock()
	defer ar.mu.Unlock()
	if gen != ar.loadGen || ar.closed {
		return nil
	}
	ar.pending = common.Filter(requests, func(r models.CommunityRequest) bool {
		return r.Status == models.RequestStatusPending
	})
	ar.sensors = sensors
	return nil
}

// Pending returns a snapshot of the queue.
func (ar *AdminReview) Pending() []models.CommunityRequest {
	ar.mu.Lock()
	defer ar.mu.Unlock()
	out := make([]models.CommunityRequest, len(ar.pending))
	copy(out, ar.pending)
	return out
}

// AvailableSensors returns a snapshot of the sensors an approval may
// assign.
func (ar *AdminReview) AvailableSensors() []models.Sensor {
	ar.mu.Lock()
	defer ar.mu.Unlock()
	out := make([]models.Sensor, len(ar.sensors))
	copy(out, ar.sensors)
	return out
}

// Search narrows the queue snapshot by a case-insensitive match over
// location, requester name and justification. An empty query returns
// the whole queue. Order is preserved and state is untouched.
func (ar *AdminReview) Search(query string) []models.CommunityRequest {
	snapshot := ar.Pending()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return snapshot
	}
	return common.Filter(snapshot, func(r models.CommunityRequest) bool {
		return strings.Contains(strings.ToLower(r.RequestedLocation), query) ||
			strings.Contains(strings.ToLower(r.RequesterName), query) ||
			strings.Contains(strings.ToLower(r.Justification), query)
	})
}

func (ar *AdminReview) sensorSelectable(sensorID uint) bool {
	ar.mu.Lock()
	defer ar.mu.Unlock()
	for _, s := range ar.sensors {
		if s.ID == sensorID {
			return true
		}
	}
	return false
}

func (ar *AdminReview) removeFromQueue(id uint, sensorID uint) {
	ar.mu.Lock()
	defer ar.mu.Unlock()
	ar.pending = common.Filter(ar.pending, func(r models.CommunityRequest) bool {
		return r.ID != id
	})
	if sensorID != 0 {
		ar.sensors = common.Filter(ar.sensors, func(s models.Sensor) bool {
			return s.ID != sensorID
		})
	}
}

// Approve assigns a sensor from the loaded available set. The request
// leaves the queue, and the sensor leaves the selectable set, only
// when the server confirmed the approval.
func (ar *AdminReview) Approve(ctx context.Context, id uint, sensorID uint, comments string) (*models.CommunityRequest, error) {
	ar.mu.Lock()
	if ar.closed {
		ar.mu.Unlock()
		return nil, ErrClosed
	}
	ar.mu.Unlock()

	if !ar.sensorSelectable(sensorID) {
		return nil, ErrSensorNotSelectable
	}

	approved, err := ar.api.ApproveRequest(ctx, id, sensorID, comments)
	if err != nil {
		adminReviewLogger.Warn("Approve failed", zap.Uint("request_id", id), zap.Error(err))
		return nil, err
	}

	ar.removeFromQueue(id, sensorID)
	adminReviewLogger.Info("Request approved", zap.Uint("request_id", id), zap.Uint("sensor_id", sensorID))
	return approved, nil
}

// Reject removes the request from the queue once the server confirmed
// the rejection.
func (ar *AdminReview) Reject(ctx context.Context, id uint, comments string) (*models.CommunityRequest, error) {
	ar.mu.Lock()
	if ar.closed {
		ar.mu.Unlock()
		return nil, ErrClosed
	}
	ar.mu.Unlock()

	rejected, err := ar.api.RejectRequest(ctx, id, comments)
	if err != nil {
		adminReviewLogger.Warn("Reject failed", zap.Uint("request_id", id), zap.Error(err))
		return nil, err
	}

	ar.removeFromQueue(id, 0)
	adminReviewLogger.Info("Request rejected", zap.Uint("request_id", id))
	return rejected, nil
}

func (ar *AdminReview) Close() {
	ar.mu.Lock()
	defer ar.mu.Unlock()
	ar.closed = true
}
