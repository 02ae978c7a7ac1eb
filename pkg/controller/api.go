package controller

import (
	"context"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/client"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/lifecycle"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

// API is the slice of the BreathSafe client the controllers depend on.
type API interface {
	MyRequests(ctx context.Context) ([]models.CommunityRequest, error)
	AllRequests(ctx context.Context) ([]models.CommunityRequest, error)
	CreateRequest(ctx context.Context, input lifecycle.CreateInput) (*models.CommunityRequest, error)
	UpdateRequest(ctx context.Context, id uint, patch lifecycle.Patch) (*models.CommunityRequest, error)
	DeleteRequest(ctx context.Context, id uint) error
	ApproveRequest(ctx context.Context, id uint, sensorID uint, comments string) (*models.CommunityRequest, error)
	RejectRequest(ctx context.Context, id uint, comments string) (*models.CommunityRequest, error)
	AvailableSensors(ctx context.Context) ([]models.Sensor, error)

	MySubscriptions(ctx context.Context) ([]models.Subscription, error)
	Subscribe(ctx context.Context, sensorID uint, alertThreshold int) (*models.Subscription, error)
	SetSubscriptionActive(ctx context.Context, id uint, isActive bool) (*models.Subscription, error)
	SetEmailNotifications(ctx context.Context, id uint, enabled bool) (*models.Subscription, error)
	SetAlertThreshold(ctx context.Context, id uint, threshold int) (*models.Subscription, error)
	Unsubscribe(ctx context.Context, id uint) error
}

var _ API = (*client.Client)(nil)
