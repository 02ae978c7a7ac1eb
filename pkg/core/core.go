// Package core is the backend domain core of BreathSafe: community
// sensor-placement requests, the sensor inventory, subscriptions with AQI
// threshold alerting, users, and admin analytics. Transports depend on the
// narrow I* interfaces so they can be mocked independently.
package core

import (
	"errors"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/db"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/lifecycle"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("not allowed")
)

type IRequests interface {
	ListForRequester(requesterID uint) ([]models.CommunityRequest, error)
	ListAll() ([]models.CommunityRequest, error)
	Get(id uint) (*models.CommunityRequest, error)
	Create(requester *models.User, input lifecycle.CreateInput) (*models.CommunityRequest, error)
	Update(requesterID uint, id uint, patch lifecycle.Patch) (*models.CommunityRequest, error)
	Delete(requesterID uint, id uint) error
	Approve(id uint, sensorID uint, approvedByName, comments string) (*models.CommunityRequest, error)
	Reject(id uint, comments string) (*models.CommunityRequest, error)
}

type ISensors interface {
	List() ([]models.Sensor, error)
	ListAvailable() ([]models.Sensor, error)
	Create(sensor *models.Sensor) error
	IngestReading(sensorID uint, reading *models.SensorReading) error
}

type ISubscriptions interface {
	ListForUser(userID uint) ([]models.Subscription, error)
	Subscribe(userID, sensorID uint, threshold int) (*models.Subscription, error)
	SetActive(userID, subscriptionID uint, active bool) (*models.Subscription, error)
	SetEmailNotifications(userID, subscriptionID uint, enabled bool) (*models.Subscription, error)
	SetAlertThreshold(userID, subscriptionID uint, value int) (*models.Subscription, error)
	Unsubscribe(userID, subscriptionID uint) error
	CheckAndStoreAlerts(sensorID uint, reading *models.SensorReading) error
	ListAlerts(userID uint) ([]models.Alert, error)
}

type IUsers interface {
	Register(email, name, password string, isAdmin bool) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	Get(id uint) (*models.User, error)
}

type IAnalytics interface {
	Overview() (*Overview, error)
}

type BreathSafe struct {
	Db            db.DB
	Requests      IRequests
	Sensors       ISensors
	Subscriptions ISubscriptions
	Users         IUsers
	Analytics     IAnalytics
}

type ServiceOpts struct {
	Requests      IRequests
	Sensors       ISensors
	Subscriptions ISubscriptions
	Users         IUsers
	Analytics     IAnalytics
}

func (b *BreathSafe) WithServices(opts ServiceOpts) *BreathSafe {
	if opts.Requests != nil {
		b.Requests = opts.Requests
	}
	if opts.Sensors != nil {
		b.Sensors = opts.Sensors
	}
	if opts.Subscriptions != nil {
		b.Subscriptions = opts.Subscriptions
	}
	if opts.Users != nil {
		b.Users = opts.Users
	}
	if opts.Analytics != nil {
		b.Analytics = opts.Analytics
	}
	return b
}
