package models

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

type SensorStatus string

const (
	SensorStatusAvailable   SensorStatus = "AVAILABLE"
	SensorStatusInstalled   SensorStatus = "INSTALLED"
	SensorStatusMaintenance SensorStatus = "MAINTENANCE"
)

// CommunityRequest is a community sensor-placement request. Approval fields
// (SensorID, SensorName, ApprovedAt, ApprovedByName) are set iff status is
// APPROVED; RejectedAt is set iff status is REJECTED. AdminComments is
// required on rejection and optional on approval.
type CommunityRequest struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	RequesterID       uint          `gorm:"index" json:"requesterId"`
	RequesterName     string        `json:"requesterName"`
	RequestedLocation string        `json:"requestedLocation"`
	Latitude          float64       `json:"latitude"`
	Longitude         float64       `json:"longitude"`
	Justification     string        `json:"justification"`
	Status            RequestStatus `gorm:"type:varchar(10);index;check:status IN ('PENDING','APPROVED','REJECTED')" json:"status"`

	SensorID       *uint      `json:"sensorId,omitempty"`
	SensorName     string     `json:"sensorName,omitempty"`
	AdminComments  string     `json:"adminComments,omitempty"`
	ApprovedAt     *time.Time `json:"approvedAt,omitempty"`
	ApprovedByName string     `json:"approvedByName,omitempty"`
	RejectedAt     *time.Time `json:"rejectedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *CommunityRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// IsTerminal reports whether the request has gone through its one allowed
// transition. Terminal requests are immutable from the requester's side.
func (r *CommunityRequest) IsTerminal() bool {
	return r.Status == RequestStatusApproved || r.Status == RequestStatusRejected
}

type Sensor struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Serial    string       `gorm:"uniqueIndex" json:"serial"`
	Name      string       `json:"name"`
	Location  string       `json:"location"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Status    SensorStatus `gorm:"type:varchar(15);check:status IN ('AVAILABLE','INSTALLED','MAINTENANCE')" json:"status"`

	Readings []SensorReading `gorm:"foreignKey:SensorID" json:"-"`
}

func (s *Sensor) IsAvailable() bool {
	return s.Status == SensorStatusAvailable
}

// Subscription ties a user to a sensor with independently mutable alert
// settings. AlertThreshold is an AQI trigger level kept in [0, 500].
type Subscription struct {
	ID                 uint   `gorm:"primaryKey" json:"subscriptionId"`
	UserID             uint   `gorm:"index" json:"userId"`
	SensorID           uint   `gorm:"index" json:"sensorId"`
	SensorName         string `json:"sensorName"`
	SensorLocation     string `json:"sensorLocation"`
	IsActive           bool   `json:"isActive"`
	EmailNotifications bool   `json:"emailNotifications"`
	AlertThreshold     int    `json:"alertThreshold"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	AlertThresholdMin = 0
	AlertThresholdMax = 500
)

// ClampAlertThreshold bounds an AQI trigger level to [0, 500]. Both the
// client controls and the backend apply it; the backend's value is the
// source of truth.
func ClampAlertThreshold(value int) int {
	if value < AlertThresholdMin {
		return AlertThresholdMin
	}
	if value > AlertThresholdMax {
		return AlertThresholdMax
	}
	return value
}

type SensorReading struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SensorID  uint      `gorm:"index" json:"sensorId"`
	Timestamp time.Time `json:"timestamp"`
	AQI       float64   `json:"aqi"`
	PM25      float64   `json:"pm25"`
	PM10      float64   `json:"pm10"`
}

// Alert is recorded when a reading crosses an active subscription's
// threshold. Delivery (email or otherwise) is outside this model.
type Alert struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index" json:"userId"`
	SubscriptionID uint      `gorm:"index" json:"subscriptionId"`
	SensorID       uint      `json:"sensorId"`
	Timestamp      time.Time `json:"timestamp"`
	AQI            float64   `json:"aqi"`
	Threshold      int       `json:"threshold"`
	Message        string    `json:"message"`
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"isAdmin"`

	CreatedAt time.Time `json:"createdAt"`
}
