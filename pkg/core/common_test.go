package core_test

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	. "github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/core"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/core/mocks"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/db"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

func GetMockCoreWithMemorySqliteDialector(t *testing.T, useMockRequests, useMockSensors, useMockSubscriptions bool) (
	*gomock.Controller,
	*BreathSafe,
	*mocks.MockIRequests,
	*mocks.MockISensors,
	*mocks.MockISubscriptions,
) {
	ctrl := gomock.NewController(t)

	mockIRequests := mocks.NewMockIRequests(ctrl)
	mockISensors := mocks.NewMockISensors(ctrl)
	mockISubscriptions := mocks.NewMockISubscriptions(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	coreInstance := &BreathSafe{Db: *dbInstance}

	requestsService := coreInstance.GetIRequests()
	if useMockRequests {
		requestsService = mockIRequests
	}

	sensorsService := coreInstance.GetISensors()
	if useMockSensors {
		sensorsService = mockISensors
	}

	subscriptionsService := coreInstance.GetISubscriptions()
	if useMockSubscriptions {
		subscriptionsService = mockISubscriptions
	}

	coreInstance.WithServices(ServiceOpts{
		Requests:      requestsService,
		Sensors:       sensorsService,
		Subscriptions: subscriptionsService,
		Users:         coreInstance.GetIUsers(),
		Analytics:     coreInstance.GetIAnalytics(),
	})

	return ctrl, coreInstance, mockIRequests, mockISensors, mockISubscriptions
}

func seedUser(t *testing.T, b *BreathSafe, name string, isAdmin bool) *models.User {
	t.Helper()
	user, err := b.Users.Register(uuid.NewString()+"@example.com", name, "secret-pass", isAdmin)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedSensor(t *testing.T, b *BreathSafe, status models.SensorStatus) *models.Sensor {
	t.Helper()
	sensor := &models.Sensor{
		Serial:   uuid.NewString(),
		Name:     "Sensor " + uuid.NewString()[:8],
		Location: "Test Site",
		Status:   status,
	}
	if err := b.Sensors.Create(sensor); err != nil {
		t.Fatalf("seed sensor: %v", err)
	}
	return sensor
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
