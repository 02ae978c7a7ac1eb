package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/auth"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/common"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/core"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/core/mocks"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/db"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/lifecycle"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
	_ "github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/testing"
)

func setupTestServer() *RestfulServer {
	coreObj := &core.BreathSafe{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}
	coreObj.WithServices(core.ServiceOpts{
		Requests:      coreObj.GetIRequests(),
		Sensors:       coreObj.GetISensors(),
		Subscriptions: coreObj.GetISubscriptions(),
		Users:         coreObj.GetIUsers(),
		Analytics:     coreObj.GetIAnalytics(),
	})

	rs := &RestfulServer{
		Server: gin.Default(),
		Core:   coreObj,
		JWT:    auth.NewJWTManager("test-secret", time.Hour),
		// default we use no limiter, if need, later assign rs.RateLimiterStore = core.NewRateLimiterStore(...)
	}

	rs.Setup()

	return rs
}

func newAuthedUser(t *testing.T, rs *RestfulServer, name string, isAdmin bool) (*models.User, string) {
	t.Helper()
	user, err := rs.Core.Users.Register(uuid.NewString()+"@example.com", name, "secret-pass", isAdmin)
	require.NoError(t, err)
	token, err := rs.JWT.GenerateToken(user.ID, user.Email, user.IsAdmin)
	require.NoError(t, err)
	return user, token
}

func doJSON(rs *RestfulServer, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func seedAvailableSensor(t *testing.T, rs *RestfulServer) *models.Sensor {
	t.Helper()
	sensor := &models.Sensor{
		Serial: uuid.NewString(),
		Name:   "Sensor " + uuid.NewString()[:8],
		Status: models.SensorStatusAvailable,
	}
	require.NoError(t, rs.Core.Sensors.Create(sensor))
	return sensor
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRegisterAndLogin(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	email := uuid.NewString() + "@example.com"

	w := doJSON(rs, "POST", "/auth/register", "", gin.H{
		"email":    email,
		"name":     "Kamala",
		"password": "secret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(rs, "POST", "/auth/login", "", gin.H{
		"email":    email,
		"password": "secret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	w = doJSON(rs, "POST", "/auth/login", "", gin.H{
		"email":    email,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthGuards(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	// no token
	w := doJSON(rs, "GET", "/requests/mine", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// non-admin on an admin route
	_, token := newAuthedUser(t, rs, "Kamala", false)
	w = doJSON(rs, "GET", "/requests", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestLifecycleOverHTTP(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, userToken := newAuthedUser(t, rs, "Nimal Perera", true)
	sensor := seedAvailableSensor(t, rs)

	w := doJSON(rs, "POST", "/requests", userToken, gin.H{
		"requestedLocation": "Kegalle Town",
		"latitude":          7.2513,
		"longitude":         80.3464,
		"justification":     "High traffic area with three schools nearby affecting many students daily",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.CommunityRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.RequestStatusPending, created.Status)

	// appears in the owner's list
	w = doJSON(rs, "GET", "/requests/mine", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []models.CommunityRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	require.Len(t, mine, 1)

	// editable while pending
	w = doJSON(rs, "PUT", fmt.Sprintf("/requests/%d", created.ID), userToken, gin.H{
		"requestedLocation": "Kegalle Bus Stand",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// admin approves with an available sensor
	w = doJSON(rs, "POST", fmt.Sprintf("/requests/%d/approve", created.ID), userToken, gin.H{
		"sensorId": sensor.ID,
		"comments": "Coverage gap confirmed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var approved models.CommunityRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &approved))
	assert.Equal(t, models.RequestStatusApproved, approved.Status)
	require.NotNil(t, approved.SensorID)
	assert.Equal(t, sensor.ID, *approved.SensorID)

	// terminal state: edit, delete and re-approve are conflicts now
	w = doJSON(rs, "PUT", fmt.Sprintf("/requests/%d", created.ID), userToken, gin.H{
		"requestedLocation": "Elsewhere",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(rs, "DELETE", fmt.Sprintf("/requests/%d", created.ID), userToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(rs, "POST", fmt.Sprintf("/requests/%d/approve", created.ID), userToken, gin.H{
		"sensorId": sensor.ID,
		"comments": "again",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateRequest_Validation(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, token := newAuthedUser(t, rs, "Nimal Perera", false)

	// empty payload rejected by the schema
	w := doJSON(rs, "POST", "/requests", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// schema passes but the justification is too short for the lifecycle rules
	w = doJSON(rs, "POST", "/requests", token, gin.H{
		"requestedLocation": "Kegalle Town",
		"latitude":          7.2513,
		"longitude":         80.3464,
		"justification":     "too short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "justification")
}

func TestRejectRequiresCommentsField(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	user, adminToken := newAuthedUser(t, rs, "Admin Silva", true)

	created, err := rs.Core.Requests.Create(user, validCreateInputForTest())
	require.NoError(t, err)

	// missing comments field is rejected
	w := doJSON(rs, "POST", fmt.Sprintf("/requests/%d/reject", created.ID), adminToken, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// explicit empty comments are allowed by policy
	w = doJSON(rs, "POST", fmt.Sprintf("/requests/%d/reject", created.ID), adminToken, gin.H{
		"comments": "",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var rejected models.CommunityRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rejected))
	assert.Equal(t, models.RequestStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectedAt)
}

func TestSubscriptionEndpoints(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, token := newAuthedUser(t, rs, "Kamala", false)
	sensor := seedAvailableSensor(t, rs)

	w := doJSON(rs, "POST", "/subscriptions", token, gin.H{
		"sensorId":       sensor.ID,
		"alertThreshold": 150,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var sub models.Subscription
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
	assert.Equal(t, 150, sub.AlertThreshold)

	// missing field on a patch is a 400
	w = doJSON(rs, "PATCH", fmt.Sprintf("/subscriptions/%d/threshold", sub.ID), token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// clamped to the AQI ceiling
	w = doJSON(rs, "PATCH", fmt.Sprintf("/subscriptions/%d/threshold", sub.ID), token, gin.H{
		"alertThreshold": 9000,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
	assert.Equal(t, 500, sub.AlertThreshold)

	w = doJSON(rs, "PATCH", fmt.Sprintf("/subscriptions/%d/active", sub.ID), token, gin.H{
		"isActive": false,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
	assert.False(t, sub.IsActive)

	w = doJSON(rs, "DELETE", fmt.Sprintf("/subscriptions/%d", sub.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(rs, "GET", "/subscriptions/mine", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var subs []models.Subscription
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
	assert.Len(t, subs, 0)
}

func TestListMyAlerts_ServiceError(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	user, token := newAuthedUser(t, rs, "Kamala", false)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockISubscriptions := mocks.NewMockISubscriptions(ctrl)
	rs.Core.Subscriptions = mockISubscriptions
	mockISubscriptions.EXPECT().
		ListAlerts(gomock.Eq(user.ID)).
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	w := doJSON(rs, "GET", "/alerts/mine", token, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func setupTestServerWithLimiter(limiter *core.RateLimiterStore) *RestfulServer {
	rs := setupTestServer()
	rs.RateLimiterStore = limiter
	return rs
}

func TestPostReadingWithLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(core.NewRateLimiterStore(2, 2))
	_, token := newAuthedUser(t, rs, "Station", false)
	sensor := seedAvailableSensor(t, rs)

	body := gin.H{
		"timestamp": time.Now(),
		"aqi":       120.0,
	}

	// 3 requests in quick succession, only 2 allowed
	for i := range 3 {
		w := doJSON(rs, "POST", fmt.Sprintf("/sensors/%d/readings", sensor.ID), token, body)
		if i < 2 {
			require.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}
}

func validCreateInputForTest() lifecycle.CreateInput {
	lat := 7.2513
	lng := 80.3464
	return lifecycle.CreateInput{
		RequestedLocation: "Kegalle Town",
		Latitude:          &lat,
		Longitude:         &lng,
		Justification:     "High traffic area with three schools nearby affecting many students daily",
	}
}
