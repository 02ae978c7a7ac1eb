package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/common"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/lifecycle"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

var clientLogger = common.GetLoggerWith(common.LoggerNameAPIClient, zap.String(common.LoggerFieldCategory, common.LoggerCategoryRequest))

// Client talks to a BreathSafe server over its REST surface. All
// methods return *APIError for non-2xx responses.
type Client struct {
	rest  *resty.Client
	token string
}

func NewClient(baseURL string) *Client {
	return &Client{
		rest: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second).
			SetHeader("Content-Type", "application/json"),
	}
}

// SetToken stores the bearer token used on every subsequent call.
func (c *Client) SetToken(token string) {
	c.token = token
	c.rest.SetAuthToken(token)
}

// Token returns the bearer token currently in use, empty before login.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body any, result any) error {
	req := c.rest.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		clientLogger.Warn("Request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() {
		var errBody apiErrorBody
		// a non-JSON or empty error body falls through to the generic message
		_ = json.Unmarshal(resp.Body(), &errBody)
		clientLogger.Warn("Request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()))
		return newAPIError(resp.StatusCode(), &errBody)
	}

	if result != nil && len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), result); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp loginResponse
	err := c.do(ctx, resty.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return err
	}
	c.SetToken(resp.Token)
	return nil
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	var user models.User
	err := c.do(ctx, resty.MethodPost, "/auth/register", registerRequest{Email: email, Name: name, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) MyRequests(ctx context.Context) ([]models.CommunityRequest, error) {
	var requests []models.CommunityRequest
	err := c.do(ctx, resty.MethodGet, "/requests/mine", nil, &requests)
	return requests, err
}

func (c *Client) AllRequests(ctx context.Context) ([]models.CommunityRequest, error) {
	var requests []models.CommunityRequest
	err := c.do(ctx, resty.MethodGet, "/requests", nil, &requests)
	return requests, err
}

func (c *Client) CreateRequest(ctx context.Context, input lifecycle.CreateInput) (*models.CommunityRequest, error) {
	var created models.CommunityRequest
	err := c.do(ctx, resty.MethodPost, "/requests", input, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateRequest(ctx context.Context, id uint, patch lifecycle.Patch) (*models.CommunityRequest, error) {
	var updated models.CommunityRequest
	err := c.do(ctx, resty.MethodPut, fmt.Sprintf("/requests/%d", id), patch, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteRequest(ctx context.Context, id uint) error {
	return c.do(ctx, resty.MethodDelete, fmt.Sprintf("/requests/%d", id), nil, nil)
}

type approveRequestBody struct {
	SensorID uint   `json:"sensorId"`
	Comments string `json:"comments"`
}

func (c *Client) ApproveRequest(ctx context.Context, id uint, sensorID uint, comments string) (*models.CommunityRequest, error) {
	var approved models.CommunityRequest
	err := c.do(ctx, resty.MethodPost, fmt.Sprintf("/requests/%d/approve", id),
		approveRequestBody{SensorID: sensorID, Comments: comments}, &approved)
	if err != nil {
		return nil, err
	}
	return &approved, nil
}

type rejectRequestBody struct {
	Comments string `json:"comments"`
}

func (c *Client) RejectRequest(ctx context.Context, id uint, comments string) (*models.CommunityRequest, error) {
	var rejected models.CommunityRequest
	err := c.do(ctx, resty.MethodPost, fmt.Sprintf("/requests/%d/reject", id),
		rejectRequestBody{Comments: comments}, &rejected)
	if err != nil {
		return nil, err
	}
	return &rejected, nil
}

func (c *Client) Sensors(ctx context.Context) ([]models.Sensor, error) {
	var sensors []models.Sensor
	err := c.do(ctx, resty.MethodGet, "/sensors", nil, &sensors)
	return sensors, err
}

func (c *Client) AvailableSensors(ctx context.Context) ([]models.Sensor, error) {
	var sensors []models.Sensor
	err := c.do(ctx, resty.MethodGet, "/sensors/available", nil, &sensors)
	return sensors, err
}

func (c *Client) MySubscriptions(ctx context.Context) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := c.do(ctx, resty.MethodGet, "/subscriptions/mine", nil, &subs)
	return subs, err
}

type subscribeBody struct {
	SensorID       uint `json:"sensorId"`
	AlertThreshold int  `json:"alertThreshold"`
}

func (c *Client) Subscribe(ctx context.Context, sensorID uint, alertThreshold int) (*models.Subscription, error) {
	var sub models.Subscription
	err := c.do(ctx, resty.MethodPost, "/subscriptions",
		subscribeBody{SensorID: sensorID, AlertThreshold: alertThreshold}, &sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) SetSubscriptionActive(ctx context.Context, id uint, isActive bool) (*models.Subscription, error) {
	var sub models.Subscription
	err := c.do(ctx, resty.MethodPatch, fmt.Sprintf("/subscriptions/%d/active", id),
		map[string]bool{"isActive": isActive}, &sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) SetEmailNotifications(ctx context.Context, id uint, enabled bool) (*models.Subscription, error) {
	var sub models.Subscription
	err := c.do(ctx, resty.MethodPatch, fmt.Sprintf("/subscriptions/%d/email", id),
		map[string]bool{"emailNotifications": enabled}, &sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) SetAlertThreshold(ctx context.Context, id uint, threshold int) (*models.Subscription, error) {
	var sub models.Subscription
	err := c.do(ctx, resty.MethodPatch, fmt.Sprintf("/subscriptions/%d/threshold", id),
		map[string]int{"alertThreshold": threshold}, &sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) Unsubscribe(ctx context.Context, id uint) error {
	return c.do(ctx, resty.MethodDelete, fmt.Sprintf("/subscriptions/%d", id), nil, nil)
}

func (c *Client) MyAlerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	err := c.do(ctx, resty.MethodGet, "/alerts/mine", nil, &alerts)
	return alerts, err
}
