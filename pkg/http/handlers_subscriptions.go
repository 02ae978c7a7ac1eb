package http

import (
	"net/http"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
)

func (rs *RestfulServer) ListMySubscriptions(c *gin.Context) {
	subs, err := rs.Core.Subscriptions.ListForUser(currentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

type SubscribeRequest struct {
	SensorID       int `json:"sensorId"`
	AlertThreshold int `json:"alertThreshold"`
}

var subscribeRequestSchema = z.Struct(z.Shape{
	"SensorID":       z.Int().Required(),
	"AlertThreshold": z.Int(),
})

func (rs *RestfulServer) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := subscribeRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	sub, err := rs.Core.Subscriptions.Subscribe(currentUserID(c), uint(req.SensorID), req.AlertThreshold)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

type SetActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

func (rs *RestfulServer) SetSubscriptionActive(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isActive field is required"})
		return
	}

	sub, err := rs.Core.Subscriptions.SetActive(currentUserID(c), id, *req.IsActive)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

type SetEmailRequest struct {
	EmailNotifications *bool `json:"emailNotifications"`
}

func (rs *RestfulServer) SetSubscriptionEmail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req SetEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EmailNotifications == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "emailNotifications field is required"})
		return
	}

	sub, err := rs.Core.Subscriptions.SetEmailNotifications(currentUserID(c), id, *req.EmailNotifications)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

type SetThresholdRequest struct {
	AlertThreshold *int `json:"alertThreshold"`
}

func (rs *RestfulServer) SetSubscriptionThreshold(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req SetThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AlertThreshold == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alertThreshold field is required"})
		return
	}

	sub, err := rs.Core.Subscriptions.SetAlertThreshold(currentUserID(c), id, *req.AlertThreshold)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (rs *RestfulServer) Unsubscribe(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := rs.Core.Subscriptions.Unsubscribe(currentUserID(c), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
