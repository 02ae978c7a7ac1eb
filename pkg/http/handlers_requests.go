package http

import (
	"net/http"
	"strconv"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/lifecycle"
)

func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id: " + raw})
		return 0, false
	}
	return uint(id), true
}

func (rs *RestfulServer) ListMyRequests(c *gin.Context) {
	requests, err := rs.Core.Requests.ListForRequester(currentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (rs *RestfulServer) ListAllRequests(c *gin.Context) {
	requests, err := rs.Core.Requests.ListAll()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

var createRequestSchema = z.Struct(z.Shape{
	"RequestedLocation": z.String().Required(),
	"Latitude":          z.Float64().Required(),
	"Longitude":         z.Float64().Required(),
	"Justification":     z.String().Required(),
})

type CreateRequestRequest struct {
	RequestedLocation string  `json:"requestedLocation"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	Justification     string  `json:"justification"`
}

func (rs *RestfulServer) CreateRequest(c *gin.Context) {
	var req CreateRequestRequest
	if err := createRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	requester, err := rs.Core.Users.Get(currentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	created, err := rs.Core.Requests.Create(requester, lifecycle.CreateInput{
		RequestedLocation: req.RequestedLocation,
		Latitude:          &req.Latitude,
		Longitude:         &req.Longitude,
		Justification:     req.Justification,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (rs *RestfulServer) UpdateRequest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	// partial body, pointer fields keep absent and present-but-zero apart
	var patch lifecycle.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := rs.Core.Requests.Update(currentUserID(c), id, patch)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (rs *RestfulServer) DeleteRequest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := rs.Core.Requests.Delete(currentUserID(c), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type ApproveRequestRequest struct {
	SensorID int    `json:"sensorId"`
	Comments string `json:"comments"`
}

var approveRequestSchema = z.Struct(z.Shape{
	"SensorID": z.Int().Required(),
	"Comments": z.String(),
})

func (rs *RestfulServer) ApproveRequest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ApproveRequestRequest
	if err := approveRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	approvedBy := c.GetString(ctxKeyUserName)
	approved, err := rs.Core.Requests.Approve(id, uint(req.SensorID), approvedBy, req.Comments)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, approved)
}

type RejectRequestRequest struct {
	// pointer so a missing comments field is rejected while an explicit
	// empty string is allowed
	Comments *string `json:"comments"`
}

func (rs *RestfulServer) RejectRequest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req RejectRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Comments == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comments field is required"})
		return
	}

	rejected, err := rs.Core.Requests.Reject(id, *req.Comments)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rejected)
}
