package http

import (
	"net/http"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

func (rs *RestfulServer) ListSensors(c *gin.Context) {
	sensors, err := rs.Core.Sensors.List()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sensors)
}

func (rs *RestfulServer) ListAvailableSensors(c *gin.Context) {
	sensors, err := rs.Core.Sensors.ListAvailable()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sensors)
}

type CreateSensorRequest struct {
	Serial   string `json:"serial"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

var createSensorSchema = z.Struct(z.Shape{
	"Serial":   z.String().Required(),
	"Name":     z.String().Required(),
	"Location": z.String(),
})

func (rs *RestfulServer) CreateSensor(c *gin.Context) {
	var req CreateSensorRequest
	if err := createSensorSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	sensor := models.Sensor{
		Serial:   req.Serial,
		Name:     req.Name,
		Location: req.Location,
		Status:   models.SensorStatusAvailable,
	}
	if err := rs.Core.Sensors.Create(&sensor); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sensor)
}

type ReadingRequest struct {
	Timestamp time.Time `json:"timestamp"`
	AQI       float64   `json:"aqi"`
	PM25      float64   `json:"pm25"`
	PM10      float64   `json:"pm10"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"Timestamp": z.Time().Required(),
	"AQI":       z.Float64().Required(),
	"PM25":      z.Float64(),
	"PM10":      z.Float64(),
})

func (rs *RestfulServer) PostReading(c *gin.Context) {
	if !rs.CheckUserLimiter(currentUserID(c)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ReadingRequest
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	err := rs.Core.Sensors.IngestReading(id, &models.SensorReading{
		Timestamp: req.Timestamp,
		AQI:       req.AQI,
		PM25:      req.PM25,
		PM10:      req.PM10,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) ListMyAlerts(c *gin.Context) {
	alerts, err := rs.Core.Subscriptions.ListAlerts(currentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) Analytics(c *gin.Context) {
	overview, err := rs.Core.Analytics.Overview()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().Required(),
	"Burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(id, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
