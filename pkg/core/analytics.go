package core

import (
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/common"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

type SensorStats struct {
	SensorID     uint    `json:"sensorId"`
	SensorName   string  `json:"sensorName"`
	ReadingCount int     `json:"readingCount"`
	MeanAQI      float64 `json:"meanAqi"`
	MedianAQI    float64 `json:"medianAqi"`
	P95AQI       float64 `json:"p95Aqi"`
}

// Overview is the admin analytics snapshot: request counts per status plus
// per-sensor AQI summaries.
type Overview struct {
	RequestCounts map[models.RequestStatus]int64 `json:"requestCounts"`
	Sensors       []SensorStats                  `json:"sensors"`
}

func (b *BreathSafe) analyticsOverview() (*Overview, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAnalytics),
	)

	overview := &Overview{
		RequestCounts: map[models.RequestStatus]int64{},
	}

	for _, status := range []models.RequestStatus{
		models.RequestStatusPending,
		models.RequestStatusApproved,
		models.RequestStatusRejected,
	} {
		var count int64
		if err := b.Db.Conn.
			Model(&models.CommunityRequest{}).
			Where("status = ?", status).
			Count(&count).Error; err != nil {
			return nil, err
		}
		overview.RequestCounts[status] = count
	}

	var sensors []models.Sensor
	if err := b.Db.Conn.Order("id asc").Find(&sensors).Error; err != nil {
		return nil, err
	}

	for _, sensor := range sensors {
		var aqis []float64
		if err := b.Db.Conn.
			Model(&models.SensorReading{}).
			Where("sensor_id = ?", sensor.ID).
			Pluck("aqi", &aqis).Error; err != nil {
			return nil, err
		}

		sensorStats := SensorStats{
			SensorID:     sensor.ID,
			SensorName:   sensor.Name,
			ReadingCount: len(aqis),
		}

		if len(aqis) > 0 {
			data := stats.Float64Data(aqis)
			// these only fail on empty input, guarded above
			sensorStats.MeanAQI, _ = stats.Mean(data)
			sensorStats.MedianAQI, _ = stats.Median(data)
			sensorStats.P95AQI, _ = stats.Percentile(data, 95)
		}

		overview.Sensors = append(overview.Sensors, sensorStats)
	}

	logger.Info("Analytics overview computed", zap.Int("sensors", len(overview.Sensors)))
	return overview, nil
}

type IAnalyticsImpl struct {
	core *BreathSafe
}

func (ia *IAnalyticsImpl) Overview() (*Overview, error) {
	return ia.core.analyticsOverview()
}

func (b *BreathSafe) GetIAnalytics() IAnalytics {
	return &IAnalyticsImpl{core: b}
}
