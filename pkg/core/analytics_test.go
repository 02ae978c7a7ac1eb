package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/common"
	. "github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/core"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
	_ "github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/testing"
)

func TestAnalyticsOverview(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coreObj, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	requester := seedUser(t, coreObj, "Nimal Perera", false)
	created, err := coreObj.Requests.Create(requester, validCreateInput())
	require.NoError(t, err)
	_, err = coreObj.Requests.Reject(created.ID, "covered")
	require.NoError(t, err)

	sensor := seedSensor(t, coreObj, models.SensorStatusInstalled)
	for _, aqi := range []float64{50, 100, 150} {
		reading := &models.SensorReading{Timestamp: time.Now(), AQI: aqi}
		require.NoError(t, coreObj.Sensors.IngestReading(sensor.ID, reading))
	}

	overview, err := coreObj.Analytics.Overview()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, overview.RequestCounts[models.RequestStatusRejected], int64(1))

	var found *SensorStats
	for i := range overview.Sensors {
		if overview.Sensors[i].SensorID == sensor.ID {
			found = &overview.Sensors[i]
		}
	}
	require.NotNil(t, found, "expected stats entry for the seeded sensor")
	assert.Equal(t, 3, found.ReadingCount)
	assert.Equal(t, float64(100), found.MeanAQI)
	assert.Equal(t, float64(100), found.MedianAQI)
}
