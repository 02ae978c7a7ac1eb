package core

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/common"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

func sensorLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySensor),
	)
}

func (b *BreathSafe) listSensors() ([]models.Sensor, error) {
	var sensors []models.Sensor
	err := b.Db.Conn.Order("id asc").Find(&sensors).Error
	return sensors, err
}

func (b *BreathSafe) listAvailableSensors() ([]models.Sensor, error) {
	var sensors []models.Sensor
	err := b.Db.Conn.
		Where("status = ?", models.SensorStatusAvailable).
		Order("id asc").
		Find(&sensors).Error
	return sensors, err
}

func (b *BreathSafe) createSensor(sensor *models.Sensor) error {
	logger := sensorLogger()

	if sensor.Status == "" {
		sensor.Status = models.SensorStatusAvailable
	}
	if err := b.Db.Conn.Create(sensor).Error; err != nil {
		return err
	}

	logger.Info("Sensor registered", zap.Reflect("sensor", sensor))
	return nil
}

// ingestReading stores a reading and hands it to the subscription service for
// threshold alerting, mirroring the store-then-check flow of the inventory's
// data path.
func (b *BreathSafe) ingestReading(sensorID uint, input *models.SensorReading) error {
	logger := sensorLogger()

	var sensor models.Sensor
	if err := b.Db.Conn.First(&sensor, sensorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	reading := models.SensorReading{
		SensorID:  sensorID,
		Timestamp: input.Timestamp,
		AQI:       input.AQI,
		PM25:      input.PM25,
		PM10:      input.PM10,
	}

	logger.Info("Received reading for sensor", zap.Reflect("reading", reading))

	if err := b.Db.Conn.Create(&reading).Error; err != nil {
		return err
	}

	if b.Subscriptions == nil {
		return fmt.Errorf("subscription service not available")
	}

	b.Subscriptions.CheckAndStoreAlerts(sensorID, &reading)
	return nil
}

type ISensorsImpl struct {
	core *BreathSafe
}

func (is *ISensorsImpl) List() ([]models.Sensor, error) {
	return is.core.listSensors()
}

func (is *ISensorsImpl) ListAvailable() ([]models.Sensor, error) {
	return is.core.listAvailableSensors()
}

func (is *ISensorsImpl) Create(sensor *models.Sensor) error {
	return is.core.createSensor(sensor)
}

func (is *ISensorsImpl) IngestReading(sensorID uint, reading *models.SensorReading) error {
	return is.core.ingestReading(sensorID, reading)
}

func (b *BreathSafe) GetISensors() ISensors {
	return &ISensorsImpl{core: b}
}
