package core

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/common"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

func subscriptionLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySubscription),
	)
}

func alertLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)
}

func (b *BreathSafe) listSubscriptionsForUser(userID uint) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := b.Db.Conn.
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&subs).Error
	return subs, err
}

func (b *BreathSafe) getOwnedSubscription(userID, subscriptionID uint) (*models.Subscription, error) {
	var sub models.Subscription
	if err := b.Db.Conn.First(&sub, subscriptionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if sub.UserID != userID {
		return nil, ErrForbidden
	}
	return &sub, nil
}

func (b *BreathSafe) subscribe(userID, sensorID uint, threshold int) (*models.Subscription, error) {
	logger := subscriptionLogger()

	var sensor models.Sensor
	if err := b.Db.Conn.First(&sensor, sensorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sub := models.Subscription{
		UserID:             userID,
		SensorID:           sensor.ID,
		SensorName:         sensor.Name,
		SensorLocation:     sensor.Location,
		IsActive:           true,
		EmailNotifications: true,
		AlertThreshold:     models.ClampAlertThreshold(threshold),
	}
	if err := b.Db.Conn.Create(&sub).Error; err != nil {
		return nil, err
	}

	logger.Info("Subscription created", zap.Reflect("subscription", sub))
	return &sub, nil
}

func (b *BreathSafe) setSubscriptionActive(userID, subscriptionID uint, active bool) (*models.Subscription, error) {
	sub, err := b.getOwnedSubscription(userID, subscriptionID)
	if err != nil {
		return nil, err
	}

	sub.IsActive = active
	if err := b.Db.Conn.Save(sub).Error; err != nil {
		return nil, err
	}

	subscriptionLogger().Info("Subscription active flag updated",
		zap.Uint("id", sub.ID), zap.Bool("is_active", active))
	return sub, nil
}

func (b *BreathSafe) setSubscriptionEmail(userID, subscriptionID uint, enabled bool) (*models.Subscription, error) {
	sub, err := b.getOwnedSubscription(userID, subscriptionID)
	if err != nil {
		return nil, err
	}

	sub.EmailNotifications = enabled
	if err := b.Db.Conn.Save(sub).Error; err != nil {
		return nil, err
	}

	subscriptionLogger().Info("Subscription email flag updated",
		zap.Uint("id", sub.ID), zap.Bool("email_notifications", enabled))
	return sub, nil
}

func (b *BreathSafe) setSubscriptionThreshold(userID, subscriptionID uint, value int) (*models.Subscription, error) {
	sub, err := b.getOwnedSubscription(userID, subscriptionID)
	if err != nil {
		return nil, err
	}

	sub.AlertThreshold = models.ClampAlertThreshold(value)
	if err := b.Db.Conn.Save(sub).Error; err != nil {
		return nil, err
	}

	subscriptionLogger().Info("Subscription threshold updated",
		zap.Uint("id", sub.ID), zap.Int("alert_threshold", sub.AlertThreshold))
	return sub, nil
}

func (b *BreathSafe) unsubscribe(userID, subscriptionID uint) error {
	sub, err := b.getOwnedSubscription(userID, subscriptionID)
	if err != nil {
		return err
	}

	if err := b.Db.Conn.Delete(&models.Subscription{}, sub.ID).Error; err != nil {
		return err
	}

	subscriptionLogger().Info("Subscription removed", zap.Uint("id", sub.ID))
	return nil
}

// checkAndStoreAlerts records an alert for every active subscription to the
// sensor whose threshold the reading exceeds. Inactive subscriptions never
// alert, whatever their other settings say.
func (b *BreathSafe) checkAndStoreAlerts(sensorID uint, reading *models.SensorReading) error {
	logger := alertLogger()

	var subs []models.Subscription
	if err := b.Db.Conn.
		Where("sensor_id = ? AND is_active = ?", sensorID, true).
		Find(&subs).Error; err != nil {
		return err
	}

	for _, sub := range subs {
		if reading.AQI <= float64(sub.AlertThreshold) {
			continue
		}

		alert := models.Alert{
			UserID:         sub.UserID,
			SubscriptionID: sub.ID,
			SensorID:       sensorID,
			Timestamp:      reading.Timestamp,
			AQI:            reading.AQI,
			Threshold:      sub.AlertThreshold,
			Message:        fmt.Sprintf("AQI %.0f exceeded threshold %d at %s", reading.AQI, sub.AlertThreshold, sub.SensorLocation),
		}

		logger.Info("Alert found", zap.Reflect("alert", alert))

		if err := b.Db.Conn.Create(&alert).Error; err != nil {
			return err
		}

		logger.Info("Alert saved", zap.Reflect("alert", alert))
	}

	return nil
}

func (b *BreathSafe) listAlerts(userID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	err := b.Db.Conn.
		Where("user_id = ?", userID).
		Order("timestamp desc").
		Find(&alerts).Error
	return alerts, err
}

type ISubscriptionsImpl struct {
	core *BreathSafe
}

func (is *ISubscriptionsImpl) ListForUser(userID uint) ([]models.Subscription, error) {
	return is.core.listSubscriptionsForUser(userID)
}

func (is *ISubscriptionsImpl) Subscribe(userID, sensorID uint, threshold int) (*models.Subscription, error) {
	return is.core.subscribe(userID, sensorID, threshold)
}

func (is *ISubscriptionsImpl) SetActive(userID, subscriptionID uint, active bool) (*models.Subscription, error) {
	return is.core.setSubscriptionActive(userID, subscriptionID, active)
}

func (is *ISubscriptionsImpl) SetEmailNotifications(userID, subscriptionID uint, enabled bool) (*models.Subscription, error) {
	return is.core.setSubscriptionEmail(userID, subscriptionID, enabled)
}

func (is *ISubscriptionsImpl) SetAlertThreshold(userID, subscriptionID uint, value int) (*models.Subscription, error) {
	return is.core.setSubscriptionThreshold(userID, subscriptionID, value)
}

func (is *ISubscriptionsImpl) Unsubscribe(userID, subscriptionID uint) error {
	return is.core.unsubscribe(userID, subscriptionID)
}

func (is *ISubscriptionsImpl) CheckAndStoreAlerts(sensorID uint, reading *models.SensorReading) error {
	return is.core.checkAndStoreAlerts(sensorID, reading)
}

func (is *ISubscriptionsImpl) ListAlerts(userID uint) ([]models.Alert, error) {
	return is.core.listAlerts(userID)
}

func (b *BreathSafe) GetISubscriptions() ISubscriptions {
	return &ISubscriptionsImpl{core: b}
}
