package core

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/common"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/lifecycle"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
)

func requestLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRequest),
	)
}

func (b *BreathSafe) listRequestsForRequester(requesterID uint) ([]models.CommunityRequest, error) {
	var requests []models.CommunityRequest
	err := b.Db.Conn.
		Where("requester_id = ?", requesterID).
		Order("created_at desc").
		Find(&requests).Error
	return requests, err
}

func (b *BreathSafe) listAllRequests() ([]models.CommunityRequest, error) {
	var requests []models.CommunityRequest
	err := b.Db.Conn.Order("created_at asc").Find(&requests).Error
	return requests, err
}

func (b *BreathSafe) getRequest(id uint) (*models.CommunityRequest, error) {
	var request models.CommunityRequest
	if err := b.Db.Conn.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (b *BreathSafe) createRequest(requester *models.User, input lifecycle.CreateInput) (*models.CommunityRequest, error) {
	logger := requestLogger()

	if fieldErrs := lifecycle.ValidateCreate(input); fieldErrs != nil {
		return nil, fieldErrs
	}

	request := models.CommunityRequest{
		RequesterID:       requester.ID,
		RequesterName:     requester.Name,
		RequestedLocation: input.RequestedLocation,
		Latitude:          *input.Latitude,
		Longitude:         *input.Longitude,
		Justification:     input.Justification,
		Status:            models.RequestStatusPending,
	}

	if err := b.Db.Conn.Create(&request).Error; err != nil {
		return nil, err
	}

	logger.Info("Request created", zap.Reflect("request", request))
	return &request, nil
}

func (b *BreathSafe) updateRequest(requesterID uint, id uint, patch lifecycle.Patch) (*models.CommunityRequest, error) {
	logger := requestLogger()

	existing, err := b.getRequest(id)
	if err != nil {
		return nil, err
	}
	if existing.RequesterID != requesterID {
		return nil, ErrForbidden
	}
	if err := lifecycle.ValidateEdit(existing, patch); err != nil {
		return nil, err
	}

	updated := lifecycle.ApplyPatch(existing, patch)
	if err := b.Db.Conn.Save(&updated).Error; err != nil {
		return nil, err
	}

	logger.Info("Request updated", zap.Reflect("request", updated))
	return &updated, nil
}

func (b *BreathSafe) deleteRequest(requesterID uint, id uint) error {
	logger := requestLogger()

	existing, err := b.getRequest(id)
	if err != nil {
		return err
	}
	if existing.RequesterID != requesterID {
		return ErrForbidden
	}
	if !existing.IsPending() {
		return &lifecycle.NotEditableError{ID: existing.ID, Status: existing.Status}
	}

	if err := b.Db.Conn.Delete(&models.CommunityRequest{}, id).Error; err != nil {
		return err
	}

	logger.Info("Request deleted", zap.Uint("id", id))
	return nil
}

// approveRequest applies the one allowed terminal transition to APPROVED and,
// in the same transaction, marks the assigned sensor INSTALLED at the
// requested location.
func (b *BreathSafe) approveRequest(id uint, sensorID uint, approvedByName, comments string) (*models.CommunityRequest, error) {
	logger := requestLogger()

	var approved models.CommunityRequest
	err := b.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var existing models.CommunityRequest
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var sensor models.Sensor
		if err := tx.First(&sensor, sensorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		result, err := lifecycle.Approve(&existing, &sensor, approvedByName, comments)
		if err != nil {
			return err
		}

		if err := tx.Save(&result).Error; err != nil {
			return err
		}

		sensor.Status = models.SensorStatusInstalled
		sensor.Location = result.RequestedLocation
		sensor.Latitude = result.Latitude
		sensor.Longitude = result.Longitude
		if err := tx.Save(&sensor).Error; err != nil {
			return err
		}

		approved = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Request approved",
		zap.Uint("id", id),
		zap.Uint("sensor_id", sensorID),
		zap.String("approved_by", approvedByName))
	return &approved, nil
}

func (b *BreathSafe) rejectRequest(id uint, comments string) (*models.CommunityRequest, error) {
	logger := requestLogger()

	existing, err := b.getRequest(id)
	if err != nil {
		return nil, err
	}

	rejected, err := lifecycle.Reject(existing, comments)
	if err != nil {
		return nil, err
	}

	if err := b.Db.Conn.Save(&rejected).Error; err != nil {
		return nil, err
	}

	logger.Info("Request rejected", zap.Uint("id", id))
	return &rejected, nil
}

type IRequestsImpl struct {
	core *BreathSafe
}

func (ir *IRequestsImpl) ListForRequester(requesterID uint) ([]models.CommunityRequest, error) {
	return ir.core.listRequestsForRequester(requesterID)
}

func (ir *IRequestsImpl) ListAll() ([]models.CommunityRequest, error) {
	return ir.core.listAllRequests()
}

func (ir *IRequestsImpl) Get(id uint) (*models.CommunityRequest, error) {
	return ir.core.getRequest(id)
}

func (ir *IRequestsImpl) Create(requester *models.User, input lifecycle.CreateInput) (*models.CommunityRequest, error) {
	return ir.core.createRequest(requester, input)
}

func (ir *IRequestsImpl) Update(requesterID uint, id uint, patch lifecycle.Patch) (*models.CommunityRequest, error) {
	return ir.core.updateRequest(requesterID, id, patch)
}

func (ir *IRequestsImpl) Delete(requesterID uint, id uint) error {
	return ir.core.deleteRequest(requesterID, id)
}

func (ir *IRequestsImpl) Approve(id uint, sensorID uint, approvedByName, comments string) (*models.CommunityRequest, error) {
	return ir.core.approveRequest(id, sensorID, approvedByName, comments)
}

func (ir *IRequestsImpl) Reject(id uint, comments string) (*models.CommunityRequest, error) {
	return ir.core.rejectRequest(id, comments)
}

func (b *BreathSafe) GetIRequests() IRequests {
	return &IRequestsImpl{core: b}
}
