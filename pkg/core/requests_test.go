package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/common"
	. "github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/core"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/lifecycle"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
	_ "github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/testing"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func validCreateInput() lifecycle.CreateInput {
	return lifecycle.CreateInput{
		RequestedLocation: "Kegalle Town",
		Latitude:          floatPtr(7.2513),
		Longitude:         floatPtr(80.3464),
		Justification:     "High traffic area with three schools nearby affecting many students daily",
	}
}

func TestCreateRequest(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coreObj, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	requester := seedUser(t, coreObj, "Nimal Perera", false)

	created, err := coreObj.Requests.Create(requester, validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, models.RequestStatusPending, created.Status)
	assert.Equal(t, requester.ID, created.RequesterID)
	assert.Equal(t, "Nimal Perera", created.RequesterName)
	assert.Nil(t, created.SensorID)
	assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Second)

	mine, err := coreObj.Requests.ListForRequester(requester.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestCreateRequest_Invalid(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coreObj, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	requester := seedUser(t, coreObj, "Nimal Perera", false)

	input := validCreateInput()
	input.Justification = "too short"
	_, err := coreObj.Requests.Create(requester, input)

	var fieldErrs lifecycle.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, lifecycle.FieldJustification)
}

func TestUpdateRequest(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coreObj, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	requester := seedUser(t, coreObj, "Nimal Perera", false)
	created, err := coreObj.Requests.Create(requester, validCreateInput())
	require.NoError(t, err)

	updated, err := coreObj.Requests.Update(requester.ID, created.ID, lifecycle.Patch{
		RequestedLocation: strPtr("Kegalle Bus Stand"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Kegalle Bus Stand", updated.RequestedLocation)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	// other users cannot touch it
	other := seedUser(t, coreObj, "Someone Else", false)
	_, err = coreObj.Requests.Update(other.ID, created.ID, lifecycle.Patch{
		RequestedLocation: strPtr("Elsewhere"),
	})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = coreObj.Requests.Update(requester.ID, created.ID+99999, lifecycle.Patch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRequest_NotPending(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coreObj, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	requester := seedUser(t, coreObj, "Nimal Perera", false)
	created, err := coreObj.Requests.Create(requester, validCreateInput())
	require.NoError(t, err)

	sensor := seedSensor(t, coreObj, models.SensorStatusAvailable)
	_, err = coreObj.Requests.Approve(created.ID, sensor.ID, "Admin Silva", "")
	require.NoError(t, err)

	_, err = coreObj.Requests.Update(requester.ID, created.ID, lifecycle.Patch{
		RequestedLocation: strPtr("Elsewhere"),
	})
	var notEditable *lifecycle.NotEditableError
	require.ErrorAs(t, err, &notEditable)

	err = coreObj.Requests.Delete(requester.ID, created.ID)
	require.ErrorAs(t, err, &notEditable)
}

func TestDeleteRequest(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coreObj, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	requester := seedUser(t, coreObj, "Nimal Perera", false)
	created, err := coreObj.Requests.Create(requester, validCreateInput())
	require.NoError(t, err)

	require.NoError(t, coreObj.Requests.Delete(requester.ID, created.ID))

	_, err = coreObj.Requests.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApproveRequest(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coreObj, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	requester := seedUser(t, coreObj, "Nimal Perera", false)
	created, err := coreObj.Requests.Create(requester, validCreateInput())
	require.NoError(t, err)

	sensor := seedSensor(t, coreObj, models.SensorStatusAvailable)

	approved, err := coreObj.Requests.Approve(created.ID, sensor.ID, "Admin Silva", "Coverage gap confirmed")
	require.NoError(t, err)

	assert.Equal(t, models.RequestStatusApproved, approved.Status)
	require.NotNil(t, approved.SensorID)
	assert.Equal(t, sensor.ID, *approved.SensorID)
	require.NotNil(t, approved.ApprovedAt)
	assert.Equal(t, "Admin Silva", approved.ApprovedByName)

	// the assigned sensor moves to INSTALLED at the requested location
	var installed models.Sensor
	require.NoError(t, coreObj.Db.Conn.First(&installed, sensor.ID).Error)
	assert.Equal(t, models.SensorStatusInstalled, installed.Status)
	assert.Equal(t, "Kegalle Town", installed.Location)
}

func TestApproveRequest_SensorUnavailable(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coreObj, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	requester := seedUser(t, coreObj, "Nimal Perera", false)
	created, err := coreObj.Requests.Create(requester, validCreateInput())
	require.NoError(t, err)

	sensor := seedSensor(t, coreObj, models.SensorStatusMaintenance)

	_, err = coreObj.Requests.Approve(created.ID, sensor.ID, "Admin Silva", "")
	var unavailable *lifecycle.SensorUnavailableError
	require.ErrorAs(t, err, &unavailable)

	// nothing was applied, request still pending
	got, err := coreObj.Requests.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, got.Status)
}

func TestRejectRequest(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coreObj, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	requester := seedUser(t, coreObj, "Nimal Perera", false)
	created, err := coreObj.Requests.Create(requester, validCreateInput())
	require.NoError(t, err)

	rejected, err := coreObj.Requests.Reject(created.ID, "Duplicate of existing sensor coverage")
	require.NoError(t, err)

	assert.Equal(t, models.RequestStatusRejected, rejected.Status)
	assert.Equal(t, "Duplicate of existing sensor coverage", rejected.AdminComments)
	require.NotNil(t, rejected.RejectedAt)

	// terminal: a second transition is refused
	_, err = coreObj.Requests.Reject(created.ID, "again")
	var invalid *lifecycle.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
}
