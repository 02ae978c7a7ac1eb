package controller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/controller/mocks"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/lifecycle"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/models"
	_ "github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/testing"
)

func floatPtr(v float64) *float64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func validInput() lifecycle.CreateInput {
	return lifecycle.CreateInput{
		RequestedLocation: "Kegalle Town",
		Latitude:          floatPtr(7.2513),
		Longitude:         floatPtr(80.3464),
		Justification:     "High traffic area with three schools nearby affecting many students daily",
	}
}

func sampleRequests() []models.CommunityRequest {
	return []models.CommunityRequest{
		{ID: 1, RequestedLocation: "Kegalle Town", RequesterName: "Nimal Perera", Status: models.RequestStatusPending},
		{ID: 2, RequestedLocation: "Colombo Fort", RequesterName: "Kamala Silva", Status: models.RequestStatusApproved},
		{ID: 3, RequestedLocation: "Kandy Lake", RequesterName: "Ruwan Perera", Status: models.RequestStatusPending},
	}
}

func TestRequestListLoadAndFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().MyRequests(gomock.Any()).Return(sampleRequests(), nil)

	rl := NewRequestList(api)
	require.NoError(t, rl.Load(context.Background()))

	all := rl.Requests()
	require.Len(t, all, 3)

	pending := rl.FilterByStatus(models.RequestStatusPending)
	require.Len(t, pending, 2)
	// loaded order preserved
	assert.Equal(t, uint(1), pending[0].ID)
	assert.Equal(t, uint(3), pending[1].ID)

	// ALL and empty pass everything through
	assert.Len(t, rl.FilterByStatus(StatusAll), 3)
	assert.Len(t, rl.FilterByStatus(""), 3)

	// filtering does not mutate the loaded list
	assert.Len(t, rl.Requests(), 3)
}

func TestRequestListOverlappingLoads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockAPI(ctrl)

	firstStarted := make(chan struct{})
	firstRelease := make(chan struct{})
	stale := []models.CommunityRequest{{ID: 99, Status: models.RequestStatusPending}}

	gomock.InOrder(
		api.EXPECT().MyRequests(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.CommunityRequest, error) {
			close(firstStarted)
			<-firstRelease
			return stale, nil
		}),
		api.EXPECT().MyRequests(gomock.Any()).Return(sampleRequests(), nil),
	)

	rl := NewRequestList(api)

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_ = rl.Load(context.Background())
	}()
	<-firstStarted

	// a second load starts and finishes while the first is in flight
	require.NoError(t, rl.Load(context.Background()))
	close(firstRelease)
	<-firstDone

	// the stale result from the first load never lands
	require.Len(t, rl.Requests(), 3)
	assert.Equal(t, uint(1), rl.Requests()[0].ID)
}

func TestRequestListCreateValidatesBeforeNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// no CreateRequest expectation: any call would fail the test
	api := mocks.NewMockAPI(ctrl)

	rl := NewRequestList(api)

	input := validInput()
	input.Justification = "too short"

	_, err := rl.Create(context.Background(), input)
	require.Error(t, err)

	fieldErrs, ok := err.(lifecycle.FieldErrors)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, lifecycle.FieldJustification)
}

func TestRequestListCreateAppendsConfirmedCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockAPI(ctrl)

	input := validInput()
	confirmed := models.CommunityRequest{ID: 7, RequestedLocation: input.RequestedLocation, Status: models.RequestStatusPending}
	api.EXPECT().CreateRequest(gomock.Any(), gomock.Eq(input)).Return(&confirmed, nil)

	rl := NewRequestList(api)
	created, err := rl.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)

	require.Len(t, rl.Requests(), 1)
	assert.Equal(t, uint(7), rl.Requests()[0].ID)
}

func TestRequestListEditRejectsTerminalLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().MyRequests(gomock.Any()).Return(sampleRequests(), nil)

	rl := NewRequestList(api)
	require.NoError(t, rl.Load(context.Background()))

	// request 2 is approved; the edit is refused without a network call
	_, err := rl.Edit(context.Background(), 2, lifecycle.Patch{RequestedLocation: strPtr("Elsewhere")})
	require.Error(t, err)
	var notEditable *lifecycle.NotEditableError
	assert.ErrorAs(t, err, &notEditable)
}

func TestRequestListEditReplacesOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().MyRequests(gomock.Any()).Return(sampleRequests(), nil)

	patch := lifecycle.Patch{RequestedLocation: strPtr("Kegalle Bus Stand")}
	updated := models.CommunityRequest{ID: 1, RequestedLocation: "Kegalle Bus Stand", Status: models.RequestStatusPending}
	api.EXPECT().UpdateRequest(gomock.Any(), gomock.Eq(uint(1)), gomock.Eq(patch)).Return(&updated, nil)

	rl := NewRequestList(api)
	require.NoError(t, rl.Load(context.Background()))

	_, err := rl.Edit(context.Background(), 1, patch)
	require.NoError(t, err)

	got, err := rl.View(1)
	require.NoError(t, err)
	assert.Equal(t, "Kegalle Bus Stand", got.RequestedLocation)
}

func TestRequestListDeleteRequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().MyRequests(gomock.Any()).Return(sampleRequests(), nil)

	rl := NewRequestList(api)
	require.NoError(t, rl.Load(context.Background()))

	err := rl.Delete(context.Background(), 1, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Len(t, rl.Requests(), 3)

	// terminal requests are refused before the network
	var notEditable *lifecycle.NotEditableError
	assert.ErrorAs(t, rl.Delete(context.Background(), 2, true), &notEditable)

	api.EXPECT().DeleteRequest(gomock.Any(), gomock.Eq(uint(1))).Return(nil)
	require.NoError(t, rl.Delete(context.Background(), 1, true))
	assert.Len(t, rl.Requests(), 2)
}

func TestRequestListCloseDiscardsLateLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockAPI(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().MyRequests(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.CommunityRequest, error) {
		close(started)
		<-release
		return sampleRequests(), nil
	})

	rl := NewRequestList(api)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = rl.Load(context.Background())
	}()
	<-started

	rl.Close()
	close(release)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("load did not return")
	}

	assert.Len(t, rl.Requests(), 0)
	assert.ErrorIs(t, rl.Load(context.Background()), ErrClosed)
}
