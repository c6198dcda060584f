package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"staysync/config"
	"staysync/infras/otel/mocks"
	bookingMocks "staysync/internal/domains/booking/mocks"
	"staysync/internal/domains/booking/model/dto"
	"staysync/internal/domains/booking/repository"
	"staysync/internal/domains/booking/service"
	roomModel "staysync/internal/domains/room/model"
	roomRepository "staysync/internal/domains/room/repository"
	roomService "staysync/internal/domains/room/service"
	gDto "staysync/shared/dto"
	"staysync/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var catalog = roomModel.Catalog{
	{ID: "standard", Name: "Standard Room", Price: 99, Available: 15},
	{ID: "deluxe", Name: "Deluxe Room", Price: 149, Available: 8},
}

func newService(t *testing.T, submitter *bookingMocks.MockSubmitter) service.Booking {
	t.Helper()

	cfg := &config.Config{}
	cfg.Booking.ResetDelayMillis = 20
	cfg.Booking.SessionIdleMinutes = 30

	otel := mocks.NewOtel()

	repo, err := repository.New(otel)
	require.NoError(t, err)

	rooms := roomService.New(roomRepository.NewWithCatalog(catalog, otel), otel)

	return service.New(repo, rooms, submitter, cfg, otel)
}

func fill(t *testing.T, svc service.Booking, id string) {
	t.Helper()

	for _, req := range []dto.UpdateFieldRequest{
		{Field: "guest_name", Value: "Ann"},
		{Field: "email", Value: "a@b.com"},
		{Field: "phone", Value: "555"},
		{Field: "room_type", Value: "deluxe"},
		{Field: "check_in", Value: "2025-03-01"},
		{Field: "check_out", Value: "2025-03-03"},
	} {
		_, err := svc.UpdateField(context.Background(), id, req)
		require.NoError(t, err)
	}
}

func TestBookingService_Open(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newService(t, bookingMocks.NewMockSubmitter(ctrl))

	res, err := svc.Open(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "editing", res.Phase)
	assert.Equal(t, 1, res.Draft.Adults)
	assert.Equal(t, "form", res.View.Panel)

	got, err := svc.Get(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)
}

func TestBookingService_UnknownSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newService(t, bookingMocks.NewMockSubmitter(ctrl))

	_, err := svc.Get(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = svc.Submit(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(svc.Discard(context.Background(), "missing")))
}

func TestBookingService_UpdateField(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newService(t, bookingMocks.NewMockSubmitter(ctrl))

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)

	res, err := svc.UpdateField(context.Background(), opened.ID, dto.UpdateFieldRequest{Field: "check_in", Value: "2025-03-01"})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", res.Draft.CheckIn)
	assert.Equal(t, "2025-03-01", res.View.CheckOutMin)

	_, err = svc.UpdateField(context.Background(), opened.ID, dto.UpdateFieldRequest{Field: "nickname", Value: "x"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.UpdateField(context.Background(), opened.ID, dto.UpdateFieldRequest{Field: "adults", Value: "eleven"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBookingService_SubmitEmptyDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newService(t, bookingMocks.NewMockSubmitter(ctrl))

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)

	res, err := svc.Submit(context.Background(), opened.ID)
	require.NoError(t, err)

	assert.Equal(t, "editing", res.Phase)
	assert.Equal(t, map[string]string{
		"guest_name": "Guest name is required",
		"email":      "Email is required",
		"phone":      "Phone number is required",
		"room_type":  "Please select a room type",
		"check_in":   "Check-in date is required",
		"check_out":  "Check-out date is required",
	}, res.Errors)
}

func TestBookingService_SubmitValid(t *testing.T) {
	ctrl := gomock.NewController(t)
	submitter := bookingMocks.NewMockSubmitter(ctrl)
	svc := newService(t, submitter)

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)
	fill(t, svc, opened.ID)

	submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Submit(context.Background(), opened.ID)
	require.NoError(t, err)
	assert.Empty(t, res.Errors)

	assert.Eventually(t, func() bool {
		got, err := svc.Get(context.Background(), opened.ID)

		return err == nil && got.Phase == "idle"
	}, time.Second, 5*time.Millisecond)

	got, err := svc.Get(context.Background(), opened.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Draft.GuestName)
	assert.Equal(t, "bookings", got.View.Panel)
}

func TestBookingService_SubmitCheckOutBeforeCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newService(t, bookingMocks.NewMockSubmitter(ctrl))

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)
	fill(t, svc, opened.ID)

	_, err = svc.UpdateField(context.Background(), opened.ID, dto.UpdateFieldRequest{Field: "check_out", Value: "2025-02-27"})
	require.NoError(t, err)

	res, err := svc.Submit(context.Background(), opened.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"check_out": "Check-out date must be after check-in date"}, res.Errors)
}

func TestBookingService_ToggleAndDiscard(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newService(t, bookingMocks.NewMockSubmitter(ctrl))

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)

	res, err := svc.Toggle(context.Background(), opened.ID)
	require.NoError(t, err)
	assert.Equal(t, "idle", res.Phase)
	assert.Equal(t, "New Booking", res.View.ToggleLabel)

	res, err = svc.Toggle(context.Background(), opened.ID)
	require.NoError(t, err)
	assert.Equal(t, "editing", res.Phase)

	require.NoError(t, svc.Discard(context.Background(), opened.ID))

	_, err = svc.Get(context.Background(), opened.ID)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newService(t, bookingMocks.NewMockSubmitter(ctrl))

	res, err := svc.Validate(context.Background(), dto.DraftRequest{
		GuestName: "Ann",
		Email:     "a@b",
		Phone:     "555",
		RoomType:  "penthouse",
		CheckIn:   "2025-03-01",
		CheckOut:  "2025-03-03",
	})
	require.NoError(t, err)

	assert.False(t, res.Valid)
	assert.Equal(t, map[string]string{
		"email":     "Email is invalid",
		"room_type": "Please select a room type",
	}, res.Errors)
}

func TestBookingService_GetRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newService(t, bookingMocks.NewMockSubmitter(ctrl))

	res, err := svc.GetRecent(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 4, res.TotalData)
	assert.Len(t, res.Bookings, 4)

	res, err = svc.GetRecent(context.Background(), gDto.QueryParams{Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, res.Bookings, 1)
	assert.Equal(t, 4, res.From)
	assert.Equal(t, 2, res.TotalPage)

	res, err = svc.GetRecent(context.Background(), gDto.QueryParams{Page: 1, Limit: 10, Search: "emma"})
	require.NoError(t, err)
	require.Len(t, res.Bookings, 1)
	assert.Equal(t, "Emma Thompson", res.Bookings[0].Guest)

	res, err = svc.GetRecent(context.Background(), gDto.QueryParams{Page: 4611686018427387905, Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, res.Bookings)
	assert.Zero(t, res.From)
	assert.Equal(t, 4, res.TotalData)
}
