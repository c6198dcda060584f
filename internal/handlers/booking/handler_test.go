package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staysync/config"
	otelMocks "staysync/infras/otel/mocks"
	bookingMocks "staysync/internal/domains/booking/mocks"
	"staysync/internal/domains/booking/model/dto"
	"staysync/internal/domains/booking/repository"
	"staysync/internal/domains/booking/service"
	roomRepository "staysync/internal/domains/room/repository"
	roomService "staysync/internal/domains/room/service"
	"staysync/internal/handlers/booking"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func newRouter(t *testing.T, submitter *bookingMocks.MockSubmitter) chi.Router {
	t.Helper()

	cfg := &config.Config{}
	cfg.Booking.ResetDelayMillis = 20

	otel := otelMocks.NewOtel()

	repo, err := repository.New(otel)
	require.NoError(t, err)

	rooms, err := roomRepository.New(otel)
	require.NoError(t, err)

	svc := service.New(repo, roomService.New(rooms, otel), submitter, cfg, otel)
	handler := booking.New(svc, otel)

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router
}

func do(t *testing.T, router http.Handler, method, path, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec.Code, env
}

func openForm(t *testing.T, router http.Handler) dto.FormResponse {
	t.Helper()

	code, env := do(t, router, http.MethodPost, "/v1/reservations/forms", "")
	require.Equal(t, http.StatusCreated, code)

	var form dto.FormResponse
	require.NoError(t, json.Unmarshal(env.Data, &form))

	return form
}

func TestHandler_SubmitEmptyForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newRouter(t, bookingMocks.NewMockSubmitter(ctrl))

	form := openForm(t, router)
	assert.Equal(t, "editing", form.Phase)

	code, env := do(t, router, http.MethodPost, "/v1/reservations/forms/"+form.ID+"/submit", "")
	require.Equal(t, http.StatusUnprocessableEntity, code)

	var res dto.FormResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))

	assert.Len(t, res.Errors, 6)
	assert.Equal(t, "Guest name is required", res.Errors["guest_name"])
	assert.Equal(t, "editing", res.Phase)
}

func TestHandler_SubmitValidForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	submitter := bookingMocks.NewMockSubmitter(ctrl)
	router := newRouter(t, submitter)

	form := openForm(t, router)

	for _, body := range []string{
		`{"field":"guest_name","value":"Ann"}`,
		`{"field":"email","value":"a@b.com"}`,
		`{"field":"phone","value":"555"}`,
		`{"field":"room_type","value":"deluxe"}`,
		`{"field":"check_in","value":"2025-03-01"}`,
		`{"field":"check_out","value":"2025-03-03"}`,
	} {
		code, env := do(t, router, http.MethodPatch, "/v1/reservations/forms/"+form.ID+"/fields", body)
		require.Equal(t, http.StatusOK, code, env.Error)
	}

	submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	code, env := do(t, router, http.MethodPost, "/v1/reservations/forms/"+form.ID+"/submit", "")
	require.Equal(t, http.StatusAccepted, code)

	var res dto.FormResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Empty(t, res.Errors)
	assert.Contains(t, []string{"submitting", "success", "idle"}, res.Phase)

	code, _ = do(t, router, http.MethodDelete, "/v1/reservations/forms/"+form.ID, "")
	assert.Equal(t, http.StatusNoContent, code)
}

func TestHandler_UpdateFieldErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newRouter(t, bookingMocks.NewMockSubmitter(ctrl))

	form := openForm(t, router)

	tests := []struct {
		name string
		path string
		body string
		code int
	}{
		{name: "unknown field", path: form.ID, body: `{"field":"nickname","value":"x"}`, code: http.StatusBadRequest},
		{name: "malformed body", path: form.ID, body: `{"field":`, code: http.StatusBadRequest},
		{name: "malformed date", path: form.ID, body: `{"field":"check_in","value":"01/03/2025"}`, code: http.StatusBadRequest},
		{name: "unknown session", path: "missing", body: `{"field":"phone","value":"555"}`, code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, router, http.MethodPatch, "/v1/reservations/forms/"+tt.path+"/fields", tt.body)

			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestHandler_ToggleThenUpdateConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newRouter(t, bookingMocks.NewMockSubmitter(ctrl))

	form := openForm(t, router)

	code, env := do(t, router, http.MethodPost, "/v1/reservations/forms/"+form.ID+"/toggle", "")
	require.Equal(t, http.StatusOK, code)

	var res dto.FormResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "idle", res.Phase)
	assert.Equal(t, "bookings", res.View.Panel)

	code, _ = do(t, router, http.MethodPatch, "/v1/reservations/forms/"+form.ID+"/fields", `{"field":"phone","value":"555"}`)
	assert.Equal(t, http.StatusConflict, code)
}

func TestHandler_ValidateDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newRouter(t, bookingMocks.NewMockSubmitter(ctrl))

	code, env := do(t, router, http.MethodPost, "/v1/reservations/validate", `{
		"guest_name": "Ann",
		"email": "a@b.com",
		"phone": "555",
		"room_type": "deluxe",
		"check_in": "2025-03-05",
		"check_out": "2025-03-05"
	}`)
	require.Equal(t, http.StatusOK, code)

	var res dto.ValidationResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))

	assert.False(t, res.Valid)
	assert.Equal(t, map[string]string{"check_out": "Check-out date must be after check-in date"}, res.Errors)
}

func TestHandler_GetRecentBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newRouter(t, bookingMocks.NewMockSubmitter(ctrl))

	code, env := do(t, router, http.MethodGet, "/v1/reservations/recent?search=suite", "")
	require.Equal(t, http.StatusOK, code)

	var res dto.GetRecentBookingsResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))

	require.Len(t, res.Bookings, 1)
	assert.Equal(t, "James Wilson", res.Bookings[0].Guest)
	assert.Equal(t, 1, res.From)
	assert.Equal(t, 1, res.To)
}

func TestHandler_GetRecentBookingsRejectsHugePage(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newRouter(t, bookingMocks.NewMockSubmitter(ctrl))

	code, env := do(t, router, http.MethodGet, "/v1/reservations/recent?page=4611686018427387905&limit=3", "")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, env.Error)
}
