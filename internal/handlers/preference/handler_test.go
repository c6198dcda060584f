package preference_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "staysync/infras/otel/mocks"
	"staysync/internal/domains/preference/mocks"
	"staysync/internal/domains/preference/model"
	"staysync/internal/domains/preference/service"
	"staysync/internal/handlers/preference"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (chi.Router, *mocks.MockPreference) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockPreference(ctrl)
	otel := otelMocks.NewOtel()

	handler := preference.New(service.New(mockRepo, otel), otel)

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, mockRepo
}

func TestHandler_GetPreference(t *testing.T) {
	router, mockRepo := newRouter(t)

	mockRepo.EXPECT().Get(gomock.Any(), "desk-1").Return(model.Preference{}, false, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/preferences", nil)
	req.Header.Set("X-Client-ID", "desk-1")
	req.Header.Set("Sec-CH-Prefers-Color-Scheme", "dark")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"dark_mode":true,"theme":"dark","source":"system"}}`, rec.Body.String())
	assert.Equal(t, "Sec-CH-Prefers-Color-Scheme", rec.Header().Get("Accept-CH"))
}

func TestHandler_SetDarkMode(t *testing.T) {
	router, mockRepo := newRouter(t)

	mockRepo.EXPECT().Save(gomock.Any(), "desk-1", model.Preference{DarkMode: true}).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/v1/preferences/dark-mode", strings.NewReader(`{"dark_mode":true}`))
	req.Header.Set("X-Client-ID", "desk-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"dark_mode":true,"theme":"dark","source":"stored"}}`, rec.Body.String())
}

func TestHandler_SetDarkModeRequiresBody(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/v1/preferences/dark-mode", strings.NewReader(`{}`))
	req.Header.Set("X-Client-ID", "desk-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ToggleDarkMode(t *testing.T) {
	router, mockRepo := newRouter(t)

	mockRepo.EXPECT().Get(gomock.Any(), "desk-1").Return(model.Preference{DarkMode: true}, true, nil)
	mockRepo.EXPECT().Save(gomock.Any(), "desk-1", model.Preference{DarkMode: false}).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/preferences/dark-mode/toggle", nil)
	req.Header.Set("X-Client-ID", "desk-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"dark_mode":false,"theme":"light","source":"stored"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/preferences/dark-mode/toggle", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
