package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	otelMocks "staysync/infras/otel/mocks"
	"staysync/internal/domains/preference/mocks"
	"staysync/internal/domains/preference/model"
	"staysync/internal/domains/preference/model/dto"
	"staysync/internal/domains/preference/service"
	"staysync/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPreferenceService_Get(t *testing.T) {
	tests := []struct {
		name     string
		stored   *model.Preference
		hint     string
		darkMode bool
		source   model.Source
	}{
		{name: "stored wins over hint", stored: &model.Preference{DarkMode: false}, hint: "dark", darkMode: false, source: model.SourceStored},
		{name: "stored dark", stored: &model.Preference{DarkMode: true}, darkMode: true, source: model.SourceStored},
		{name: "system dark", hint: "dark", darkMode: true, source: model.SourceSystem},
		{name: "quoted system hint", hint: `"dark"`, darkMode: true, source: model.SourceSystem},
		{name: "system light", hint: "light", darkMode: false, source: model.SourceSystem},
		{name: "default light", darkMode: false, source: model.SourceDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := mocks.NewMockPreference(ctrl)
			svc := service.New(mockRepo, otelMocks.NewOtel())

			if tt.stored != nil {
				mockRepo.EXPECT().Get(gomock.Any(), "client-1").Return(*tt.stored, true, nil)
			} else {
				mockRepo.EXPECT().Get(gomock.Any(), "client-1").Return(model.Preference{}, false, nil)
			}

			res, err := svc.Get(context.Background(), "client-1", tt.hint)
			require.NoError(t, err)

			assert.Equal(t, tt.darkMode, res.DarkMode)
			assert.Equal(t, string(tt.source), res.Source)
		})
	}
}

func TestPreferenceService_GetWithoutClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.New(mocks.NewMockPreference(ctrl), otelMocks.NewOtel())

	res, err := svc.Get(context.Background(), "", "dark")
	require.NoError(t, err)

	assert.True(t, res.DarkMode)
	assert.Equal(t, "dark", res.Theme)
}

func TestPreferenceService_GetRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockPreference(ctrl)
	svc := service.New(mockRepo, otelMocks.NewOtel())

	mockRepo.EXPECT().Get(gomock.Any(), "client-1").Return(model.Preference{}, false, errors.New("redis down"))

	_, err := svc.Get(context.Background(), "client-1", "")
	assert.Error(t, err)
}

func TestPreferenceService_SetDarkMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockPreference(ctrl)
	svc := service.New(mockRepo, otelMocks.NewOtel())

	on := true

	mockRepo.EXPECT().Save(gomock.Any(), "client-1", model.Preference{DarkMode: true}).Return(nil)

	res, err := svc.SetDarkMode(context.Background(), "client-1", dto.SetDarkModeRequest{DarkMode: &on})
	require.NoError(t, err)
	assert.True(t, res.DarkMode)
	assert.Equal(t, "stored", res.Source)

	_, err = svc.SetDarkMode(context.Background(), "", dto.SetDarkModeRequest{DarkMode: &on})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestPreferenceService_ToggleDarkMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockPreference(ctrl)
	svc := service.New(mockRepo, otelMocks.NewOtel())

	t.Run("from system hint", func(t *testing.T) {
		gomock.InOrder(
			mockRepo.EXPECT().Get(gomock.Any(), "client-1").Return(model.Preference{}, false, nil),
			mockRepo.EXPECT().Save(gomock.Any(), "client-1", model.Preference{DarkMode: false}).Return(nil),
		)

		res, err := svc.ToggleDarkMode(context.Background(), "client-1", "dark")
		require.NoError(t, err)
		assert.False(t, res.DarkMode)
		assert.Equal(t, "light", res.Theme)
	})

	t.Run("from stored", func(t *testing.T) {
		gomock.InOrder(
			mockRepo.EXPECT().Get(gomock.Any(), "client-1").Return(model.Preference{DarkMode: false}, true, nil),
			mockRepo.EXPECT().Save(gomock.Any(), "client-1", model.Preference{DarkMode: true}).Return(nil),
		)

		res, err := svc.ToggleDarkMode(context.Background(), "client-1", "")
		require.NoError(t, err)
		assert.True(t, res.DarkMode)
	})

	t.Run("save fails", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), "client-1").Return(model.Preference{}, false, nil)
		mockRepo.EXPECT().Save(gomock.Any(), "client-1", gomock.Any()).Return(errors.New("redis down"))

		_, err := svc.ToggleDarkMode(context.Background(), "client-1", "")
		assert.Error(t, err)
	})

	t.Run("missing client", func(t *testing.T) {
		_, err := svc.ToggleDarkMode(context.Background(), "", "dark")
		assert.ErrorIs(t, err, service.ErrMissingClientID)
	})
}
