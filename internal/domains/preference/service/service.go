package service

import (
	"context"
	"fmt"
	"strings"

	"staysync/infras/otel"
	"staysync/internal/domains/preference/model"
	"staysync/internal/domains/preference/model/dto"
	"staysync/internal/domains/preference/repository"
	"staysync/shared/constant"
	"staysync/shared/failure"
	"staysync/shared/metrics"

	"github.com/rs/zerolog/log"
)

var ErrMissingClientID = failure.BadRequestFromString("X-Client-ID header is required")

type Preference interface {
	// Get resolves the effective preference: the stored value, then the client's system hint,
	// then light.
	Get(ctx context.Context, clientID, systemHint string) (dto.PreferenceResponse, error)
	SetDarkMode(ctx context.Context, clientID string, req dto.SetDarkModeRequest) (dto.PreferenceResponse, error)
	ToggleDarkMode(ctx context.Context, clientID, systemHint string) (dto.PreferenceResponse, error)
}

type serviceImpl struct {
	repo repository.Preference
	otel otel.Otel
}

func New(repo repository.Preference, otel otel.Otel) Preference {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, clientID, systemHint string) (res dto.PreferenceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pref, source, err := s.resolve(ctx, clientID, systemHint)
	if err != nil {
		return res, err
	}

	res.FromModel(pref, source)

	return res, nil
}

func (s *serviceImpl) SetDarkMode(ctx context.Context, clientID string, req dto.SetDarkModeRequest) (res dto.PreferenceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetDarkMode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if clientID == constant.Empty {
		return res, ErrMissingClientID
	}

	pref := model.Preference{DarkMode: *req.DarkMode}

	if err = s.save(ctx, clientID, pref); err != nil {
		return res, err
	}

	res.FromModel(pref, model.SourceStored)

	return res, nil
}

// ToggleDarkMode flips the effective preference and stores the result.
func (s *serviceImpl) ToggleDarkMode(ctx context.Context, clientID, systemHint string) (res dto.PreferenceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleDarkMode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if clientID == constant.Empty {
		return res, ErrMissingClientID
	}

	pref, _, err := s.resolve(ctx, clientID, systemHint)
	if err != nil {
		return res, err
	}

	pref.DarkMode = !pref.DarkMode

	if err = s.save(ctx, clientID, pref); err != nil {
		return res, err
	}

	res.FromModel(pref, model.SourceStored)

	return res, nil
}

func (s *serviceImpl) resolve(ctx context.Context, clientID, systemHint string) (model.Preference, model.Source, error) {
	if clientID != constant.Empty {
		pref, found, err := s.repo.Get(ctx, clientID)
		if err != nil {
			log.Error().Err(err).Str("client", clientID).Msg("failed to load preference")

			return model.Preference{}, constant.Empty, fmt.Errorf("failed to load preference: %w", err)
		}

		if found {
			return pref, model.SourceStored, nil
		}
	}

	switch strings.Trim(strings.ToLower(systemHint), `" `) {
	case constant.ColorSchemeDark:
		return model.Preference{DarkMode: true}, model.SourceSystem, nil
	case constant.ColorSchemeLight:
		return model.Preference{DarkMode: false}, model.SourceSystem, nil
	}

	return model.Preference{}, model.SourceDefault, nil
}

func (s *serviceImpl) save(ctx context.Context, clientID string, pref model.Preference) error {
	if err := s.repo.Save(ctx, clientID, pref); err != nil {
		log.Error().Err(err).Str("client", clientID).Msg("failed to save preference")

		return fmt.Errorf("failed to save preference: %w", err)
	}

	metrics.IncDarkModeWrite(pref.DarkMode)

	return nil
}
