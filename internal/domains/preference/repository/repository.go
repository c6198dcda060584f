package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"staysync/config"
	"staysync/infras/otel"
	"staysync/internal/domains/preference/model"
	"staysync/shared"
	"staysync/shared/cache"
	"staysync/shared/constant"
)

const cachePreference = "preference"

// Preference persists display preferences keyed by client id.
type Preference interface {
	// Get reports found=false when the client never stored a preference.
	Get(ctx context.Context, clientID string) (pref model.Preference, found bool, err error)
	Save(ctx context.Context, clientID string, pref model.Preference) error
}

type repositoryImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Preference {
	return &repositoryImpl{
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func (r *repositoryImpl) Get(ctx context.Context, clientID string) (pref model.Preference, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Get")
	defer scope.End()

	err = r.cache.Get(ctx, shared.BuildCacheKey(cachePreference, clientID), &pref)
	if errors.Is(err, cache.Nil) {
		return model.Preference{}, false, nil
	}

	if err != nil {
		scope.TraceError(err)

		return model.Preference{}, false, fmt.Errorf("failed to get preference: %w", err)
	}

	return pref, true, nil
}

func (r *repositoryImpl) Save(ctx context.Context, clientID string, pref model.Preference) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.cache.Save(ctx, shared.BuildCacheKey(cachePreference, clientID), pref, r.cfg.Preference.TTLSeconds); err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}

	return nil
}
