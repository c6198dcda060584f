package service

import (
	"context"
	"fmt"

	"staysync/infras/otel"
	"staysync/internal/domains/room/model"
	"staysync/internal/domains/room/model/dto"
	"staysync/internal/domains/room/repository"
	"staysync/shared/constant"
	"staysync/shared/failure"

	"github.com/rs/zerolog/log"
)

type RoomType interface {
	GetAll(ctx context.Context) (dto.GetRoomTypesResponse, error)
	Get(ctx context.Context, id string) (dto.RoomTypeResponse, error)
	Catalog(ctx context.Context) (model.Catalog, error)
}

type serviceImpl struct {
	repo repository.RoomType
	otel otel.Otel
}

func New(repo repository.RoomType, otel otel.Otel) RoomType {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	catalog, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res.FromModels(catalog)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roomType, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	res.FromModel(roomType)

	return res, nil
}

// Catalog returns the raw catalog for components that check room codes.
func (s *serviceImpl) Catalog(ctx context.Context) (model.Catalog, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog")
	defer scope.End()

	catalog, err := s.repo.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load room type catalog")

		return nil, fmt.Errorf("failed to load room type catalog: %w", err)
	}

	return catalog, nil
}
