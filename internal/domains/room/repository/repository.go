package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"staysync/infras/otel"
	"staysync/internal/domains/room/model"
	"staysync/shared/constant"
)

//go:embed fixtures/room_types.json
var roomTypesFixture []byte

// RoomType reads the room-type catalog. The catalog is reference data and never changes at runtime.
type RoomType interface {
	GetAll(ctx context.Context) (model.Catalog, error)
	Get(ctx context.Context, id string) (model.RoomType, error)
}

type repositoryImpl struct {
	catalog model.Catalog
	otel    otel.Otel
}

func New(otel otel.Otel) (RoomType, error) {
	catalog, err := Decode(roomTypesFixture)
	if err != nil {
		return nil, err
	}

	return NewWithCatalog(catalog, otel), nil
}

// NewWithCatalog serves the given catalog instead of the embedded fixture.
func NewWithCatalog(catalog model.Catalog, otel otel.Otel) RoomType {
	return &repositoryImpl{
		catalog: catalog,
		otel:    otel,
	}
}

// Decode parses a JSON array of room types.
func Decode(raw []byte) (model.Catalog, error) {
	var catalog model.Catalog

	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("failed to decode room type catalog: %w", err)
	}

	for _, roomType := range catalog {
		if roomType.ID == constant.Empty {
			return nil, fmt.Errorf("room type %q has no id", roomType.Name)
		}
	}

	return catalog, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context) (model.Catalog, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".roomType.GetAll")
	defer scope.End()

	return slices.Clone(r.catalog), nil
}

// Get returns the zero RoomType when id is unknown.
func (r *repositoryImpl) Get(ctx context.Context, id string) (model.RoomType, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".roomType.Get")
	defer scope.End()

	scope.SetAttribute(model.FieldID, id)

	roomType, _ := r.catalog.Find(id)

	return roomType, nil
}
