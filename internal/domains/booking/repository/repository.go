package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"staysync/infras/otel"
	"staysync/internal/domains/booking/model"
	"staysync/shared/constant"
)

//go:embed fixtures/recent_bookings.json
var recentBookingsFixture []byte

// Booking reads the recent bookings shown next to the form. Bookings created through the form are
// never added here.
type Booking interface {
	GetRecent(ctx context.Context) ([]model.RecentBooking, error)
}

type repositoryImpl struct {
	recent []model.RecentBooking
	otel   otel.Otel
}

func New(otel otel.Otel) (Booking, error) {
	var recent []model.RecentBooking

	if err := json.Unmarshal(recentBookingsFixture, &recent); err != nil {
		return nil, fmt.Errorf("failed to decode recent bookings: %w", err)
	}

	for _, booking := range recent {
		if booking.Status != model.StatusCheckedIn && booking.Status != model.StatusConfirmed {
			return nil, fmt.Errorf("recent booking %d has unknown status %q", booking.ID, booking.Status)
		}
	}

	return &repositoryImpl{
		recent: recent,
		otel:   otel,
	}, nil
}

func (r *repositoryImpl) GetRecent(ctx context.Context) ([]model.RecentBooking, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetRecent")
	defer scope.End()

	return slices.Clone(r.recent), nil
}
