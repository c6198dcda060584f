package submitter

import (
	"context"
	"fmt"
	"time"

	"staysync/config"
	"staysync/infras/otel"
	"staysync/internal/domains/booking/form"
	"staysync/internal/domains/booking/model"
	"staysync/shared/constant"
	"staysync/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Simulated stands in for the booking backend: it waits for a fixed latency and always succeeds.
type Simulated struct {
	latency time.Duration
	otel    otel.Otel
}

var _ form.Submitter = (*Simulated)(nil)

func New(cfg *config.Config, otel otel.Otel) *Simulated {
	return NewWithLatency(cfg.SubmitLatency(), otel)
}

func NewWithLatency(latency time.Duration, otel otel.Otel) *Simulated {
	return &Simulated{
		latency: latency,
		otel:    otel,
	}
}

func (s *Simulated) Submit(ctx context.Context, draft model.Draft) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SimulatedSubmit")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		string(model.FieldRoomType): draft.RoomType,
		string(model.FieldCheckIn):  timezone.FormatDate(draft.CheckIn),
		string(model.FieldCheckOut): timezone.FormatDate(draft.CheckOut),
		"latency_ms":                s.latency.Milliseconds(),
	})

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		log.Info().
			Str(string(model.FieldRoomType), draft.RoomType).
			Str(string(model.FieldCheckIn), timezone.FormatDate(draft.CheckIn)).
			Msg("simulated booking created")

		return nil
	case <-ctx.Done():
		err = fmt.Errorf("simulated booking interrupted: %w", ctx.Err())
		scope.TraceError(err)

		return err
	}
}
