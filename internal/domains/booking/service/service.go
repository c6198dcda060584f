package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"staysync/config"
	"staysync/infras/otel"
	"staysync/internal/domains/booking/form"
	"staysync/internal/domains/booking/model"
	"staysync/internal/domains/booking/model/dto"
	"staysync/internal/domains/booking/repository"
	roomService "staysync/internal/domains/room/service"
	"staysync/shared"
	"staysync/shared/constant"
	gDto "staysync/shared/dto"
	"staysync/shared/failure"
	"staysync/shared/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	submitResultAccepted = "accepted"
	submitResultRejected = "rejected"
)

type Booking interface {
	Open(ctx context.Context) (dto.FormResponse, error)
	Get(ctx context.Context, id string) (dto.FormResponse, error)
	UpdateField(ctx context.Context, id string, req dto.UpdateFieldRequest) (dto.FormResponse, error)
	Submit(ctx context.Context, id string) (dto.FormResponse, error)
	Toggle(ctx context.Context, id string) (dto.FormResponse, error)
	Discard(ctx context.Context, id string) error
	Validate(ctx context.Context, req dto.DraftRequest) (dto.ValidationResponse, error)
	GetRecent(ctx context.Context, params gDto.QueryParams) (dto.GetRecentBookingsResponse, error)
}

type session struct {
	form     *form.Form
	lastSeen time.Time
}

type serviceImpl struct {
	repo      repository.Booking
	rooms     roomService.RoomType
	submitter form.Submitter
	cfg       *config.Config
	otel      otel.Otel

	mu       sync.Mutex
	sessions map[string]*session
	now      func() time.Time
}

func New(repo repository.Booking, rooms roomService.RoomType, submitter form.Submitter, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		rooms:     rooms,
		submitter: submitter,
		cfg:       cfg,
		otel:      otel,
		sessions:  map[string]*session{},
		now:       time.Now,
	}
}

// Open starts a new form session with an empty draft being edited.
func (s *serviceImpl) Open(ctx context.Context) (res dto.FormResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Open")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	catalog, err := s.rooms.Catalog(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load room catalog for booking form")

		return res, fmt.Errorf("failed to open booking form: %w", err)
	}

	id := uuid.NewString()
	scope.SetAttribute("session.id", id)

	f := form.New(s.submitter, form.Options{
		ResetDelay:   s.cfg.ResetDelay(),
		Rooms:        catalog,
		OnTransition: observe(id),
	})

	if err = f.Open(); err != nil {
		return res, fmt.Errorf("failed to open booking form: %w", err)
	}

	s.mu.Lock()
	s.evictIdle()
	s.sessions[id] = &session{form: f, lastSeen: s.now()}
	count := len(s.sessions)
	s.mu.Unlock()

	metrics.SetFormSessions(count)

	res.FromModel(id, f.Snapshot())

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FormResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	f, err := s.session(id)
	if err != nil {
		return res, err
	}

	res.FromModel(id, f.Snapshot())

	return res, nil
}

func (s *serviceImpl) UpdateField(ctx context.Context, id string, req dto.UpdateFieldRequest) (res dto.FormResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateField")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking.field", req.Field)

	field, ok := model.ParseField(req.Field)
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown field %q", req.Field)) // nolint:wrapcheck
	}

	f, err := s.session(id)
	if err != nil {
		return res, err
	}

	if err = f.UpdateField(field, req.Value); err != nil {
		log.Debug().Err(err).Str("session", id).Str("field", req.Field).Msg("rejected booking field update")

		return res, fmt.Errorf("failed to update %s: %w", field, err)
	}

	res.FromModel(id, f.Snapshot())

	return res, nil
}

// Submit returns the form with its errors populated when validation fails, and in the
// submitting phase otherwise.
func (s *serviceImpl) Submit(ctx context.Context, id string) (res dto.FormResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	f, err := s.session(id)
	if err != nil {
		return res, err
	}

	errs, err := f.Submit(ctx)
	if err != nil {
		log.Error().Err(err).Str("session", id).Msg("failed to submit booking form")

		return res, fmt.Errorf("failed to submit booking form: %w", err)
	}

	if len(errs) > 0 {
		for _, field := range errs.Ordered() {
			metrics.IncValidationFailure(string(field))
		}

		metrics.IncBookingSubmitted(submitResultRejected)
		scope.AddEvent(fmt.Sprintf("booking draft rejected with %d errors", len(errs)))
	} else {
		metrics.IncBookingSubmitted(submitResultAccepted)
		scope.AddEvent("booking draft accepted")
	}

	res.FromModel(id, f.Snapshot())

	return res, nil
}

func (s *serviceImpl) Toggle(ctx context.Context, id string) (res dto.FormResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Toggle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	f, err := s.session(id)
	if err != nil {
		return res, err
	}

	f.Toggle()

	res.FromModel(id, f.Snapshot())

	return res, nil
}

// Discard closes the form and forgets the session.
func (s *serviceImpl) Discard(ctx context.Context, id string) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Discard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return failure.NotFound("booking form session not found") // nolint:wrapcheck
	}

	sess.form.Close()
	metrics.SetFormSessions(count)

	return nil
}

// Validate checks a complete draft without touching any session.
func (s *serviceImpl) Validate(ctx context.Context, req dto.DraftRequest) (res dto.ValidationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Validate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	draft, err := req.ToModel()
	if err != nil {
		return res, err
	}

	catalog, err := s.rooms.Catalog(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load room catalog for validation")

		return res, fmt.Errorf("failed to validate booking draft: %w", err)
	}

	res.FromModel(form.Validate(draft, catalog))

	return res, nil
}

// GetRecent pages through the recent bookings, optionally filtered by guest or room.
func (s *serviceImpl) GetRecent(ctx context.Context, params gDto.QueryParams) (res dto.GetRecentBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRecent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.GetRecent(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	if params.Search != constant.Empty {
		needle := strings.ToLower(params.Search)
		filtered := bookings[:0]

		for _, booking := range bookings {
			if strings.Contains(strings.ToLower(booking.Guest), needle) || strings.Contains(strings.ToLower(booking.Room), needle) {
				filtered = append(filtered, booking)
			}
		}

		bookings = filtered
	}

	res.FromModels(shared.Paginate(bookings, params), params.Offset(), len(bookings), params.Limit)

	return res, nil
}

func (s *serviceImpl) session(id string) (*form.Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, failure.NotFound("booking form session not found") // nolint:wrapcheck
	}

	sess.lastSeen = s.now()

	return sess.form, nil
}

// evictIdle drops sessions untouched for longer than the idle period. Callers hold s.mu.
func (s *serviceImpl) evictIdle() {
	idle := s.cfg.SessionIdle()
	if idle <= 0 {
		return
	}

	cutoff := s.now().Add(-idle)

	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			sess.form.Close()
			delete(s.sessions, id)

			log.Debug().Str("session", id).Msg("evicted idle booking form session")
		}
	}
}

func observe(id string) func(from, to form.Phase) {
	return func(from, to form.Phase) {
		metrics.IncFormTransition(from.String(), to.String())

		log.Debug().
			Str("session", id).
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("booking form transition")
	}
}
