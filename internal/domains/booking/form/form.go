package form

import (
	"context"
	"maps"
	"sync"
	"time"

	"staysync/internal/domains/booking/model"
	"staysync/shared/failure"

	"github.com/rs/zerolog/log"
)

// Phase is the state of one booking form session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEditing
	PhaseSubmitting
	PhaseSuccess
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSuccess:
		return "success"
	default:
		return "unknown"
	}
}

const MessageSubmitFailed = "Booking could not be created, please try again"

var (
	ErrNotEditing  = failure.Conflict("booking form is not being edited")
	ErrAlreadyOpen = failure.Conflict("booking form is already open")
)

// State is a snapshot of a form session.
type State struct {
	Phase       Phase
	Draft       model.Draft
	Errors      model.Errors
	SubmitError string
}

type Options struct {
	// ResetDelay is how long the success confirmation stays before the form resets.
	ResetDelay time.Duration
	Rooms      RoomChecker
	// OnTransition runs with the form lock held and must not call back into the form.
	OnTransition func(from, to Phase)
}

// Form drives one draft through Idle, Editing, Submitting and Success.
//
// Closing the form abandons the draft and cancels whatever is pending: the submitter context is
// cancelled, the reset timer is stopped, and a generation counter turns any callback that still
// fires into a no-op.
type Form struct {
	mu         sync.Mutex
	state      State
	generation uint64
	cancel     context.CancelFunc
	resetTimer *time.Timer
	submitter  Submitter
	opts       Options
}

func New(submitter Submitter, opts Options) *Form {
	return &Form{
		state: State{
			Phase:  PhaseIdle,
			Draft:  model.NewDraft(),
			Errors: model.Errors{},
		},
		submitter: submitter,
		opts:      opts,
	}
}

// Open starts a fresh draft. It fails unless the form is idle.
func (f *Form) Open() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Phase != PhaseIdle {
		return ErrAlreadyOpen
	}

	f.open()

	return nil
}

// Close abandons the draft from any phase.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.close()
}

// Toggle opens an idle form and closes any other, returning the new phase.
func (f *Form) Toggle() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Phase == PhaseIdle {
		f.open()
	} else {
		f.close()
	}

	return f.state.Phase
}

// UpdateField sets one draft field and clears the error recorded for it.
func (f *Form) UpdateField(field model.Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Phase != PhaseEditing {
		return ErrNotEditing
	}

	draft := f.state.Draft
	if err := draft.Set(field, value); err != nil {
		return err
	}

	f.state.Draft = draft
	delete(f.state.Errors, field)

	return nil
}

// Submit validates the draft. Invalid drafts stay in Editing and their errors are returned.
// A valid draft moves to Submitting and the submitter runs in the background; the returned
// errors are then empty.
func (f *Form) Submit(ctx context.Context) (model.Errors, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Phase != PhaseEditing {
		return nil, ErrNotEditing
	}

	errs := Validate(f.state.Draft, f.opts.Rooms)
	if len(errs) > 0 {
		f.state.Errors = errs

		return maps.Clone(errs), nil
	}

	f.state.Errors = model.Errors{}
	f.state.SubmitError = ""
	f.generation++

	submitCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	f.cancel = cancel

	f.transition(PhaseSubmitting)

	go f.await(submitCtx, f.generation, f.state.Draft)

	return model.Errors{}, nil
}

// Snapshot returns a copy of the current state.
func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.state
	state.Errors = maps.Clone(f.state.Errors)

	return state
}

func (f *Form) await(ctx context.Context, generation uint64, draft model.Draft) {
	err := f.submitter.Submit(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()

	if generation != f.generation {
		return
	}

	f.release()

	if err != nil {
		log.Error().Err(err).Msg("booking submission failed")

		f.state.SubmitError = MessageSubmitFailed
		f.transition(PhaseEditing)

		return
	}

	f.transition(PhaseSuccess)

	f.resetTimer = time.AfterFunc(f.opts.ResetDelay, func() {
		f.reset(generation)
	})
}

func (f *Form) reset(generation uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if generation != f.generation {
		return
	}

	f.resetTimer = nil
	f.clear()
	f.transition(PhaseIdle)
}

func (f *Form) open() {
	f.abandon()
	f.clear()
	f.transition(PhaseEditing)
}

func (f *Form) close() {
	f.abandon()
	f.clear()
	f.transition(PhaseIdle)
}

func (f *Form) clear() {
	f.state.Draft = model.NewDraft()
	f.state.Errors = model.Errors{}
	f.state.SubmitError = ""
}

// abandon invalidates every pending callback of the current cycle.
func (f *Form) abandon() {
	f.generation++
	f.release()

	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}

func (f *Form) release() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

func (f *Form) transition(to Phase) {
	from := f.state.Phase
	if from == to {
		return
	}

	f.state.Phase = to

	if f.opts.OnTransition != nil {
		f.opts.OnTransition(from, to)
	}
}
