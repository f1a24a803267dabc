package order

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"deliverus-client/internal/httpapi"
	"deliverus-client/internal/logger"
	"deliverus-client/internal/notify"

	"go.uber.org/zap"
)

type FlowState string

const (
	StateIdle       FlowState = "IDLE"
	StateValidating FlowState = "VALIDATING"
	StateSubmitting FlowState = "SUBMITTING"
	StateConfirmed  FlowState = "CONFIRMED"
	StateDiscarded  FlowState = "DISCARDED"
)

// Flow drives one checkout attempt: validate the draft, post it, surface the
// outcome. At most one submission is in flight per flow; a second Submit
// while one is running is rejected, not queued. On failure the draft is kept
// so the user can correct and resubmit.
type Flow struct {
	repo     Repository
	notifier notify.Notifier

	mu          sync.Mutex
	state       FlowState
	draft       *Draft
	fieldErrs   []httpapi.FieldError
	onConfirmed func(orderID uint)
}

// NewFlow builds an idle flow. onConfirmed is the navigation hook invoked
// after a successful submission (e.g. jump to the orders list); nil is fine.
func NewFlow(repo Repository, notifier notify.Notifier, onConfirmed func(orderID uint)) *Flow {
	return &Flow{
		repo:        repo,
		notifier:    notifier,
		state:       StateIdle,
		onConfirmed: onConfirmed,
	}
}

// Begin installs the draft for this checkout attempt.
func (f *Flow) Begin(draft *Draft) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateSubmitting:
		return ErrSubmitInFlight
	case StateConfirmed, StateDiscarded:
		return ErrFlowFinished
	}

	f.draft = draft
	f.fieldErrs = nil
	f.state = StateIdle
	return nil
}

// Submit validates the current draft and posts it to the backend.
func (f *Flow) Submit(ctx context.Context) (*Order, error) {
	f.mu.Lock()

	if f.state == StateSubmitting {
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if f.state == StateConfirmed || f.state == StateDiscarded {
		f.mu.Unlock()
		return nil, ErrFlowFinished
	}
	if f.draft == nil {
		f.mu.Unlock()
		return nil, ErrNoDraft
	}

	draft := f.draft
	log := logger.FromCtx(ctx).With(
		zap.String("draft_id", draft.ID.String()),
		zap.Uint("restaurant_id", draft.RestaurantID),
		zap.Int("line_count", len(draft.Lines)),
	)

	// 1. Validate locally; a failing draft never reaches the network.
	f.state = StateValidating
	if errs := draft.Validate(); len(errs) > 0 {
		f.fieldErrs = errs
		f.state = StateIdle
		f.mu.Unlock()

		log.Warn("draft validation failed", zap.Int("error_count", len(errs)))
		f.notifier.FieldErrors(errs)
		return nil, ErrValidationFailed
	}

	// 2. Post. The lock is released during the network call so state stays
	// readable, but the SUBMITTING state keeps reentrant submits out.
	f.fieldErrs = nil
	f.state = StateSubmitting
	f.mu.Unlock()

	log.Info("submitting order")
	created, err := f.repo.Create(ctx, draft.Payload())

	f.mu.Lock()
	if err != nil {
		// Draft preserved for a corrected resubmit.
		f.state = StateIdle
		var apiErr *httpapi.APIError
		if errors.As(err, &apiErr) && len(apiErr.Errors) > 0 {
			f.fieldErrs = apiErr.Errors
			f.mu.Unlock()

			log.Warn("backend rejected order", zap.Int("error_count", len(apiErr.Errors)))
			f.notifier.FieldErrors(apiErr.Errors)
			return nil, err
		}
		f.mu.Unlock()

		log.Error("order submission failed", zap.Error(err))
		f.notifier.Error(fmt.Sprintf("There was a problem while creating the order. %v", err))
		return nil, err
	}

	// 3. Confirmed: the draft is spent.
	f.state = StateConfirmed
	f.draft = nil
	onConfirmed := f.onConfirmed
	f.mu.Unlock()

	log.Info("order confirmed", zap.Uint("order_id", created.ID))
	f.notifier.Success(fmt.Sprintf("Order %d successfully created. Go to My Orders to check it out!", created.ID))
	if onConfirmed != nil {
		onConfirmed(created.ID)
	}
	return created, nil
}

// Discard ends the flow without submitting; the draft is destroyed.
func (f *Flow) Discard() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateConfirmed || f.state == StateSubmitting {
		return
	}
	f.state = StateDiscarded
	f.draft = nil
	f.fieldErrs = nil
}

func (f *Flow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) Draft() *Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// FieldErrors returns the errors from the last failed attempt, client- or
// backend-sourced.
func (f *Flow) FieldErrors() []httpapi.FieldError {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrs
}
