package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"guestlink/internal/domain/registration"
	"guestlink/internal/pkg/errs"
	"guestlink/internal/pkg/latch"
	"guestlink/internal/usecase/metrics"
)

const (
	MsgSubmitSuccess = "registration submitted successfully"
	MsgUnknownError  = "unknown error"
)

const (
	submissionSuccess      = "success"
	submissionInvalidForm  = "invalid_form"
	submissionBackendError = "backend_error"
)

// SubmissionState is what the presentation layer sees of the pipeline.
type SubmissionState struct {
	IsSubmitting       bool
	HasAttemptedSubmit bool
	SubmitError        *string
	Succeeded          bool
	Notice             string
}

// SubmissionPipeline submits one flow's form data at most once. The attempt latch
// is never reset: after any attempt, successful or not, the pipeline stays closed.
type SubmissionPipeline struct {
	backend RegistrationBackend
	token   string
	metrics *metrics.Metrics

	attempted latch.Latch

	mu    sync.RWMutex
	state SubmissionState
}

func NewSubmissionPipeline(backend RegistrationBackend, token string, m *metrics.Metrics) *SubmissionPipeline {
	return &SubmissionPipeline{
		backend: backend,
		token:   token,
		metrics: m,
	}
}

// Trigger starts the submission if isLast holds and no attempt was made before.
// It reports whether this call made the attempt.
func (p *SubmissionPipeline) Trigger(ctx context.Context, isLast bool, data registration.FormData) bool {
	if !isLast {
		return false
	}

	p.mu.Lock()
	if !p.attempted.TryFire() {
		p.mu.Unlock()
		return false
	}
	p.state.IsSubmitting = true
	p.state.SubmitError = nil
	p.mu.Unlock()

	failure := p.submit(ctx, data)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.IsSubmitting = false
	if failure != "" {
		p.state.SubmitError = &failure
		return true
	}
	p.state.SubmitError = nil
	p.state.Succeeded = true
	p.state.Notice = MsgSubmitSuccess
	return true
}

// submit returns the guest-facing failure message, or "" on success.
func (p *SubmissionPipeline) submit(ctx context.Context, data registration.FormData) string {
	if missing := data.MissingRequiredFields(); len(missing) > 0 {
		p.metrics.IncrementSubmission(submissionInvalidForm)
		slog.Info("registration form is incomplete", "missing", missing)
		return registration.MissingFieldsMessage(missing)
	}

	payload := data.Sanitize()

	started := time.Now()
	err := p.backend.CreateRegistration(context.WithoutCancel(ctx), p.token, payload)
	p.metrics.ObserveSubmitLatency(time.Since(started))

	if err != nil {
		p.metrics.IncrementSubmission(submissionBackendError)
		slog.Error("registration submission failed", "error", err.Error())
		if msg, ok := errs.UserMessage(err); ok {
			return msg
		}
		return MsgUnknownError
	}

	p.metrics.IncrementSubmission(submissionSuccess)
	slog.Info("registration submitted", "companions", len(payload.Companions))
	return ""
}

func (p *SubmissionPipeline) State() SubmissionState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s := p.state
	s.HasAttemptedSubmit = p.attempted.Fired()
	if p.state.SubmitError != nil {
		msg := *p.state.SubmitError
		s.SubmitError = &msg
	}
	return s
}
