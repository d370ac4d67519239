package usecase

import (
	"context"
	"log/slog"

	"guestlink/internal/domain/link"
	"guestlink/internal/domain/registration"
	"guestlink/internal/domain/wizard"
	"guestlink/internal/pkg/clock"
	"guestlink/internal/pkg/errs"
	"guestlink/internal/usecase/metrics"

	"github.com/google/uuid"
)

var ErrFlowNotFound = errs.New("registration flow not found")

// IneligibleError is returned by Start when the link cannot be used.
type IneligibleError struct {
	Reason  link.Reason
	Message string
}

func (e *IneligibleError) Error() string {
	return "link not eligible: " + e.Reason.String() + ": " + e.Message
}

type RegistrationFlows interface {
	Start(ctx context.Context, token string) (*FlowView, error)
	Get(ctx context.Context, flowID uuid.UUID) (*FlowView, error)
	Next(ctx context.Context, flowID uuid.UUID) (*FlowView, error)
	Back(ctx context.Context, flowID uuid.UUID) (*FlowView, error)
	GoTo(ctx context.Context, flowID uuid.UUID, step wizard.StepID) (*FlowView, error)
	UpdateGuest(ctx context.Context, flowID uuid.UUID, guest registration.Guest) (*FlowView, error)
	UpdateCompanions(ctx context.Context, flowID uuid.UUID, companions []registration.Guest) (*FlowView, error)
}

type registrationFlowsImpl struct {
	validator LinkValidator
	backend   RegistrationBackend
	store     *FlowStore
	clock     clock.Clock
	metrics   *metrics.Metrics
}

func NewRegistrationFlows(
	validator LinkValidator,
	backend RegistrationBackend,
	store *FlowStore,
	clk clock.Clock,
	m *metrics.Metrics,
) RegistrationFlows {
	return &registrationFlowsImpl{
		validator: validator,
		backend:   backend,
		store:     store,
		clock:     clk,
		metrics:   m,
	}
}

func (u *registrationFlowsImpl) Start(ctx context.Context, token string) (*FlowView, error) {
	outcome := u.validator.Validate(ctx, token)
	if !outcome.Eligible {
		return nil, &IneligibleError{Reason: outcome.Reason, Message: outcome.Message}
	}

	flow := NewFlow(uuid.New(), outcome, u.backend, u.metrics, u.clock.Now())
	u.store.Put(flow)

	slog.Info("registration flow started", "flow_id", flow.ID().String(), "link_id", outcome.Link.ID)
	return flow.View(), nil
}

func (u *registrationFlowsImpl) Get(_ context.Context, flowID uuid.UUID) (*FlowView, error) {
	flow, err := u.find(flowID)
	if err != nil {
		return nil, err
	}
	return flow.View(), nil
}

func (u *registrationFlowsImpl) Next(ctx context.Context, flowID uuid.UUID) (*FlowView, error) {
	flow, err := u.find(flowID)
	if err != nil {
		return nil, err
	}
	return flow.Next(ctx), nil
}

func (u *registrationFlowsImpl) Back(ctx context.Context, flowID uuid.UUID) (*FlowView, error) {
	flow, err := u.find(flowID)
	if err != nil {
		return nil, err
	}
	return flow.Back(ctx), nil
}

func (u *registrationFlowsImpl) GoTo(ctx context.Context, flowID uuid.UUID, step wizard.StepID) (*FlowView, error) {
	flow, err := u.find(flowID)
	if err != nil {
		return nil, err
	}
	return flow.GoTo(ctx, step), nil
}

func (u *registrationFlowsImpl) UpdateGuest(_ context.Context, flowID uuid.UUID, guest registration.Guest) (*FlowView, error) {
	flow, err := u.find(flowID)
	if err != nil {
		return nil, err
	}
	return flow.UpdateGuest(guest), nil
}

func (u *registrationFlowsImpl) UpdateCompanions(_ context.Context, flowID uuid.UUID, companions []registration.Guest) (*FlowView, error) {
	flow, err := u.find(flowID)
	if err != nil {
		return nil, err
	}
	return flow.UpdateCompanions(companions), nil
}

func (u *registrationFlowsImpl) find(flowID uuid.UUID) (*Flow, error) {
	flow, ok := u.store.Get(flowID)
	if !ok {
		return nil, ErrFlowNotFound
	}
	return flow, nil
}
