package usecase

import (
	"context"
	"sync"
	"time"

	"guestlink/internal/domain/link"
	"guestlink/internal/domain/registration"
	"guestlink/internal/domain/wizard"
	"guestlink/internal/usecase/metrics"

	"github.com/google/uuid"
)

// Flow is one run of validate → wizard → submit for a single link.
type Flow struct {
	id        uuid.UUID
	link      *link.RegistrationLink
	createdAt time.Time
	pipeline  *SubmissionPipeline

	mu         sync.Mutex
	wizard     *wizard.Wizard
	form       registration.FormData
	submitting bool
}

// NewFlow builds a flow from an eligible outcome. The wizard starts at the first step
// and the form is seeded with the reservation facts of the link.
func NewFlow(id uuid.UUID, outcome Outcome, backend RegistrationBackend, m *metrics.Metrics, now time.Time) *Flow {
	steps := wizard.RegistrationSteps()
	return &Flow{
		id:        id,
		link:      outcome.Link,
		createdAt: now,
		pipeline:  NewSubmissionPipeline(backend, outcome.Token, m),
		wizard:    wizard.New(steps, steps[0].ID),
		form:      registration.NewFormData(outcome.Link),
	}
}

func (f *Flow) ID() uuid.UUID { return f.id }

func (f *Flow) Next(ctx context.Context) *FlowView {
	return f.navigate(ctx, func(w *wizard.Wizard) { w.GoNext() })
}

func (f *Flow) Back(ctx context.Context) *FlowView {
	return f.navigate(ctx, func(w *wizard.Wizard) { w.GoBack() })
}

func (f *Flow) GoTo(ctx context.Context, step wizard.StepID) *FlowView {
	return f.navigate(ctx, func(w *wizard.Wizard) { w.GoToStep(step) })
}

// navigate moves the wizard and hands the last-step signal to the pipeline.
// The backend call happens outside the flow lock; while it runs, navigation and
// updates leave the flow untouched and return the current view.
func (f *Flow) navigate(ctx context.Context, move func(*wizard.Wizard)) *FlowView {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return f.View()
	}
	move(f.wizard)
	isLast := f.wizard.IsLast()
	data := f.form.Clone()
	f.submitting = isLast
	f.mu.Unlock()

	f.pipeline.Trigger(ctx, isLast, data)

	if isLast {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}
	return f.View()
}

func (f *Flow) UpdateGuest(g registration.Guest) *FlowView {
	f.mu.Lock()
	if !f.submitting {
		f.form = f.form.WithGuest(g)
	}
	f.mu.Unlock()
	return f.View()
}

func (f *Flow) UpdateCompanions(companions []registration.Guest) *FlowView {
	f.mu.Lock()
	if !f.submitting {
		f.form = f.form.WithCompanions(companions)
	}
	f.mu.Unlock()
	return f.View()
}

func (f *Flow) Submission() SubmissionState {
	return f.pipeline.State()
}

func (f *Flow) View() *FlowView {
	f.mu.Lock()
	defer f.mu.Unlock()

	current := f.wizard.Current()
	v := &FlowView{
		ID:           f.id,
		Link:         newLinkSummary(f.link),
		Steps:        f.wizard.Progress(),
		Current:      current,
		CurrentIndex: f.wizard.CurrentIndex(),
		Direction:    f.wizard.Direction(),
		IsFirst:      f.wizard.IsFirst(),
		IsLast:       f.wizard.IsLast(),
		Form:         f.form.Clone(),
		CreatedAt:    f.createdAt,
	}
	if current.NeedsSubmissionState {
		s := f.pipeline.State()
		v.Submission = &s
	}
	return v
}
