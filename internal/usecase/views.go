package usecase

import (
	"time"

	"guestlink/internal/domain/link"
	"guestlink/internal/domain/registration"
	"guestlink/internal/domain/wizard"

	"github.com/google/uuid"
)

// FlowView is a point-in-time snapshot of a flow for the presentation layer.
type FlowView struct {
	ID           uuid.UUID
	Link         LinkSummary
	Steps        []wizard.StepProgress
	Current      wizard.Step
	CurrentIndex int
	Direction    wizard.Direction
	IsFirst      bool
	IsLast       bool
	Form         registration.FormData
	// set only when the current step declares it needs submission state
	Submission *SubmissionState
	CreatedAt  time.Time
}

type LinkSummary struct {
	RoomNumber int
	StartDate  time.Time
	EndDate    time.Time
	Cost       int64
	ExpiresAt  time.Time
}

func newLinkSummary(l *link.RegistrationLink) LinkSummary {
	return LinkSummary{
		RoomNumber: l.RoomNumber,
		StartDate:  l.StartDate,
		EndDate:    l.EndDate,
		Cost:       l.Cost,
		ExpiresAt:  l.ExpiresAt,
	}
}
