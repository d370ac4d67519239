package response

import (
	"time"

	"guestlink/internal/domain/registration"
	"guestlink/internal/usecase"

	"github.com/google/uuid"
)

type FlowResponse struct {
	ID           uuid.UUID             `json:"id"`
	Link         LinkSummaryResponse   `json:"link"`
	Steps        []StepResponse        `json:"steps"`
	CurrentStep  string                `json:"currentStep"`
	CurrentIndex int                   `json:"currentIndex"`
	Direction    string                `json:"direction"`
	IsFirst      bool                  `json:"isFirst"`
	IsLast       bool                  `json:"isLast"`
	Form         registration.FormData `json:"form"`
	Submission   *SubmissionResponse   `json:"submission,omitempty"`
}

type LinkSummaryResponse struct {
	RoomNumber int       `json:"roomNumber"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Cost       int64     `json:"cost"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

type StepResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SubmissionResponse struct {
	IsSubmitting       bool    `json:"isSubmitting"`
	HasAttemptedSubmit bool    `json:"hasAttemptedSubmit"`
	SubmitError        *string `json:"submitError"`
	Succeeded          bool    `json:"succeeded"`
	Notice             string  `json:"notice,omitempty"`
}

func FromFlowView(v *usecase.FlowView) *FlowResponse {
	steps := make([]StepResponse, len(v.Steps))
	for i, s := range v.Steps {
		steps[i] = StepResponse{ID: s.Step.ID.String(), Status: string(s.Status)}
	}

	resp := &FlowResponse{
		ID: v.ID,
		Link: LinkSummaryResponse{
			RoomNumber: v.Link.RoomNumber,
			StartDate:  v.Link.StartDate.Format(time.DateOnly),
			EndDate:    v.Link.EndDate.Format(time.DateOnly),
			Cost:       v.Link.Cost,
			ExpiresAt:  v.Link.ExpiresAt,
		},
		Steps:        steps,
		CurrentStep:  v.Current.ID.String(),
		CurrentIndex: v.CurrentIndex,
		Direction:    string(v.Direction),
		IsFirst:      v.IsFirst,
		IsLast:       v.IsLast,
		Form:         v.Form,
	}

	if v.Submission != nil {
		resp.Submission = &SubmissionResponse{
			IsSubmitting:       v.Submission.IsSubmitting,
			HasAttemptedSubmit: v.Submission.HasAttemptedSubmit,
			SubmitError:        v.Submission.SubmitError,
			Succeeded:          v.Submission.Succeeded,
			Notice:             v.Submission.Notice,
		}
	}
	return resp
}
