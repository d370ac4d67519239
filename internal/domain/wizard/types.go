package wizard

type StepID string

const (
	StepWelcome      StepID = "welcome"
	StepPersonalInfo StepID = "personal_info"
	StepCompanions   StepID = "companions"
	StepSuccess      StepID = "success"
)

func (s StepID) String() string {
	return string(s)
}

type Direction string

const (
	DirectionNone     Direction = "none"
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

type StepStatus string

const (
	StatusCompleted StepStatus = "completed"
	StatusCurrent   StepStatus = "current"
	StatusUpcoming  StepStatus = "upcoming"
)

// Step declares up front what the step needs from the flow, so nothing has to
// inspect step identities at runtime.
type Step struct {
	ID                   StepID
	NeedsSubmissionState bool
}

type StepProgress struct {
	Step   Step
	Status StepStatus
}

// RegistrationSteps is the fixed step list of the guest registration form.
func RegistrationSteps() []Step {
	return []Step{
		{ID: StepWelcome},
		{ID: StepPersonalInfo},
		{ID: StepCompanions},
		{ID: StepSuccess, NeedsSubmissionState: true},
	}
}
