package link

type Role string

// RoleRegistration is the only role a link token may carry to open the guest form.
const RoleRegistration Role = "registration"

func (r Role) String() string {
	return string(r)
}

// Reason classifies why a link can or cannot be used.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonInvalidToken     Reason = "invalid_token"
	ReasonValidationFailed Reason = "validation_failed"
	ReasonInsufficientRole Reason = "insufficient_role"
	ReasonFetchFailed      Reason = "fetch_failed"
	ReasonExpired          Reason = "expired"
	ReasonCompleted        Reason = "completed"
	ReasonMissingData      Reason = "missing_data"
)

// Guest-facing messages.
const (
	MsgInvalidLink         = "invalid"
	MsgValidationError     = "error validating the link"
	MsgFetchError          = "error fetching the link"
	MsgInsufficientRole    = "insufficient permissions"
	MsgLinkExpired         = "link has expired"
	MsgAlreadyCompleted    = "form was already completed"
	MsgMissingRequiredData = "form is missing required data"
)

func (r Reason) String() string {
	if r == ReasonNone {
		return "eligible"
	}
	return string(r)
}

// Message returns the default guest-facing text for r.
func (r Reason) Message() string {
	switch r {
	case ReasonInvalidToken:
		return MsgInvalidLink
	case ReasonValidationFailed:
		return MsgValidationError
	case ReasonInsufficientRole:
		return MsgInsufficientRole
	case ReasonFetchFailed:
		return MsgFetchError
	case ReasonExpired:
		return MsgLinkExpired
	case ReasonCompleted:
		return MsgAlreadyCompleted
	case ReasonMissingData:
		return MsgMissingRequiredData
	default:
		return ""
	}
}
