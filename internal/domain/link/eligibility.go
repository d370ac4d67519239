package link

import "time"

func IsExpired(l *RegistrationLink, now time.Time) bool {
	return now.After(l.ExpiresAt)
}

func IsCompleted(l *RegistrationLink, _ time.Time) bool {
	return l.Completed
}

func IsMissingRequiredData(l *RegistrationLink, _ time.Time) bool {
	return l.RoomNumber == 0 ||
		l.StartDate.IsZero() ||
		l.EndDate.IsZero() ||
		l.Cost == 0 ||
		l.URL == ""
}

type rule struct {
	violated func(*RegistrationLink, time.Time) bool
	reason   Reason
}

// evaluated in order; the first violated rule wins
var eligibilityRules = []rule{
	{violated: IsExpired, reason: ReasonExpired},
	{violated: IsCompleted, reason: ReasonCompleted},
	{violated: IsMissingRequiredData, reason: ReasonMissingData},
}

// CheckEligibility returns ReasonNone when the link can be used at now.
func CheckEligibility(l *RegistrationLink, now time.Time) Reason {
	for _, r := range eligibilityRules {
		if r.violated(l, now) {
			return r.reason
		}
	}
	return ReasonNone
}
