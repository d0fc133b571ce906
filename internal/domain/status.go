package domain

import "time"

// ClientStatus is the single authoritative coaching state for a client.
// Exactly one value is assigned per evaluation.
type ClientStatus string

const (
	StatusNone           ClientStatus = "no_status"
	StatusWaitingOffer   ClientStatus = "waiting_offer"
	StatusMissingProgram ClientStatus = "missing_program"
	StatusOnTrack        ClientStatus = "on_track"
	StatusOffTrack       ClientStatus = "off_track"
	StatusSoonToExpire   ClientStatus = "soon_to_expire"
	StatusProgramActive  ClientStatus = "program_active"
)

func (s ClientStatus) Label() string {
	switch s {
	case StatusNone:
		return "Awaiting acceptance"
	case StatusWaitingOffer:
		return "Waiting on offer"
	case StatusMissingProgram:
		return "Missing program"
	case StatusOnTrack:
		return "On track"
	case StatusOffTrack:
		return "Off track"
	case StatusSoonToExpire:
		return "Plan expiring"
	case StatusProgramActive:
		return "Program active"
	default:
		return string(s)
	}
}

const (
	// planPeriod is the fixed period used for expiry-percentage math,
	// regardless of the client's actual plan length.
	planPeriod = 30 * 24 * time.Hour

	// offTrackAfterDays is the number of fully missed days tolerated before
	// a client counts as off track. Exactly this many missed days is still
	// on track.
	offTrackAfterDays = 5

	// expiryWarningFraction is the remaining fraction of planPeriod at or
	// below which a plan counts as soon to expire.
	expiryWarningFraction = 5 // one fifth, i.e. 20%
)

// Classify maps a signal bundle to its one authoritative status. The rule
// order is load-bearing: relationship states (pending request, open offer,
// missing program) win over activity states, and the expiry overlay only
// ever replaces an activity state.
func Classify(signals ClientSignals, now time.Time) ClientStatus {
	switch {
	case signals.PendingRequest:
		return StatusNone
	case signals.PendingOffer:
		return StatusWaitingOffer
	case signals.AcceptedOffer && !signals.HasPreparedProgram():
		return StatusMissingProgram
	}

	if PlanExpiringSoon(signals.Client.PlanExpiry, now) {
		return StatusSoonToExpire
	}

	return activityStatus(signals, now)
}

func activityStatus(signals ClientSignals, now time.Time) ClientStatus {
	latest, ok := signals.LatestActivity()
	if !ok {
		// Has a program but no activity signal yet.
		return StatusProgramActive
	}

	if MissedDays(latest, now) > offTrackAfterDays {
		return StatusOffTrack
	}

	return StatusOnTrack
}

// MissedDays counts whole days elapsed since the last activity entry,
// floor division.
func MissedDays(lastActivity, now time.Time) int {
	return int(now.Sub(lastActivity) / (24 * time.Hour))
}

// PlanExpiringSoon reports whether the remaining plan time is within
// (0%, 20%] of the fixed 30-day period. A plan at exactly 0% or already
// past its expiry is not "soon to expire"; it is expired and outside this
// engine's scope.
func PlanExpiringSoon(expiry *time.Time, now time.Time) bool {
	if expiry == nil {
		return false
	}

	remaining := expiry.Sub(now)

	return remaining > 0 && remaining <= planPeriod/expiryWarningFraction
}

// PlanPercentRemaining returns the remaining fraction of the fixed 30-day
// period as a percentage. Display helper only; classification compares
// durations to keep the 20% boundary exact.
func PlanPercentRemaining(expiry time.Time, now time.Time) float64 {
	return float64(expiry.Sub(now)) / float64(planPeriod) * 100
}
