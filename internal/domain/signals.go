package domain

import "time"

type OfferState string

const (
	OfferNone     OfferState = ""
	OfferPending  OfferState = "pending"
	OfferAccepted OfferState = "accepted"
)

type CheckinStatus string

const (
	CheckinOpen      CheckinStatus = "open"
	CheckinCompleted CheckinStatus = "completed"
)

type Checkin struct {
	Status    CheckinStatus
	CreatedAt time.Time
}

type Message struct {
	SenderIsCoach bool
	CreatedAt     time.Time
}

// ClientSignals is the raw per-client fact bundle one evaluation works from.
// It is fetched fresh per invocation and never persisted; absence of an
// optional record is modelled as a nil pointer, not an error.
type ClientSignals struct {
	Client           Client
	PendingRequest   bool
	PendingOffer     bool
	AcceptedOffer    bool
	AssignedPrograms []ProgramSummary
	RecentActivity   []time.Time
	LastCheckin      *Checkin
	LastMessage      *Message
}

// HasPreparedProgram reports whether any assigned program is active or
// scheduled. Completed programs do not count.
func (s ClientSignals) HasPreparedProgram() bool {
	for _, program := range s.AssignedPrograms {
		if program.Status == ProgramActive || program.Status == ProgramScheduled {
			return true
		}
	}

	return false
}

// LatestActivity returns the most recent logged activity timestamp, if any.
func (s ClientSignals) LatestActivity() (time.Time, bool) {
	if len(s.RecentActivity) == 0 {
		return time.Time{}, false
	}

	latest := s.RecentActivity[0]
	for _, ts := range s.RecentActivity[1:] {
		if ts.After(latest) {
			latest = ts
		}
	}

	return latest, true
}
