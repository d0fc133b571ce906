package domain

import "time"

// recentWindow is the age cutoff shared by all badge tests.
const recentWindow = 24 * time.Hour

// Badges are independent booleans layered on top of a client's status.
// They are not mutually exclusive and may coexist with any status.
type Badges struct {
	NewMessage      bool
	AwaitingCheckin bool
	NewFeedback     bool
}

// ComputeBadges evaluates each badge's time-window test independently of
// classification.
func ComputeBadges(signals ClientSignals, now time.Time) Badges {
	return Badges{
		NewMessage:      hasNewMessage(signals.LastMessage, now),
		AwaitingCheckin: isAwaitingCheckin(signals.LastCheckin, now),
		NewFeedback:     hasNewFeedback(signals.LastCheckin, now),
	}
}

func hasNewMessage(message *Message, now time.Time) bool {
	if message == nil || message.SenderIsCoach {
		return false
	}

	return now.Sub(message.CreatedAt) < recentWindow
}

// A check-in younger than 24h is not yet "awaiting": the client gets a full
// day to respond before the coach is nudged.
func isAwaitingCheckin(checkin *Checkin, now time.Time) bool {
	if checkin == nil || checkin.Status != CheckinOpen {
		return false
	}

	return now.Sub(checkin.CreatedAt) >= recentWindow
}

func hasNewFeedback(checkin *Checkin, now time.Time) bool {
	if checkin == nil || checkin.Status != CheckinCompleted {
		return false
	}

	return now.Sub(checkin.CreatedAt) < recentWindow
}
