package application

import (
	"time"

	"github.com/bnema/coachdesk/internal/domain"
)

// ClientStatusRecord is one row of the coach dashboard: the client, their
// derived status, the badge overlay, and the program/activity context the
// UI renders next to it.
type ClientStatusRecord struct {
	Client       domain.Client
	Status       domain.ClientStatus
	Badges       domain.Badges
	Programs     []domain.ProgramSummary
	LastActivity *time.Time
}
