package ports

import (
	"context"
	"time"

	"github.com/bnema/coachdesk/internal/domain"
)

// The signal sources below are the engine's only view of the upstream
// system of record. Each method performs one narrow read; "no data" is a
// valid business state and never an error.

type RelationshipSource interface {
	HasPendingRequest(ctx context.Context, coachID domain.CoachID, clientID domain.ClientID) (bool, error)
	OpenOffer(ctx context.Context, coachID domain.CoachID, clientID domain.ClientID) (domain.OfferState, error)
}

type TrainingSource interface {
	AssignedPrograms(ctx context.Context, coachID domain.CoachID, clientID domain.ClientID) ([]domain.ProgramSummary, error)
	RecentActivity(ctx context.Context, clientID domain.ClientID, since time.Time) ([]time.Time, error)
}

type EngagementSource interface {
	LatestCheckin(ctx context.Context, coachID domain.CoachID, clientID domain.ClientID) (*domain.Checkin, error)
	LatestMessage(ctx context.Context, coachID domain.CoachID, clientID domain.ClientID) (*domain.Message, error)
}
