package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/coachdesk/internal/domain"
	"github.com/bnema/coachdesk/internal/ports"
)

// activityWindow bounds how far back activity entries are read.
const activityWindow = 30 * 24 * time.Hour

// SignalFetcher gathers one client's raw signal bundle from the upstream
// read sources. It knows nothing about classification rules; it only
// performs the minimum set of reads needed to classify one client.
type SignalFetcher struct {
	relationships ports.RelationshipSource
	training      ports.TrainingSource
	engagement    ports.EngagementSource
}

func NewSignalFetcher(relationships ports.RelationshipSource, training ports.TrainingSource, engagement ports.EngagementSource) *SignalFetcher {
	return &SignalFetcher{
		relationships: relationships,
		training:      training,
		engagement:    engagement,
	}
}

// Fetch returns the signal bundle for one client. Missing optional records
// (no check-in ever, no message ever) come back as nil fields; an error
// means a data-source failure, never "no data found".
func (f *SignalFetcher) Fetch(ctx context.Context, coachID domain.CoachID, client domain.Client, now time.Time) (domain.ClientSignals, error) {
	pendingRequest, err := f.relationships.HasPendingRequest(ctx, coachID, client.ID)
	if err != nil {
		return domain.ClientSignals{}, fmt.Errorf("fetch pending request: %w", err)
	}

	offer, err := f.relationships.OpenOffer(ctx, coachID, client.ID)
	if err != nil {
		return domain.ClientSignals{}, fmt.Errorf("fetch open offer: %w", err)
	}

	programs, err := f.training.AssignedPrograms(ctx, coachID, client.ID)
	if err != nil {
		return domain.ClientSignals{}, fmt.Errorf("fetch assigned programs: %w", err)
	}

	activity, err := f.training.RecentActivity(ctx, client.ID, now.Add(-activityWindow))
	if err != nil {
		return domain.ClientSignals{}, fmt.Errorf("fetch recent activity: %w", err)
	}

	checkin, err := f.engagement.LatestCheckin(ctx, coachID, client.ID)
	if err != nil {
		return domain.ClientSignals{}, fmt.Errorf("fetch latest check-in: %w", err)
	}

	message, err := f.engagement.LatestMessage(ctx, coachID, client.ID)
	if err != nil {
		return domain.ClientSignals{}, fmt.Errorf("fetch latest message: %w", err)
	}

	return domain.ClientSignals{
		Client:           client,
		PendingRequest:   pendingRequest,
		PendingOffer:     offer == domain.OfferPending,
		AcceptedOffer:    offer == domain.OfferAccepted,
		AssignedPrograms: programs,
		RecentActivity:   activity,
		LastCheckin:      checkin,
		LastMessage:      message,
	}, nil
}
