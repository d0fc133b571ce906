package ports

import (
	"context"

	"github.com/bnema/coachdesk/internal/domain"
)

// ClientRoster resolves a coach to the clients they manage.
// ListClients returns domain.ErrCoachNotFound for an unknown coach; an empty
// roster is a valid result, not an error.
type ClientRoster interface {
	ListClients(ctx context.Context, coachID domain.CoachID) ([]domain.Client, error)
}
