package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/coachdesk/internal/domain"
	"github.com/bnema/coachdesk/internal/ports"
)

// DefaultFetchConcurrency caps in-flight per-client fetches so a large
// roster does not overwhelm the upstream data source.
const DefaultFetchConcurrency = 8

// Service is the aggregation orchestrator: it fans signal fetches out
// across a coach's roster and feeds the results through the pure
// classification, badge, and prioritization functions. It is read-only
// with respect to every data source it consults.
type Service struct {
	roster      ports.ClientRoster
	fetcher     *SignalFetcher
	clock       ports.Clock
	logger      *slog.Logger
	concurrency int
}

// NewService wires the orchestrator. A concurrency of 0 selects
// DefaultFetchConcurrency; a nil clock selects the system clock; a nil
// logger discards the partial-failure side channel.
func NewService(roster ports.ClientRoster, fetcher *SignalFetcher, clock ports.Clock, logger *slog.Logger, concurrency int) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if concurrency <= 0 {
		concurrency = DefaultFetchConcurrency
	}

	return &Service{
		roster:      roster,
		fetcher:     fetcher,
		clock:       clock,
		logger:      logger,
		concurrency: concurrency,
	}
}

// GetClientStatuses evaluates every client of the coach and returns one
// status record per client, in roster order. Clients whose signals could
// not be fetched are excluded and logged rather than failing the call.
func (s *Service) GetClientStatuses(ctx context.Context, coachID domain.CoachID) ([]ClientStatusRecord, error) {
	now := s.clock.Now()

	bundles, err := s.collectSignals(ctx, coachID, now)
	if err != nil {
		return nil, err
	}

	records := make([]ClientStatusRecord, 0, len(bundles))
	for _, signals := range bundles {
		record := ClientStatusRecord{
			Client:   signals.Client,
			Status:   domain.Classify(signals, now),
			Badges:   domain.ComputeBadges(signals, now),
			Programs: signals.AssignedPrograms,
		}
		if latest, ok := signals.LatestActivity(); ok {
			record.LastActivity = &latest
		}
		records = append(records, record)
	}

	return records, nil
}

// GetCoachTasks evaluates every client of the coach and returns the single
// globally ranked task queue, already sorted and capped.
func (s *Service) GetCoachTasks(ctx context.Context, coachID domain.CoachID) ([]domain.Task, error) {
	now := s.clock.Now()

	bundles, err := s.collectSignals(ctx, coachID, now)
	if err != nil {
		return nil, err
	}

	return domain.BuildTasks(bundles, now), nil
}

type fetchResult struct {
	signals domain.ClientSignals
	err     error
}

// collectSignals fans one fetch per roster client out through the bounded
// semaphore and buffers every result before returning, indexed by roster
// position so the output order never depends on completion order.
func (s *Service) collectSignals(ctx context.Context, coachID domain.CoachID, now time.Time) ([]domain.ClientSignals, error) {
	clients, err := s.roster.ListClients(ctx, coachID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	if len(clients) == 0 {
		return nil, nil
	}

	results := make([]fetchResult, len(clients))
	sem := newSemaphore(s.concurrency)

	var wg sync.WaitGroup
	for i, client := range clients {
		wg.Add(1)
		go func(i int, client domain.Client) {
			defer wg.Done()

			if err := sem.Acquire(ctx); err != nil {
				results[i].err = err
				return
			}
			defer sem.Release()

			signals, err := s.fetcher.Fetch(ctx, coachID, client, now)
			results[i] = fetchResult{signals: signals, err: err}
		}(i, client)
	}
	wg.Wait()

	// Cancellation fails the whole operation; no partial result escapes.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bundles := make([]domain.ClientSignals, 0, len(clients))
	failed := 0
	for i, result := range results {
		if result.err != nil {
			failed++
			s.logger.Warn("client signals unavailable",
				"coach_id", coachID,
				"client_id", clients[i].ID,
				"error", result.err,
			)
			continue
		}
		bundles = append(bundles, result.signals)
	}

	if failed == len(clients) {
		return nil, fmt.Errorf("%w: %d of %d clients failed", domain.ErrAllSourcesUnavailable, failed, len(clients))
	}

	return bundles, nil
}
