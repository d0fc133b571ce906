package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	dashboardadapter "github.com/bnema/coachdesk/internal/adapters/render/dashboard"
	tomlrepo "github.com/bnema/coachdesk/internal/adapters/repo/toml"
	"github.com/bnema/coachdesk/internal/application"
	"github.com/bnema/coachdesk/internal/domain"
	"github.com/bnema/coachdesk/internal/logging"
	"github.com/bnema/coachdesk/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	service          *application.Service
	statusesRenderer func([]application.ClientStatusRecord, dashboardadapter.RenderOptions) (string, error)
	tasksRenderer    func([]domain.Task, dashboardadapter.RenderOptions) (string, error)
	now              func() time.Time
}

func wireApp() (*app, error) {
	repo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire records repository: %w", err)
	}

	logger := logging.New(os.Stderr, envOrDefault("COACHDESK_LOG_LEVEL", logging.LevelInfo))
	fetcher := application.NewSignalFetcher(repo, repo, repo)

	concurrency, err := fetchConcurrency()
	if err != nil {
		return nil, err
	}

	return &app{
		service:          application.NewService(repo, fetcher, ports.SystemClock{}, logger, concurrency),
		statusesRenderer: dashboardadapter.RenderStatuses,
		tasksRenderer:    dashboardadapter.RenderTasks,
		now:              time.Now,
	}, nil
}

func fetchConcurrency() (int, error) {
	raw := os.Getenv("COACHDESK_FETCH_CONCURRENCY")
	if raw == "" {
		return application.DefaultFetchConcurrency, nil
	}

	concurrency, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse COACHDESK_FETCH_CONCURRENCY: %w", err)
	}

	return concurrency, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
