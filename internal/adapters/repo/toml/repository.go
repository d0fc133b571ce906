// Package toml reads coaching records (roster, requests, offers, programs,
// activity entries, check-ins, messages) from a single TOML file and serves
// them through the engine's read ports. It stands in for the external
// system of record; the engine itself never writes here.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bnema/coachdesk/internal/domain"
	"github.com/bnema/coachdesk/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName        = "config"
	configType        = "toml"
	recordsPathKey    = "records.path"
	recordsConfigDir  = ".coachdesk"
	recordsConfigFile = "records.toml"
)

type Repository struct {
	recordsPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var (
	_ ports.ClientRoster       = (*Repository)(nil)
	_ ports.RelationshipSource = (*Repository)(nil)
	_ ports.TrainingSource     = (*Repository)(nil)
	_ ports.EngagementSource   = (*Repository)(nil)
)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, recordsConfigDir, recordsConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, recordsConfigDir))
	cfg.SetDefault(recordsPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	recordsPath := cfg.GetString(recordsPathKey)
	if recordsPath == "" {
		return nil, errors.New("records path is empty")
	}
	recordsPath, err = normalizeRecordsPath(recordsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{recordsPath: recordsPath, mu: lockForPath(recordsPath)}, nil
}

func (r *Repository) ListClients(ctx context.Context, coachID domain.CoachID) ([]domain.Client, error) {
	file, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	known := false
	for _, coach := range file.Coaches {
		if coach.ID == string(coachID) {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: %s", domain.ErrCoachNotFound, coachID)
	}

	clients := make([]domain.Client, 0)
	for _, entry := range file.Clients {
		if entry.CoachID != string(coachID) {
			continue
		}
		clients = append(clients, domain.Client{
			ID:         domain.ClientID(entry.ID),
			FullName:   entry.FullName,
			Email:      entry.Email,
			PlanTier:   entry.PlanTier,
			AvatarURL:  entry.AvatarURL,
			PlanExpiry: entry.PlanExpires,
		})
	}

	return clients, nil
}

func (r *Repository) HasPendingRequest(ctx context.Context, coachID domain.CoachID, clientID domain.ClientID) (bool, error) {
	file, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	for _, request := range file.Requests {
		if request.CoachID == string(coachID) && request.CustomerID == string(clientID) && request.Status == "pending" {
			return true, nil
		}
	}

	return false, nil
}

func (r *Repository) OpenOffer(ctx context.Context, coachID domain.CoachID, clientID domain.ClientID) (domain.OfferState, error) {
	file, err := r.load(ctx)
	if err != nil {
		return domain.OfferNone, err
	}

	for _, offer := range file.Offers {
		if offer.CoachID != string(coachID) || offer.CustomerID != string(clientID) {
			continue
		}
		switch offer.Status {
		case "pending":
			return domain.OfferPending, nil
		case "accepted":
			return domain.OfferAccepted, nil
		}
	}

	return domain.OfferNone, nil
}

func (r *Repository) AssignedPrograms(ctx context.Context, coachID domain.CoachID, clientID domain.ClientID) ([]domain.ProgramSummary, error) {
	file, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	programs := make([]domain.ProgramSummary, 0)
	for _, program := range file.Programs {
		if program.CoachID != string(coachID) || program.AssignedTo != string(clientID) {
			continue
		}
		programs = append(programs, domain.ProgramSummary{
			ID:     program.ID,
			Status: domain.ProgramStatus(program.Status),
		})
	}

	return programs, nil
}

func (r *Repository) RecentActivity(ctx context.Context, clientID domain.ClientID, since time.Time) ([]time.Time, error) {
	file, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	timestamps := make([]time.Time, 0)
	for _, entry := range file.Entries {
		if entry.UserID != string(clientID) || entry.CreatedAt.Before(since) {
			continue
		}
		timestamps = append(timestamps, entry.CreatedAt)
	}

	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })

	return timestamps, nil
}

func (r *Repository) LatestCheckin(ctx context.Context, coachID domain.CoachID, clientID domain.ClientID) (*domain.Checkin, error) {
	file, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var latest *domain.Checkin
	for _, checkin := range file.Checkins {
		if checkin.CoachID != string(coachID) || checkin.CustomerID != string(clientID) {
			continue
		}
		if latest == nil || checkin.CreatedAt.After(latest.CreatedAt) {
			latest = &domain.Checkin{
				Status:    domain.CheckinStatus(checkin.Status),
				CreatedAt: checkin.CreatedAt,
			}
		}
	}

	return latest, nil
}

func (r *Repository) LatestMessage(ctx context.Context, coachID domain.CoachID, clientID domain.ClientID) (*domain.Message, error) {
	file, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var latest *domain.Message
	var latestAt time.Time
	for _, message := range file.Messages {
		if message.CoachID != string(coachID) || message.CustomerID != string(clientID) {
			continue
		}
		if latest == nil || message.CreatedAt.After(latestAt) {
			latestAt = message.CreatedAt
			latest = &domain.Message{
				SenderIsCoach: message.SenderID == string(coachID),
				CreatedAt:     message.CreatedAt,
			}
		}
	}

	return latest, nil
}

func (r *Repository) load(ctx context.Context) (fileSchema, error) {
	if err := ctx.Err(); err != nil {
		return fileSchema{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.readSchema()
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.recordsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read records file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode records file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeRecordsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve records path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
