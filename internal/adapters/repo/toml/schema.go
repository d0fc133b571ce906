package toml

import (
	"fmt"
	"time"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Coaches  []coachSchema   `toml:"coaches"`
	Clients  []clientSchema  `toml:"clients"`
	Requests []requestSchema `toml:"requests"`
	Offers   []offerSchema   `toml:"offers"`
	Programs []programSchema `toml:"programs"`
	Entries  []entrySchema   `toml:"entries"`
	Checkins []checkinSchema `toml:"checkins"`
	Messages []messageSchema `toml:"messages"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported records schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type coachSchema struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

type clientSchema struct {
	ID          string     `toml:"id"`
	CoachID     string     `toml:"coach_id"`
	FullName    string     `toml:"full_name"`
	Email       string     `toml:"email"`
	PlanTier    string     `toml:"plan_tier,omitempty"`
	AvatarURL   string     `toml:"avatar_url,omitempty"`
	PlanExpires *time.Time `toml:"plan_expires_at,omitempty"`
}

type requestSchema struct {
	CustomerID string `toml:"customer_id"`
	CoachID    string `toml:"coach_id"`
	Status     string `toml:"status"`
}

type offerSchema struct {
	CustomerID string `toml:"customer_id"`
	CoachID    string `toml:"coach_id"`
	Status     string `toml:"status"`
}

type programSchema struct {
	ID         string `toml:"id"`
	CoachID    string `toml:"coach_id"`
	AssignedTo string `toml:"assigned_to"`
	Status     string `toml:"status"`
}

type entrySchema struct {
	UserID    string    `toml:"user_id"`
	CreatedAt time.Time `toml:"created_at"`
}

type checkinSchema struct {
	CustomerID string    `toml:"customer_id"`
	CoachID    string    `toml:"coach_id"`
	Status     string    `toml:"status"`
	CreatedAt  time.Time `toml:"created_at"`
}

type messageSchema struct {
	ConversationID string    `toml:"conversation_id"`
	CoachID        string    `toml:"coach_id"`
	CustomerID     string    `toml:"customer_id"`
	SenderID       string    `toml:"sender_id"`
	CreatedAt      time.Time `toml:"created_at"`
}
