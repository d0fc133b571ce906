package domain

import (
	"strings"
	"time"
)

type CoachID string

type ClientID string

type Client struct {
	ID         ClientID
	FullName   string
	Email      string
	PlanTier   string
	AvatarURL  string
	PlanExpiry *time.Time
}

type ProgramStatus string

const (
	ProgramActive    ProgramStatus = "active"
	ProgramScheduled ProgramStatus = "scheduled"
	ProgramCompleted ProgramStatus = "completed"
)

type ProgramSummary struct {
	ID     string
	Status ProgramStatus
}

// PlanTierLabel normalizes the free-form plan tier recorded upstream into a
// display label.
func PlanTierLabel(planTier string) string {
	switch strings.ToLower(strings.TrimSpace(planTier)) {
	case "":
		return "Unknown"
	case "free", "trial":
		return "Free"
	case "pro", "premium", "plus":
		return "Premium"
	default:
		return "Standard"
	}
}
