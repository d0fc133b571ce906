package dashboard

import (
	"testing"
	"time"

	"github.com/bnema/coachdesk/internal/application"
	"github.com/bnema/coachdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStatuses(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	lastActivity := now.Add(-3 * 24 * time.Hour)

	output, err := RenderStatuses([]application.ClientStatusRecord{
		{
			Client: domain.Client{
				ID:       "client-1",
				FullName: "Alex Doe",
				PlanTier: "premium",
			},
			Status:       domain.StatusOnTrack,
			Badges:       domain.Badges{NewMessage: true},
			Programs:     []domain.ProgramSummary{{ID: "prog-1", Status: domain.ProgramActive}},
			LastActivity: &lastActivity,
		},
		{
			Client: domain.Client{ID: "client-2", FullName: "Billie Roe"},
			Status: domain.StatusOffTrack,
		},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Coaching Dashboard")
	assert.Contains(t, output, "clients: 2")
	assert.Contains(t, output, "Alex Doe (client-1)")
	assert.Contains(t, output, "On track")
	assert.Contains(t, output, "[new message]")
	assert.Contains(t, output, "plan: Premium")
	assert.Contains(t, output, "last activity: 3d ago")
	assert.Contains(t, output, "Off track")
	assert.Contains(t, output, "last activity: none")
}

func TestRenderStatusesEmpty(t *testing.T) {
	output, err := RenderStatuses(nil, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "No client statuses available.")
}

func TestRenderTasks(t *testing.T) {
	output, err := RenderTasks([]domain.Task{
		{
			ID:           "client-1-off-track",
			ClientID:     "client-1",
			ClientName:   "Alex Doe",
			Label:        "Client is off track",
			Detail:       "no activity logged for 8 days",
			Tag:          domain.TagOffTrack,
			PriorityRank: 3,
			Link:         "/clients/client-1",
		},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Coach Tasks")
	assert.Contains(t, output, "tasks: 1")
	assert.Contains(t, output, "[Off Track]")
	assert.Contains(t, output, "Alex Doe")
	assert.Contains(t, output, "no activity logged for 8 days")
}

func TestRenderTasksEmpty(t *testing.T) {
	output, err := RenderTasks(nil, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "Nothing needs your attention.")
}
