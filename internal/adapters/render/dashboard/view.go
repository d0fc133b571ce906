package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/coachdesk/internal/application"
	"github.com/bnema/coachdesk/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
}

// RenderStatuses draws the per-client status list with badges and activity
// context.
func RenderStatuses(records []application.ClientStatusRecord, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderStatuses(records, opts, s)
	})
}

// RenderTasks draws the ranked task queue.
func RenderTasks(tasks []domain.Task, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderTasks(tasks, s)
	})
}

func renderStatuses(records []application.ClientStatusRecord, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Coaching Dashboard"),
		s.header.Render(fmt.Sprintf("clients: %d", len(records))),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No client statuses available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range records {
		lines = append(lines, s.section.Render(renderClient(record, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderClient(record application.ClientStatusRecord, opts RenderOptions, s styles) string {
	client := record.Client

	head := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.client.Render(fmt.Sprintf("%s (%s)", client.FullName, client.ID)),
		" ",
		statusStyle(record.Status, s).Render(record.Status.Label()),
	)

	parts := []string{head}

	if badges := badgeLine(record.Badges); badges != "" {
		parts = append(parts, s.badge.Render(badges))
	}

	parts = append(parts, s.detail.Render(clientMeta(record, opts)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func clientMeta(record application.ClientStatusRecord, opts RenderOptions) string {
	meta := []string{
		fmt.Sprintf("plan: %s", domain.PlanTierLabel(record.Client.PlanTier)),
		fmt.Sprintf("programs: %d", len(record.Programs)),
	}

	if record.LastActivity != nil {
		meta = append(meta, fmt.Sprintf("last activity: %s", relativeAge(*record.LastActivity, opts.Now)))
	} else {
		meta = append(meta, "last activity: none")
	}

	return strings.Join(meta, "  ")
}

func badgeLine(badges domain.Badges) string {
	labels := make([]string, 0, 3)
	if badges.NewMessage {
		labels = append(labels, "[new message]")
	}
	if badges.AwaitingCheckin {
		labels = append(labels, "[awaiting check-in]")
	}
	if badges.NewFeedback {
		labels = append(labels, "[new feedback]")
	}

	return strings.Join(labels, " ")
}

func renderTasks(tasks []domain.Task, s styles) string {
	lines := []string{
		s.title.Render("Coach Tasks"),
		s.header.Render(fmt.Sprintf("tasks: %d", len(tasks))),
	}

	if len(tasks) == 0 {
		lines = append(lines, s.empty.Render("Nothing needs your attention."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, task := range tasks {
		line := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.rank.Render(fmt.Sprintf("%2d.", i+1)),
			" ",
			s.warning.Render(fmt.Sprintf("[%s]", task.Tag)),
			" ",
			s.client.Render(task.ClientName),
			" ",
			s.detail.Render(fmt.Sprintf("%s: %s", task.Label, task.Detail)),
		)
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statusStyle(status domain.ClientStatus, s styles) lipgloss.Style {
	switch status {
	case domain.StatusOnTrack, domain.StatusProgramActive:
		return s.onTrack
	case domain.StatusOffTrack:
		return s.offTrack
	case domain.StatusMissingProgram, domain.StatusSoonToExpire:
		return s.warning
	default:
		return s.waiting
	}
}

func relativeAge(ts, now time.Time) string {
	if now.IsZero() || ts.After(now) {
		return ts.Format("2006-01-02")
	}

	age := now.Sub(ts)
	switch {
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}
