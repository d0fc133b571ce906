package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type TaskTag string

const (
	TagNewRequest      TaskTag = "New Request"
	TagPendingOffer    TaskTag = "Pending Offer"
	TagMissingProgram  TaskTag = "Missing Program"
	TagOffTrack        TaskTag = "Off Track"
	TagAwaitingCheckin TaskTag = "Awaiting Check-in"
	TagSoonToExpire    TaskTag = "Soon to Expire"
)

// taskPriority ranks tags for the global task queue, lower is more urgent.
// Changing a priority is a one-line diff here; nothing else orders tasks.
var taskPriority = map[TaskTag]int{
	TagNewRequest:      1,
	TagMissingProgram:  2,
	TagOffTrack:        3,
	TagAwaitingCheckin: 4,
	TagPendingOffer:    5,
	TagSoonToExpire:    6,
}

// PriorityRank returns the queue rank for a tag. Unknown tags sort last.
func PriorityRank(tag TaskTag) int {
	if rank, ok := taskPriority[tag]; ok {
		return rank
	}

	return len(taskPriority) + 1
}

// MaxTasks caps the global task queue.
const MaxTasks = 10

// Task is an actionable item surfaced to the coach. Tasks are rebuilt from
// scratch on every evaluation and carry no identity across calls.
type Task struct {
	ID           string
	ClientID     ClientID
	ClientName   string
	Label        string
	Detail       string
	Tag          TaskTag
	PriorityRank int
	Link         string
}

// BuildTasks derives the coach's ranked task queue from all client signal
// bundles: at most one task per client (first matching rule wins), stable
// sorted by the priority table, truncated to MaxTasks.
func BuildTasks(signals []ClientSignals, now time.Time) []Task {
	tasks := make([]Task, 0, len(signals))
	for _, bundle := range signals {
		if task, ok := taskFor(bundle, now); ok {
			tasks = append(tasks, task)
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].PriorityRank < tasks[j].PriorityRank
	})

	if len(tasks) > MaxTasks {
		tasks = tasks[:MaxTasks]
	}

	return tasks
}

// taskFor mirrors the classifier's first-match discipline with its own rule
// list tuned for actionability rather than display status.
func taskFor(signals ClientSignals, now time.Time) (Task, bool) {
	client := signals.Client

	switch {
	case signals.PendingRequest:
		return newTask(client, TagNewRequest,
			"New coaching request",
			fmt.Sprintf("%s asked to join your roster", client.FullName)), true

	case signals.PendingOffer:
		return newTask(client, TagPendingOffer,
			"Offer awaiting response",
			fmt.Sprintf("%s has not responded to your offer yet", client.FullName)), true

	case signals.AcceptedOffer && !signals.HasPreparedProgram():
		return newTask(client, TagMissingProgram,
			"Assign a program",
			fmt.Sprintf("%s accepted your offer but has no active or scheduled program", client.FullName)), true

	case !signals.HasPreparedProgram():
		return newTask(client, TagMissingProgram,
			"Assign a program",
			fmt.Sprintf("%s has no active or scheduled program", client.FullName)), true
	}

	if latest, ok := signals.LatestActivity(); ok {
		if missed := MissedDays(latest, now); missed > offTrackAfterDays {
			return newTask(client, TagOffTrack,
				"Client is off track",
				fmt.Sprintf("no activity logged for %d days", missed)), true
		}
	}

	if PlanExpiringSoon(client.PlanExpiry, now) {
		days := int(client.PlanExpiry.Sub(now) / (24 * time.Hour))
		return newTask(client, TagSoonToExpire,
			"Plan expiring soon",
			fmt.Sprintf("%s's plan expires in %d days", client.FullName, days)), true
	}

	if checkin := signals.LastCheckin; checkin != nil &&
		checkin.Status == CheckinOpen && now.Sub(checkin.CreatedAt) >= recentWindow {
		return newTask(client, TagAwaitingCheckin,
			"Check-in unanswered",
			fmt.Sprintf("the check-in sent to %s is still open", client.FullName)), true
	}

	return Task{}, false
}

func newTask(client Client, tag TaskTag, label, detail string) Task {
	return Task{
		ID:           fmt.Sprintf("%s-%s", client.ID, tagSlug(tag)),
		ClientID:     client.ID,
		ClientName:   client.FullName,
		Label:        label,
		Detail:       detail,
		Tag:          tag,
		PriorityRank: PriorityRank(tag),
		Link:         fmt.Sprintf("/clients/%s", client.ID),
	}
}

func tagSlug(tag TaskTag) string {
	return strings.ToLower(strings.ReplaceAll(string(tag), " ", "-"))
}
