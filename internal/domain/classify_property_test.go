package domain

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func genSignals(rt *rapid.T, label string) ClientSignals {
	now := testNow()

	signals := ClientSignals{
		Client: Client{
			ID:       ClientID(rapid.StringMatching(`client-[a-z0-9]{4}`).Draw(rt, label+"_id")),
			FullName: rapid.StringMatching(`[A-Z][a-z]{2,8} [A-Z][a-z]{2,8}`).Draw(rt, label+"_name"),
		},
		PendingRequest: rapid.Bool().Draw(rt, label+"_pending_request"),
	}

	switch rapid.IntRange(0, 2).Draw(rt, label+"_offer") {
	case 1:
		signals.PendingOffer = true
	case 2:
		signals.AcceptedOffer = true
	}

	numPrograms := rapid.IntRange(0, 3).Draw(rt, label+"_num_programs")
	for i := range numPrograms {
		status := rapid.SampledFrom([]ProgramStatus{ProgramActive, ProgramScheduled, ProgramCompleted}).
			Draw(rt, fmt.Sprintf("%s_program_%d", label, i))
		signals.AssignedPrograms = append(signals.AssignedPrograms, ProgramSummary{
			ID:     fmt.Sprintf("prog-%d", i),
			Status: status,
		})
	}

	numEntries := rapid.IntRange(0, 5).Draw(rt, label+"_num_entries")
	for i := range numEntries {
		ageHours := rapid.IntRange(0, 30*24).Draw(rt, fmt.Sprintf("%s_entry_age_%d", label, i))
		signals.RecentActivity = append(signals.RecentActivity, now.Add(-time.Duration(ageHours)*time.Hour))
	}

	if rapid.Bool().Draw(rt, label+"_has_expiry") {
		offsetHours := rapid.IntRange(-10*24, 60*24).Draw(rt, label+"_expiry_offset")
		expiry := now.Add(time.Duration(offsetHours) * time.Hour)
		signals.Client.PlanExpiry = &expiry
	}

	if rapid.Bool().Draw(rt, label+"_has_checkin") {
		signals.LastCheckin = &Checkin{
			Status:    rapid.SampledFrom([]CheckinStatus{CheckinOpen, CheckinCompleted}).Draw(rt, label+"_checkin_status"),
			CreatedAt: now.Add(-time.Duration(rapid.IntRange(0, 72).Draw(rt, label+"_checkin_age")) * time.Hour),
		}
	}

	if rapid.Bool().Draw(rt, label+"_has_message") {
		signals.LastMessage = &Message{
			SenderIsCoach: rapid.Bool().Draw(rt, label+"_sender_is_coach"),
			CreatedAt:     now.Add(-time.Duration(rapid.IntRange(0, 72).Draw(rt, label+"_message_age")) * time.Hour),
		}
	}

	return signals
}

func TestClassifyIsTotal(t *testing.T) {
	validStatuses := map[ClientStatus]bool{
		StatusNone: true, StatusWaitingOffer: true, StatusMissingProgram: true,
		StatusOnTrack: true, StatusOffTrack: true, StatusSoonToExpire: true,
		StatusProgramActive: true,
	}

	rapid.Check(t, func(rt *rapid.T) {
		signals := genSignals(rt, "signals")
		status := Classify(signals, testNow())

		if !validStatuses[status] {
			rt.Fatalf("Classify returned a value outside the closed status set: %q", status)
		}
	})
}

func TestClassifyPendingRequestAlwaysWins(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		signals := genSignals(rt, "signals")
		signals.PendingRequest = true

		if status := Classify(signals, testNow()); status != StatusNone {
			rt.Fatalf("pending request classified as %q, want %q", status, StatusNone)
		}
	})
}

func TestBuildTasksCappedAndSorted(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		numClients := rapid.IntRange(0, 25).Draw(rt, "num_clients")
		bundles := make([]ClientSignals, 0, numClients)
		for i := range numClients {
			bundles = append(bundles, genSignals(rt, fmt.Sprintf("client_%d", i)))
		}

		tasks := BuildTasks(bundles, testNow())

		if len(tasks) > MaxTasks {
			rt.Fatalf("task queue exceeds cap: %d > %d", len(tasks), MaxTasks)
		}

		ranks := make([]int, 0, len(tasks))
		for _, task := range tasks {
			if task.PriorityRank != PriorityRank(task.Tag) {
				rt.Fatalf("task %s carries rank %d, table says %d", task.ID, task.PriorityRank, PriorityRank(task.Tag))
			}
			ranks = append(ranks, task.PriorityRank)
		}
		if !sort.IntsAreSorted(ranks) {
			rt.Fatalf("task queue not sorted by priority: %v", ranks)
		}
	})
}
