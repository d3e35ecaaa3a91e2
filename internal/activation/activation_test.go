package activation

import (
	"testing"
	"time"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDerivePhase(t *testing.T) {
	start := ts("2025-01-01T09:00:00Z")
	base := Schedule{Start: start, DurationHours: 24}

	cases := []struct {
		name string
		now  time.Time
		mod  func(Schedule) Schedule
		want Phase
	}{
		{"inactive before start", ts("2025-01-01T08:00:00Z"), nil, PhaseUpcoming},
		{"inactive after end", ts("2025-01-05T09:00:00Z"), nil, PhaseExpired},
		{"inactive exactly at end", ts("2025-01-02T09:00:00Z"), nil, PhaseExpired},
		{"inactive mid window", ts("2025-01-01T15:00:00Z"), nil, PhaseDisabled},
		{
			"active mid window",
			ts("2025-01-01T15:00:00Z"),
			func(s Schedule) Schedule { s.Active = true; return s },
			PhaseAutoActive,
		},
		{
			"active exactly at start",
			start,
			func(s Schedule) Schedule { s.Active = true; return s },
			PhaseAutoActive,
		},
		{
			"active before start",
			ts("2025-01-01T08:00:00Z"),
			func(s Schedule) Schedule { s.Active = true; return s },
			PhaseForceActive,
		},
		{
			"manually reactivated",
			ts("2025-03-01T00:00:00Z"),
			func(s Schedule) Schedule { s.Active = true; s.ManuallyReactivated = true; return s },
			PhaseManualPermanent,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := base
			if tc.mod != nil {
				s = tc.mod(s)
			}
			if got := DerivePhase(tc.now, s); got != tc.want {
				t.Fatalf("DerivePhase = %s, want %s", got, tc.want)
			}
		})
	}
}

// A manually reactivated record is in phase manual_permanent no matter where
// the clock is relative to its window.
func TestManualPermanentIgnoresClock(t *testing.T) {
	s := Schedule{
		Start:               ts("2025-06-01T00:00:00Z"),
		DurationHours:       48,
		Active:              true,
		ManuallyReactivated: true,
	}
	for _, now := range []time.Time{
		ts("2020-01-01T00:00:00Z"),
		ts("2025-06-01T12:00:00Z"),
		ts("2030-01-01T00:00:00Z"),
	} {
		if got := DerivePhase(now, s); got != PhaseManualPermanent {
			t.Errorf("at %s: phase = %s, want %s", now, got, PhaseManualPermanent)
		}
		if !Visible(now, s) {
			t.Errorf("at %s: expected visible", now)
		}
	}
}

// Walks a full lifecycle: upcoming record becomes active as the clock enters
// the window and expires as it leaves.
func TestReconcileWindowLifecycle(t *testing.T) {
	s := Schedule{Start: ts("2025-01-01T09:00:00Z"), DurationHours: 24}

	// Before the window opens nothing changes.
	got, action := Reconcile(ts("2025-01-01T08:00:00Z"), s, KindActivity)
	if action != ActionNone || got.Active {
		t.Fatalf("before window: action=%v active=%v", action, got.Active)
	}
	if phase := DerivePhase(ts("2025-01-01T08:00:00Z"), got); phase != PhaseUpcoming {
		t.Fatalf("before window: phase = %s", phase)
	}

	// Inside the window the record flips on.
	now := ts("2025-01-01T15:00:00Z")
	got, action = Reconcile(now, s, KindActivity)
	if action != ActionUpdate || !got.Active {
		t.Fatalf("inside window: action=%v active=%v", action, got.Active)
	}
	if phase := DerivePhase(now, got); phase != PhaseAutoActive {
		t.Fatalf("inside window: phase = %s", phase)
	}

	// After the window it flips back off.
	now = ts("2025-01-02T10:00:00Z")
	got, action = Reconcile(now, got, KindActivity)
	if action != ActionUpdate || got.Active {
		t.Fatalf("after window: action=%v active=%v", action, got.Active)
	}
	if phase := DerivePhase(now, got); phase != PhaseExpired {
		t.Fatalf("after window: phase = %s", phase)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	times := []time.Time{
		ts("2025-01-01T08:00:00Z"),
		ts("2025-01-01T09:00:00Z"),
		ts("2025-01-01T15:00:00Z"),
		ts("2025-01-02T09:00:00Z"),
		ts("2025-01-03T00:00:00Z"),
	}
	for _, active := range []bool{false, true} {
		s := Schedule{Start: ts("2025-01-01T09:00:00Z"), DurationHours: 24, Active: active}
		for _, now := range times {
			once, _ := Reconcile(now, s, KindActivity)
			twice, action := Reconcile(now, once, KindActivity)
			if twice.Active != once.Active {
				t.Errorf("at %s: second pass changed Active %v -> %v", now, once.Active, twice.Active)
			}
			if action != ActionNone {
				t.Errorf("at %s: second pass action = %v, want none", now, action)
			}
		}
	}
}

func TestReconcileNeverTouchesManualFlag(t *testing.T) {
	s := Schedule{
		Start:               ts("2025-01-01T09:00:00Z"),
		DurationHours:       2,
		Active:              true,
		ManuallyReactivated: true,
	}
	got, action := Reconcile(ts("2025-02-01T00:00:00Z"), s, KindLiveNews)
	if action != ActionNone {
		t.Fatalf("action = %v, want none", action)
	}
	if !got.Active || !got.ManuallyReactivated {
		t.Fatalf("manual override was altered: %+v", got)
	}
}

func TestReconcileRegularLiveDeletesOnExpiry(t *testing.T) {
	s := Schedule{Start: ts("2025-01-01T09:00:00Z"), DurationHours: 2, Active: true}

	// Still inside the window: normal reconcile, no delete.
	if _, action := Reconcile(ts("2025-01-01T10:00:00Z"), s, KindRegularLive); action != ActionNone {
		t.Fatalf("inside window: action = %v, want none", action)
	}

	// Window elapsed: delete, not deactivate.
	if _, action := Reconcile(ts("2025-01-01T11:00:00Z"), s, KindRegularLive); action != ActionDelete {
		t.Fatalf("after window: action = %v, want delete", action)
	}

	// The same expiry on a plain live record only deactivates.
	got, action := Reconcile(ts("2025-01-01T11:00:00Z"), s, KindLiveNews)
	if action != ActionUpdate || got.Active {
		t.Fatalf("live news expiry: action=%v active=%v", action, got.Active)
	}

	// A manually reactivated regularLive record is never deleted.
	s.ManuallyReactivated = true
	if _, action := Reconcile(ts("2025-01-01T11:00:00Z"), s, KindRegularLive); action != ActionNone {
		t.Fatalf("manual regularLive: action = %v, want none", action)
	}
}

func TestResolveSubmission(t *testing.T) {
	now := ts("2025-01-01T12:00:00Z")
	tomorrow := ts("2025-01-02T09:00:00Z")

	// Force-active bypasses the schedule entirely, even one starting tomorrow.
	s := ResolveSubmission(now, tomorrow, 24, true)
	if !s.Active || !s.ManuallyReactivated {
		t.Fatalf("forced submission: %+v", s)
	}
	if phase := DerivePhase(now, s); phase != PhaseManualPermanent {
		t.Fatalf("forced submission: phase = %s", phase)
	}
	if phase := DerivePhase(ts("2025-01-10T00:00:00Z"), s); phase != PhaseManualPermanent {
		t.Fatalf("forced submission after window passed: phase = %s", phase)
	}

	// Unforced submission obeys the window.
	s = ResolveSubmission(now, tomorrow, 24, false)
	if s.Active || s.ManuallyReactivated {
		t.Fatalf("upcoming submission: %+v", s)
	}
	s = ResolveSubmission(now, ts("2025-01-01T09:00:00Z"), 24, false)
	if !s.Active {
		t.Fatalf("in-window submission should be active: %+v", s)
	}
}

// Submission and reconciliation must agree on the membership test: whatever
// ResolveSubmission decides, an immediate Reconcile changes nothing.
func TestSubmissionAgreesWithReconcile(t *testing.T) {
	now := ts("2025-01-01T12:00:00Z")
	starts := []time.Time{
		ts("2024-12-30T00:00:00Z"),
		ts("2025-01-01T11:00:00Z"),
		ts("2025-01-01T12:00:00Z"),
		ts("2025-01-02T00:00:00Z"),
	}
	for _, start := range starts {
		for _, hours := range []int{1, 24, 168} {
			s := ResolveSubmission(now, start, hours, false)
			got, action := Reconcile(now, s, KindActivity)
			if action != ActionNone || got.Active != s.Active {
				t.Errorf("start=%s hours=%d: reconcile disagreed (action=%v, %v -> %v)",
					start, hours, action, s.Active, got.Active)
			}
		}
	}
}

func TestToggle(t *testing.T) {
	start := ts("2025-01-01T09:00:00Z")
	s := Schedule{Start: start, DurationHours: 24, Active: true}

	// Turning a record off clears the manual flag too.
	s.ManuallyReactivated = true
	s = Deactivate(s)
	if s.Active || s.ManuallyReactivated {
		t.Fatalf("deactivate: %+v", s)
	}

	// Reactivating mid-window is a plain activation.
	s = Reactivate(ts("2025-01-01T15:00:00Z"), s)
	if !s.Active || s.ManuallyReactivated {
		t.Fatalf("mid-window reactivate: %+v", s)
	}

	// Reactivating after expiry is the permanent override.
	s = Deactivate(s)
	s = Reactivate(ts("2025-01-03T00:00:00Z"), s)
	if !s.Active || !s.ManuallyReactivated {
		t.Fatalf("post-expiry reactivate: %+v", s)
	}
}

func TestValidDuration(t *testing.T) {
	for h, want := range map[int]bool{0: false, -3: false, 1: true, 168: true, 169: false} {
		if got := ValidDuration(h); got != want {
			t.Errorf("ValidDuration(%d) = %v, want %v", h, got, want)
		}
	}
}

func TestEnd(t *testing.T) {
	s := Schedule{Start: ts("2025-01-01T09:00:00Z"), DurationHours: 24}
	if want := ts("2025-01-02T09:00:00Z"); !s.End().Equal(want) {
		t.Fatalf("End = %s, want %s", s.End(), want)
	}
}
