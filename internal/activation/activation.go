// Package activation derives the lifecycle state of time-windowed content
// (activities and live news) from its schedule fields and wall-clock time.
// Everything here is pure; callers pass `now` explicitly and persist any
// resulting changes themselves.
package activation

import "time"

// Phase is the derived lifecycle label of a timed record. It is computed on
// every evaluation and never stored.
type Phase string

const (
	// PhaseUpcoming: inactive, scheduled start not yet reached.
	PhaseUpcoming Phase = "upcoming"
	// PhaseAutoActive: active inside its normal window.
	PhaseAutoActive Phase = "auto_active"
	// PhaseForceActive: operator activated it before the window opened.
	PhaseForceActive Phase = "force_active"
	// PhaseManualPermanent: re-enabled after expiry; the window is ignored
	// until an operator turns it off again.
	PhaseManualPermanent Phase = "manual_permanent"
	// PhaseExpired: inactive, window already elapsed.
	PhaseExpired Phase = "expired"
	// PhaseDisabled: operator turned it off mid-window.
	PhaseDisabled Phase = "disabled"
)

// Kind selects the expiry behaviour applied by Reconcile.
type Kind string

const (
	KindActivity Kind = "activity"
	KindLiveNews Kind = "live"
	// KindRegularLive news is deleted outright once its window elapses,
	// instead of being deactivated.
	KindRegularLive Kind = "regularLive"
)

// Action tells the caller what Reconcile decided for a record.
type Action int

const (
	ActionNone Action = iota
	ActionUpdate
	ActionDelete
)

// Schedule carries the persisted timing fields of a timed record.
// DurationHours is validated at the API boundary (1..168); the functions in
// this package assume it holds.
type Schedule struct {
	Start               time.Time
	DurationHours       int
	Active              bool
	ManuallyReactivated bool
}

// End is the exclusive end of the visibility window.
func (s Schedule) End() time.Time {
	return s.Start.Add(time.Duration(s.DurationHours) * time.Hour)
}

// MinDurationHours and MaxDurationHours bound the visibility window length
// accepted from operators (one hour to one week).
const (
	MinDurationHours = 1
	MaxDurationHours = 168
)

// ValidDuration reports whether h is an acceptable window length.
func ValidDuration(h int) bool {
	return h >= MinDurationHours && h <= MaxDurationHours
}

// inWindow is the single windowed-membership test shared by every path that
// computes Active. Start is inclusive, End exclusive.
func inWindow(now time.Time, s Schedule) bool {
	return !now.Before(s.Start) && now.Before(s.End())
}

// DerivePhase computes the record's lifecycle phase at `now`. Total: every
// combination of flags and clock yields exactly one phase.
func DerivePhase(now time.Time, s Schedule) Phase {
	if !s.Active {
		switch {
		case now.Before(s.Start):
			return PhaseUpcoming
		case !now.Before(s.End()):
			return PhaseExpired
		default:
			return PhaseDisabled
		}
	}
	if s.ManuallyReactivated {
		return PhaseManualPermanent
	}
	if now.Before(s.Start) {
		return PhaseForceActive
	}
	return PhaseAutoActive
}

// Visible reports whether the record should be shown to the public at `now`.
func Visible(now time.Time, s Schedule) bool {
	switch DerivePhase(now, s) {
	case PhaseAutoActive, PhaseForceActive, PhaseManualPermanent:
		return true
	}
	return false
}

// Reconcile re-evaluates the Active flag against the clock. It is the only
// place auto-timing flips Active, it never touches ManuallyReactivated, and
// it is idempotent for a fixed `now`. For KindRegularLive an elapsed window
// means the record must be deleted rather than deactivated.
func Reconcile(now time.Time, s Schedule, kind Kind) (Schedule, Action) {
	if s.ManuallyReactivated {
		return s, ActionNone
	}
	if kind == KindRegularLive && !now.Before(s.End()) {
		return s, ActionDelete
	}
	next := inWindow(now, s)
	if next == s.Active {
		return s, ActionNone
	}
	s.Active = next
	return s, ActionUpdate
}

// ResolveSubmission maps a create/edit form into schedule flags. A checked
// "force active now" box makes the record permanently visible regardless of
// its window; otherwise Active follows the same membership test Reconcile
// uses, so the two paths can never disagree.
func ResolveSubmission(now, start time.Time, durationHours int, forceActive bool) Schedule {
	s := Schedule{Start: start, DurationHours: durationHours}
	if forceActive {
		s.Active = true
		s.ManuallyReactivated = true
		return s
	}
	s.Active = inWindow(now, s)
	return s
}

// Deactivate turns a record off through the dedicated toggle. It also clears
// ManuallyReactivated so a later reconcile pass treats the record as an
// ordinary scheduled one again.
func Deactivate(s Schedule) Schedule {
	s.Active = false
	s.ManuallyReactivated = false
	return s
}

// Reactivate turns a record back on through the dedicated toggle. Flipping a
// record on after its window has already elapsed is the manual-reactivation
// case: the window is ignored from then on.
func Reactivate(now time.Time, s Schedule) Schedule {
	s.Active = true
	s.ManuallyReactivated = !now.Before(s.End())
	return s
}
