package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// State of the attendance session.
type State int

const (
	// OffDuty means no open attendance record exists.
	OffDuty State = iota
	// Transitioning means a check-in or check-out request is in flight.
	// It acts as a mutual-exclusion gate: no second mutating request can
	// start until the first resolves.
	Transitioning
	// OnDuty means an open record exists and the elapsed timer is running.
	OnDuty
)

func (s State) String() string {
	switch s {
	case OffDuty:
		return "off_duty"
	case Transitioning:
		return "transitioning"
	case OnDuty:
		return "on_duty"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// checkOutNotes is the fixed note submitted with every check-out.
const checkOutNotes = "Checked out"

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithTickInterval overrides the elapsed-timer interval.
func WithTickInterval(d time.Duration) Option {
	return func(t *Tracker) { t.tickInterval = d }
}

// WithOnTick registers a callback fired on every elapsed-timer tick while
// on duty. The callback runs on the ticker goroutine.
func WithOnTick(fn func(elapsed time.Duration)) Option {
	return func(t *Tracker) { t.onTick = fn }
}

// Tracker drives the check-in/check-out lifecycle for one staff member.
// Location is always acquired before any network call, and any failure
// rolls the state back to the prior stable state.
type Tracker struct {
	api AttendanceAPI
	geo Geolocator

	now          func() time.Time
	tickInterval time.Duration
	onTick       func(time.Duration)

	mu        sync.Mutex
	state     State
	checkInAt time.Time
	history   []Record
	stopTick  chan struct{}
}

func NewTracker(api AttendanceAPI, geo Geolocator, opts ...Option) *Tracker {
	t := &Tracker{
		api:          api,
		geo:          geo,
		now:          time.Now,
		tickInterval: time.Second,
		state:        OffDuty,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns the current session state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// CheckInAt returns the open session's check-in time, zero when off duty.
func (t *Tracker) CheckInAt() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != OnDuty {
		return time.Time{}
	}
	return t.checkInAt
}

// Elapsed re-derives the on-duty duration from the clock on every call, so
// it self-corrects after missed ticks or clock adjustments. Zero when not
// on duty.
func (t *Tracker) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.checkInAt.IsZero() {
		return 0
	}
	return t.now().Sub(t.checkInAt).Truncate(time.Second)
}

// History returns the last fetched attendance list, newest first.
func (t *Tracker) History() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Record, len(t.history))
	copy(out, t.history)
	return out
}

// Resume derives the session state from the server's history list: if the
// newest record is still open the tracker comes up OnDuty with that
// record's check-in time, otherwise OffDuty.
func (t *Tracker) Resume(ctx context.Context) error {
	records, err := t.api.History(ctx)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.history = records

	if len(records) > 0 && records[0].IsOpen() {
		t.checkInAt = records[0].CheckInAt
		t.enterOnDutyLocked()
	} else {
		t.enterOffDutyLocked()
	}

	return nil
}

// CheckIn acquires the device position and opens a session. The position
// must be acquired before the network call; a location failure means no
// request was ever issued.
func (t *Tracker) CheckIn(ctx context.Context, notes string) error {
	if err := t.beginTransition(OffDuty, ErrAlreadyOnDuty); err != nil {
		return err
	}

	pos, err := t.geo.CurrentPosition(ctx)
	if err != nil {
		t.abortTransition(OffDuty)
		return &LocationError{Err: err}
	}

	record, err := t.api.Mark(ctx, "checkin", pos, notes)
	if err != nil {
		t.abortTransition(OffDuty)
		return err
	}

	t.refreshHistory(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkInAt = record.CheckInAt
	t.enterOnDutyLocked()
	return nil
}

// CheckOut acquires the device position and closes the open session.
func (t *Tracker) CheckOut(ctx context.Context) error {
	if err := t.beginTransition(OnDuty, ErrNotOnDuty); err != nil {
		return err
	}

	pos, err := t.geo.CurrentPosition(ctx)
	if err != nil {
		t.abortTransition(OnDuty)
		return &LocationError{Err: err}
	}

	if _, err := t.api.Mark(ctx, "checkout", pos, checkOutNotes); err != nil {
		t.abortTransition(OnDuty)
		return err
	}

	t.refreshHistory(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.enterOffDutyLocked()
	return nil
}

// Close stops the elapsed timer. The tracker is not reusable afterwards
// except via Resume.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopTickerLocked()
}

// beginTransition moves from the expected stable state into Transitioning.
func (t *Tracker) beginTransition(from State, wrongStateErr error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case Transitioning:
		return ErrTransitionInFlight
	case from:
		t.state = Transitioning
		return nil
	default:
		return wrongStateErr
	}
}

// abortTransition rolls back to the stable state the transition started
// from. The ticker is untouched: a failed check-out leaves it running.
func (t *Tracker) abortTransition(to State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = to
}

// refreshHistory refetches the full list after a successful mark. The mark
// itself already succeeded, so a refresh failure is not surfaced.
func (t *Tracker) refreshHistory(ctx context.Context) {
	records, err := t.api.History(ctx)
	if err != nil {
		return
	}
	t.mu.Lock()
	t.history = records
	t.mu.Unlock()
}

func (t *Tracker) enterOnDutyLocked() {
	t.state = OnDuty
	t.startTickerLocked()
}

func (t *Tracker) enterOffDutyLocked() {
	t.state = OffDuty
	t.checkInAt = time.Time{}
	t.stopTickerLocked()
}

func (t *Tracker) startTickerLocked() {
	if t.stopTick != nil || t.onTick == nil {
		return
	}

	stop := make(chan struct{})
	t.stopTick = stop

	go func() {
		ticker := time.NewTicker(t.tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				t.onTick(t.Elapsed())
			case <-stop:
				return
			}
		}
	}()
}

func (t *Tracker) stopTickerLocked() {
	if t.stopTick != nil {
		close(t.stopTick)
		t.stopTick = nil
	}
}

// FormatElapsed renders a duration as "1h 0m 0s" for display.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%dh %dm %ds", total/3600, (total%3600)/60, total%60)
}
