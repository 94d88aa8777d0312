// Package session holds the in-memory editing state for one activity record.
// The editor owns a private working copy; the owning record set only sees
// changes through the save callback, never by aliasing.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonathan/activity-planner/internal/types"
)

// DefaultSaveDelay is the debounce quiet period between the last edit and the
// save callback firing.
const DefaultSaveDelay = 1500 * time.Millisecond

// maxCompletedRanges caps how many completed periods a repeated activity may list
const maxCompletedRanges = 4

// SaveFunc receives the latest working copy when a save fires. It should not
// block: persistence is optimistic, and a returned error reaches the editor's
// error callback so the caller can run its revert path.
type SaveFunc func(types.Activity) error

// Editor is the mutable editing state for a single activity.
type Editor struct {
	mu      sync.Mutex
	current types.Activity
	save    SaveFunc
	onError func(error)
	delay   time.Duration
	timer   *time.Timer
	pending bool
}

// NewEditor opens an editing session over a working copy of the activity.
// onError may be nil.
func NewEditor(a types.Activity, save SaveFunc, onError func(error)) *Editor {
	return &Editor{
		current: a.Clone(),
		save:    save,
		onError: onError,
		delay:   DefaultSaveDelay,
	}
}

// Activity returns a copy of the current working state
func (e *Editor) Activity() types.Activity {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current.Clone()
}

// Pending reports whether an edit is awaiting its debounced save
func (e *Editor) Pending() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending
}

// Apply mutates the working copy through mut and schedules a debounced save.
// The working copy is replaced, never mutated in place. If the mutation does
// not itself change the status, an Empty record is promoted to Draft; a
// status change made by mut (see SetStatus) always wins over the promotion.
func (e *Editor) Apply(mut func(*types.Activity)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.current.Clone()
	prev := next.Status
	mut(&next)
	if next.Status == prev && prev == types.StatusEmpty {
		next.Status = types.StatusDraft
	}
	e.current = next
	e.scheduleLocked()
}

// SetStatus sets the lifecycle status directly, bypassing the Empty→Draft
// promotion. Manual selection always takes precedence.
func (e *Editor) SetStatus(s types.ActivityStatus) {
	e.Apply(func(a *types.Activity) { a.Status = s })
}

// UpdateRange applies mut to the date range with the given ID. Unknown IDs
// are ignored.
func (e *Editor) UpdateRange(id string, mut func(*types.DateRange)) {
	e.Apply(func(a *types.Activity) {
		for i := range a.DateRanges {
			if a.DateRanges[i].ID == id {
				mut(&a.DateRanges[i])
				return
			}
		}
	})
}

// AddCompletedRange appends a blank completed range, up to the cap of four.
// Returns false when the cap is reached and nothing was added.
func (e *Editor) AddCompletedRange() bool {
	added := false
	e.Apply(func(a *types.Activity) {
		if len(a.CompletedRanges()) >= maxCompletedRanges {
			return
		}
		a.DateRanges = append(a.DateRanges, types.DateRange{
			ID: fmt.Sprintf("dr-comp-%d", time.Now().UnixNano()),
		})
		added = true
	})
	return added
}

// RemoveRange deletes the date range with the given ID
func (e *Editor) RemoveRange(id string) {
	e.Apply(func(a *types.Activity) {
		ranges := a.DateRanges[:0]
		for _, r := range a.DateRanges {
			if r.ID != id {
				ranges = append(ranges, r)
			}
		}
		a.DateRanges = ranges
	})
}

// SetRepeated toggles the activity between a single completed period and a
// repeated one. Enabling adds a second completed range; disabling keeps only
// the first completed range plus any anticipated range.
func (e *Editor) SetRepeated(repeated bool) {
	e.Apply(func(a *types.Activity) {
		completed := a.CompletedRanges()
		if repeated {
			if len(completed) < 2 {
				a.DateRanges = append(a.DateRanges, types.DateRange{
					ID: fmt.Sprintf("dr-comp-%d", time.Now().UnixNano()),
				})
			}
			return
		}
		var ranges []types.DateRange
		if len(completed) > 0 {
			ranges = append(ranges, completed[0])
		}
		if ant := a.AnticipatedRange(); ant != nil {
			ranges = append(ranges, *ant)
		}
		a.DateRanges = ranges
	})
}

// Flush bypasses any pending debounce window and saves the current value
// immediately. Used by the explicit "done" action before handing control
// back to the dashboard.
func (e *Editor) Flush() {
	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.pending = false
	snapshot := e.current.Clone()
	e.mu.Unlock()

	e.dispatch(snapshot)
}

// scheduleLocked restarts the debounce timer. A new edit within the quiet
// period cancels and reschedules rather than stacking timers, so rapid edits
// coalesce into a single save of the latest value.
func (e *Editor) scheduleLocked() {
	if e.timer != nil {
		e.timer.Stop()
	}
	e.pending = true
	e.timer = time.AfterFunc(e.delay, e.fire)
}

func (e *Editor) fire() {
	e.mu.Lock()
	if !e.pending {
		e.mu.Unlock()
		return
	}
	e.pending = false
	e.timer = nil
	snapshot := e.current.Clone()
	e.mu.Unlock()

	e.dispatch(snapshot)
}

func (e *Editor) dispatch(a types.Activity) {
	if err := e.save(a); err != nil && e.onError != nil {
		e.onError(err)
	}
}
