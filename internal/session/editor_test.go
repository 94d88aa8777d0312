package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/activity-planner/internal/types"
)

const testDelay = 20 * time.Millisecond

// saveRecorder captures every save the editor dispatches.
type saveRecorder struct {
	mu    sync.Mutex
	saved []types.Activity
	err   error
}

func (r *saveRecorder) save(a types.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, a)
	return r.err
}

func (r *saveRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}

func (r *saveRecorder) last() types.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved[len(r.saved)-1]
}

func newTestEditor(a types.Activity, rec *saveRecorder, onError func(error)) *Editor {
	e := NewEditor(a, rec.save, onError)
	e.delay = testDelay
	return e
}

func waitForSaves(t *testing.T, rec *saveRecorder, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if rec.count() >= want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d saves, got %d", want, rec.count())
}

func blankActivity() types.Activity {
	return types.Activity{
		ID:     1,
		Status: types.StatusEmpty,
		DateRanges: []types.DateRange{
			{ID: "dr-1"},
		},
	}
}

func TestApplyPromotesEmptyToDraft(t *testing.T) {
	rec := &saveRecorder{}
	e := newTestEditor(blankActivity(), rec, nil)

	e.Apply(func(a *types.Activity) { a.Title = "Hospital Volunteer" })

	got := e.Activity()
	assert.Equal(t, "Hospital Volunteer", got.Title)
	assert.Equal(t, types.StatusDraft, got.Status)
}

func TestApplyKeepsNonEmptyStatus(t *testing.T) {
	rec := &saveRecorder{}
	a := blankActivity()
	a.Status = types.StatusPolished
	e := newTestEditor(a, rec, nil)

	e.Apply(func(a *types.Activity) { a.Title = "Research Assistant" })

	assert.Equal(t, types.StatusPolished, e.Activity().Status)
}

func TestSetStatusOverridesPromotion(t *testing.T) {
	rec := &saveRecorder{}
	e := newTestEditor(blankActivity(), rec, nil)

	e.SetStatus(types.StatusFinal)

	assert.Equal(t, types.StatusFinal, e.Activity().Status)
}

func TestSetStatusBackToEmpty(t *testing.T) {
	rec := &saveRecorder{}
	a := blankActivity()
	a.Status = types.StatusDraft
	e := newTestEditor(a, rec, nil)

	e.SetStatus(types.StatusEmpty)

	assert.Equal(t, types.StatusEmpty, e.Activity().Status)
}

func TestDebounceCoalescesRapidEdits(t *testing.T) {
	rec := &saveRecorder{}
	e := newTestEditor(blankActivity(), rec, nil)

	for i := 0; i < 5; i++ {
		e.Apply(func(a *types.Activity) { a.Title = fmt.Sprintf("edit %d", i) })
	}
	assert.True(t, e.Pending())

	waitForSaves(t, rec, 1)
	time.Sleep(3 * testDelay)

	assert.Equal(t, 1, rec.count())
	assert.Equal(t, "edit 4", rec.last().Title)
	assert.False(t, e.Pending())
}

func TestFlushSavesImmediately(t *testing.T) {
	rec := &saveRecorder{}
	e := newTestEditor(blankActivity(), rec, nil)

	e.Apply(func(a *types.Activity) { a.Title = "Clinic Scribe" })
	e.Flush()

	require.Equal(t, 1, rec.count())
	assert.Equal(t, "Clinic Scribe", rec.last().Title)
	assert.False(t, e.Pending())

	// The cancelled debounce timer must not fire a second save.
	time.Sleep(3 * testDelay)
	assert.Equal(t, 1, rec.count())
}

func TestFlushWithoutPendingEditStillSaves(t *testing.T) {
	rec := &saveRecorder{}
	e := newTestEditor(blankActivity(), rec, nil)

	e.Flush()

	assert.Equal(t, 1, rec.count())
}

func TestSaveErrorReachesErrorCallback(t *testing.T) {
	saveErr := errors.New("persist failed")
	rec := &saveRecorder{err: saveErr}
	var mu sync.Mutex
	var got error
	e := newTestEditor(blankActivity(), rec, func(err error) {
		mu.Lock()
		got = err
		mu.Unlock()
	})

	e.Apply(func(a *types.Activity) { a.Title = "x" })
	waitForSaves(t, rec, 1)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, saveErr, got)
}

func TestNilErrorCallbackIsSafe(t *testing.T) {
	rec := &saveRecorder{err: errors.New("persist failed")}
	e := newTestEditor(blankActivity(), rec, nil)

	e.Apply(func(a *types.Activity) { a.Title = "x" })
	e.Flush()

	assert.Equal(t, 1, rec.count())
}

func TestAddCompletedRangeCapsAtFour(t *testing.T) {
	rec := &saveRecorder{}
	e := newTestEditor(blankActivity(), rec, nil)

	assert.True(t, e.AddCompletedRange())
	assert.True(t, e.AddCompletedRange())
	assert.True(t, e.AddCompletedRange())
	assert.False(t, e.AddCompletedRange())

	got := e.Activity()
	assert.Len(t, got.CompletedRanges(), 4)
}

func TestAddCompletedRangeIgnoresAnticipated(t *testing.T) {
	rec := &saveRecorder{}
	a := blankActivity()
	a.DateRanges = append(a.DateRanges, types.DateRange{ID: "dr-ant", Anticipated: true})
	e := newTestEditor(a, rec, nil)

	// One completed plus one anticipated: three more completed fit under the cap.
	assert.True(t, e.AddCompletedRange())
	assert.True(t, e.AddCompletedRange())
	assert.True(t, e.AddCompletedRange())
	assert.False(t, e.AddCompletedRange())
}

func TestUpdateRange(t *testing.T) {
	rec := &saveRecorder{}
	e := newTestEditor(blankActivity(), rec, nil)

	e.UpdateRange("dr-1", func(r *types.DateRange) {
		r.StartMonth = "June"
		r.StartYear = "2024"
	})

	got := e.Activity()
	require.Len(t, got.DateRanges, 1)
	assert.Equal(t, "June", got.DateRanges[0].StartMonth)
	assert.Equal(t, "2024", got.DateRanges[0].StartYear)
}

func TestUpdateRangeUnknownIDIgnored(t *testing.T) {
	rec := &saveRecorder{}
	e := newTestEditor(blankActivity(), rec, nil)

	e.UpdateRange("dr-missing", func(r *types.DateRange) {
		r.StartMonth = "June"
	})

	assert.Empty(t, e.Activity().DateRanges[0].StartMonth)
}

func TestRemoveRange(t *testing.T) {
	rec := &saveRecorder{}
	a := blankActivity()
	a.DateRanges = append(a.DateRanges, types.DateRange{ID: "dr-2"})
	e := newTestEditor(a, rec, nil)

	e.RemoveRange("dr-1")

	got := e.Activity()
	require.Len(t, got.DateRanges, 1)
	assert.Equal(t, "dr-2", got.DateRanges[0].ID)
}

func TestSetRepeatedAddsSecondCompletedRange(t *testing.T) {
	rec := &saveRecorder{}
	e := newTestEditor(blankActivity(), rec, nil)

	e.SetRepeated(true)

	got := e.Activity()
	assert.Len(t, got.CompletedRanges(), 2)

	// Enabling again is a no-op once two completed ranges exist.
	e.SetRepeated(true)
	got = e.Activity()
	assert.Len(t, got.CompletedRanges(), 2)
}

func TestSetRepeatedOffKeepsFirstCompletedAndAnticipated(t *testing.T) {
	rec := &saveRecorder{}
	a := blankActivity()
	a.DateRanges = append(a.DateRanges,
		types.DateRange{ID: "dr-2"},
		types.DateRange{ID: "dr-3"},
		types.DateRange{ID: "dr-ant", Anticipated: true},
	)
	e := newTestEditor(a, rec, nil)

	e.SetRepeated(false)

	got := e.Activity()
	require.Len(t, got.DateRanges, 2)
	assert.Equal(t, "dr-1", got.DateRanges[0].ID)
	assert.Equal(t, "dr-ant", got.DateRanges[1].ID)
	assert.True(t, got.DateRanges[1].Anticipated)
}

func TestActivityReturnsIsolatedCopy(t *testing.T) {
	rec := &saveRecorder{}
	e := newTestEditor(blankActivity(), rec, nil)

	got := e.Activity()
	got.Title = "mutated outside"
	got.DateRanges[0].ID = "hijacked"

	fresh := e.Activity()
	assert.Empty(t, fresh.Title)
	assert.Equal(t, "dr-1", fresh.DateRanges[0].ID)
}
