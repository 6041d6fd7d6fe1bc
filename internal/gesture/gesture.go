// Package gesture implements the swipe-to-reveal/delete state machine
// for list rows. It works in pixel units with a per-row record created
// on press and evicted on release; the caller translates its input
// coordinates to px and renders the published offsets.
package gesture

// Thresholds, in px. A row swiped past Open snaps to -OpenOffset on
// release; past Delete it is deleted.
const (
	OpenOffset      = 96
	OpenThreshold   = 60
	DeleteThreshold = 140

	// Movement below the dead zone, in either axis, does nothing.
	deadZone = 6
)

// Kind classifies a finished gesture.
type Kind int

const (
	// None: no gesture was in progress.
	None Kind = iota
	// Closed: the row snapped back to offset 0.
	Closed
	// Open: the row snapped open at -OpenOffset.
	Open
	// Delete: the row was dragged past the delete threshold.
	Delete
)

// Result of a release.
type Result struct {
	ID   string
	Kind Kind
}

// track is the per-row gesture record, alive from press to release.
type track struct {
	id             string
	startX, startY int
	base           int
	swiping        bool // locked into horizontal tracking
	offset         int  // last computed offset, published or not
}

// Tracker runs the per-row state machine:
//
//	idle -> tracking -> (committed-open | committed-closed | deleted)
//
// Offset publication is coalesced: Move records a pending offset and
// reports when the caller should schedule a frame; Flush publishes the
// latest pending value. Release classifies from the last computed
// offset regardless of what was published.
type Tracker struct {
	openID  string
	active  *track
	offsets map[string]int // published offsets by item id

	pending     int
	hasPending  bool
	frameQueued bool
}

func NewTracker() *Tracker {
	return &Tracker{offsets: map[string]int{}}
}

// Press begins tracking a row. If the row is already open the gesture
// starts from the open offset.
func (t *Tracker) Press(id string, x, y int) {
	base := 0
	if t.openID == id {
		base = -OpenOffset
	}
	t.active = &track{id: id, startX: x, startY: y, base: base, offset: base}
	t.offsets[id] = base
}

// Move advances the active gesture. needFrame is true when a pending
// offset is waiting and no frame is queued yet; the caller should then
// schedule one frame and call Flush when it lands.
func (t *Tracker) Move(x, y int) (needFrame bool) {
	a := t.active
	if a == nil {
		return false
	}
	dx := x - a.startX
	dy := y - a.startY

	if !a.swiping {
		if abs(dx) < deadZone && abs(dy) < deadZone {
			return false
		}
		// Looks like a scroll: abandon without touching the offset.
		if abs(dy) > abs(dx) {
			t.active = nil
			return false
		}
		a.swiping = true
	}

	next := a.base + dx
	if next > 0 {
		next = 0
	}
	if next < -DeleteThreshold {
		next = -DeleteThreshold
	}

	a.offset = next
	t.pending = next
	t.hasPending = true
	if !t.frameQueued {
		t.frameQueued = true
		return true
	}
	return false
}

// Flush publishes the latest pending offset; one Flush per frame.
func (t *Tracker) Flush() {
	t.frameQueued = false
	if !t.hasPending || t.active == nil {
		return
	}
	t.offsets[t.active.id] = t.pending
	t.hasPending = false
}

// Release ends the active gesture and classifies its final offset.
func (t *Tracker) Release() Result {
	a := t.active
	t.active = nil
	t.hasPending = false
	t.frameQueued = false
	if a == nil {
		return Result{Kind: None}
	}

	switch {
	case a.offset <= -DeleteThreshold:
		t.openID = ""
		delete(t.offsets, a.id)
		return Result{ID: a.id, Kind: Delete}
	case a.offset <= -OpenThreshold:
		t.openID = a.id
		t.offsets[a.id] = -OpenOffset
		return Result{ID: a.id, Kind: Open}
	default:
		t.openID = ""
		delete(t.offsets, a.id)
		return Result{ID: a.id, Kind: Closed}
	}
}

// PressOutside closes any open row. It does nothing while a gesture is
// being tracked.
func (t *Tracker) PressOutside() {
	if t.active != nil {
		return
	}
	if t.openID != "" {
		delete(t.offsets, t.openID)
		t.openID = ""
	}
}

// Evict drops all gesture state for a row, e.g. when its item is
// deleted.
func (t *Tracker) Evict(id string) {
	delete(t.offsets, id)
	if t.openID == id {
		t.openID = ""
	}
	if t.active != nil && t.active.id == id {
		t.active = nil
		t.hasPending = false
		t.frameQueued = false
	}
}

// Offset returns the published offset for a row.
func (t *Tracker) Offset(id string) int {
	if x, ok := t.offsets[id]; ok {
		return x
	}
	if t.openID == id {
		return -OpenOffset
	}
	return 0
}

// Tracking reports whether a gesture is in progress, and for which row.
func (t *Tracker) Tracking() (string, bool) {
	if t.active == nil {
		return "", false
	}
	return t.active.id, true
}

// OpenID returns the id of the committed-open row, if any.
func (t *Tracker) OpenID() string { return t.openID }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
