package engine

import (
	"sync"
	"time"

	"handla/internal/model"
)

// UndoKind tags the action variant.
type UndoKind int

const (
	UndoAdd UndoKind = iota
	UndoDelete
	UndoToggleDone
	UndoEdit
)

func (k UndoKind) String() string {
	switch k {
	case UndoAdd:
		return "add"
	case UndoDelete:
		return "delete"
	case UndoToggleDone:
		return "toggleDone"
	case UndoEdit:
		return "edit"
	}
	return "unknown"
}

// UndoAction carries exactly the prior state needed to invert one
// mutation.
type UndoAction struct {
	Kind UndoKind

	// Item for add (the inserted item) and delete (the removed one,
	// done flag included).
	Item model.Item

	// ID plus prior fields for toggleDone and edit.
	ID           string
	PrevDone     bool
	PrevName     string
	PrevCategory string
}

// Countdown is how long an armed undo stays available.
const Countdown = 6 * time.Second

// Undo holds at most one pending undoable action. Arming replaces any
// pending action without running it; firing consumes it; an expiry for
// a superseded generation is ignored. The controller keeps no timer of
// its own: the caller schedules the countdown and reports expiry with
// the generation Arm returned, which keeps everything on the caller's
// event loop.
type Undo struct {
	mu      sync.Mutex
	gen     int
	message string
	action  *UndoAction
}

func NewUndo() *Undo { return &Undo{} }

// Arm replaces the pending action and returns the generation token the
// caller hands back to Expire when the countdown runs out.
func (u *Undo) Arm(message string, a UndoAction) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.gen++
	u.message = message
	u.action = &a
	return u.gen
}

// Fire consumes the pending action. ok is false when nothing is
// pending, which makes a double fire a no-op.
func (u *Undo) Fire() (a UndoAction, ok bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.action == nil {
		return UndoAction{}, false
	}
	a = *u.action
	u.action = nil
	u.message = ""
	u.gen++ // any outstanding countdown is now stale
	return a, true
}

// Expire silently discards the pending action if gen is still current;
// expiries for superseded or fired actions do nothing.
func (u *Undo) Expire(gen int) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.action == nil || gen != u.gen {
		return false
	}
	u.action = nil
	u.message = ""
	return true
}

// Pending returns the toast message, if an action is waiting.
func (u *Undo) Pending() (message string, ok bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.message, u.action != nil
}
