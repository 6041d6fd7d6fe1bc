package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// drag presses at (200, 10) and moves horizontally by dx.
func drag(t *Tracker, id string, dx int) {
	t.Press(id, 200, 10)
	t.Move(200+dx, 10)
}

func TestReleaseClassification(t *testing.T) {
	tests := []struct {
		name       string
		dx         int
		want       Kind
		wantOffset int // published offset for the row after release
	}{
		{name: "short drag snaps closed", dx: -59, want: Closed, wantOffset: 0},
		{name: "exactly the open threshold opens", dx: -60, want: Open, wantOffset: -OpenOffset},
		{name: "past open stays open", dx: -100, want: Open, wantOffset: -OpenOffset},
		{name: "delete threshold deletes", dx: -140, want: Delete, wantOffset: 0},
		{name: "overdrag clamps and deletes", dx: -400, want: Delete, wantOffset: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			drag(tr, "a", tt.dx)
			res := tr.Release()
			assert.Equal(t, tt.want, res.Kind)
			assert.Equal(t, "a", res.ID)
			assert.Equal(t, tt.wantOffset, tr.Offset("a"))
		})
	}
}

func TestOffsetClamped(t *testing.T) {
	tr := NewTracker()
	tr.Press("a", 200, 10)

	tr.Move(200-500, 10)
	tr.Flush()
	assert.Equal(t, -DeleteThreshold, tr.Offset("a"), "clamped at the delete threshold")

	tr.Move(200+500, 10)
	tr.Flush()
	assert.Equal(t, 0, tr.Offset("a"), "never drags right of zero")
}

func TestDeadZoneIgnoresJitter(t *testing.T) {
	tr := NewTracker()
	tr.Press("a", 200, 10)
	tr.Move(197, 12) // 3px left, 2px down: inside the dead zone
	res := tr.Release()
	assert.Equal(t, Closed, res.Kind)
	assert.Equal(t, 0, tr.Offset("a"))
}

func TestVerticalMovementAbandonsGesture(t *testing.T) {
	tr := NewTracker()
	tr.Press("a", 200, 10)
	tr.Move(195, 30) // |dy| > |dx|: this is a scroll

	_, tracking := tr.Tracking()
	assert.False(t, tracking, "gesture abandoned")
	res := tr.Release()
	assert.Equal(t, None, res.Kind)
	assert.Equal(t, 0, tr.Offset("a"))
}

func TestOpenRowStartsFromOpenOffset(t *testing.T) {
	tr := NewTracker()
	drag(tr, "a", -80)
	assert.Equal(t, Open, tr.Release().Kind)

	// Dragging the open row 50px right: -96+50 = -46, below the open
	// threshold, so it snaps closed.
	drag(tr, "a", 50)
	res := tr.Release()
	assert.Equal(t, Closed, res.Kind)
	assert.Equal(t, 0, tr.Offset("a"))
}

func TestTapOnOpenRowKeepsItOpen(t *testing.T) {
	tr := NewTracker()
	drag(tr, "a", -80)
	tr.Release()

	// Press and release with no movement: starts at -96, stays open.
	tr.Press("a", 200, 10)
	res := tr.Release()
	assert.Equal(t, Open, res.Kind)
	assert.Equal(t, -OpenOffset, tr.Offset("a"))
}

func TestOutsidePressClosesOpenRow(t *testing.T) {
	tr := NewTracker()
	drag(tr, "a", -80)
	tr.Release()
	assert.Equal(t, "a", tr.OpenID())

	tr.PressOutside()
	assert.Equal(t, "", tr.OpenID())
	assert.Equal(t, 0, tr.Offset("a"))
}

func TestOutsidePressIgnoredWhileTracking(t *testing.T) {
	tr := NewTracker()
	drag(tr, "a", -80)
	tr.Release()

	tr.Press("b", 200, 10)
	tr.PressOutside()
	assert.Equal(t, "a", tr.OpenID(), "open row survives while another row is dragged")
}

func TestFrameCoalescing(t *testing.T) {
	tr := NewTracker()
	tr.Press("a", 200, 10)

	assert.True(t, tr.Move(190, 10), "first move past the dead zone wants a frame")
	assert.False(t, tr.Move(180, 10), "second move rides the queued frame")
	assert.False(t, tr.Move(170, 10))

	// Nothing published until the frame lands; then only the latest.
	assert.Equal(t, 0, tr.Offset("a"))
	tr.Flush()
	assert.Equal(t, -30, tr.Offset("a"))

	assert.True(t, tr.Move(160, 10), "next move queues a fresh frame")
}

func TestEvictClearsRowState(t *testing.T) {
	tr := NewTracker()
	drag(tr, "a", -80)
	tr.Release()

	tr.Evict("a")
	assert.Equal(t, "", tr.OpenID())
	assert.Equal(t, 0, tr.Offset("a"))
}
