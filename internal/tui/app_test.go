package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handla/internal/engine"
	"handla/internal/model"
)

func newTestModel() Model {
	return New(Deps{Engine: engine.New(engine.NewItemStore(), nil, "l1", nil)})
}

func TestUndoToastExpiry(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(addDoneMsg{res: engine.AddResult{
		Item: model.Item{ID: "1", Name: "Mjölk"},
		Undo: &engine.UndoAction{Kind: engine.UndoAdd, Item: model.Item{ID: "1"}},
	}})
	m = next.(Model)
	require.Equal(t, "Item added", m.toast)

	// A stale generation must not clear a newer toast.
	next, _ = m.Update(undoExpireMsg{gen: 0})
	m = next.(Model)
	assert.Equal(t, "Item added", m.toast)

	next, _ = m.Update(undoExpireMsg{gen: 1})
	m = next.(Model)
	assert.Empty(t, m.toast)
	_, pending := m.undo.Pending()
	assert.False(t, pending)
}

func TestDuplicateAddShowsNotice(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(addDoneMsg{duplicate: true, err: engine.ErrDuplicate})
	m = next.(Model)
	assert.Equal(t, "Already on the list", m.notice)
	assert.False(t, m.noticeErr)
	assert.Empty(t, m.toast)
}

func TestFailedAddShowsError(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(addDoneMsg{err: errors.New("io")})
	m = next.(Model)
	assert.Equal(t, "Couldn't save to the database", m.notice)
	assert.True(t, m.noticeErr)
}

func TestNoticeFadeIgnoresStaleGeneration(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(addDoneMsg{duplicate: true, err: engine.ErrDuplicate})
	m = next.(Model)
	first := m.noticeGen

	next, _ = m.Update(addDoneMsg{res: engine.AddResult{Reactivated: true}})
	m = next.(Model)
	require.Equal(t, "Moved back to the list", m.notice)

	next, _ = m.Update(noticeFadeMsg{gen: first})
	m = next.(Model)
	assert.Equal(t, "Moved back to the list", m.notice)

	next, _ = m.Update(noticeFadeMsg{gen: m.noticeGen})
	m = next.(Model)
	assert.Empty(t, m.notice)
}

func TestReactivationArmsNoUndo(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(addDoneMsg{res: engine.AddResult{
		Item:        model.Item{ID: "1", Name: "Mjölk"},
		Reactivated: true,
	}})
	m = next.(Model)
	assert.Empty(t, m.toast)
	_, pending := m.undo.Pending()
	assert.False(t, pending)
}
