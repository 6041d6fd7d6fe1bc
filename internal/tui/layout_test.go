package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handla/internal/engine"
	"handla/internal/model"
)

func item(id, name, cat string, done bool, age time.Duration) model.Item {
	return model.Item{
		ID:        id,
		Name:      name,
		Category:  cat,
		Done:      done,
		CreatedAt: time.Now().Add(-age),
	}
}

func TestContentLinesGroupsByFirstAppearance(t *testing.T) {
	// Newest first, as the store hands them out.
	items := []model.Item{
		item("1", "Mjölk", "Dairy", false, 0),
		item("2", "Äpple", "Produce", false, time.Minute),
		item("3", "Ost", "Dairy", false, 2*time.Minute),
		item("4", "Bröd", "Bread", true, 3*time.Minute),
	}

	ls := contentLines(items)

	var headers []string
	var names []string
	for _, l := range ls {
		switch l.kind {
		case lineHeader:
			headers = append(headers, l.text)
		case lineItem:
			names = append(names, l.item.Name)
		}
	}
	assert.Equal(t, []string{"Dairy", "Produce", "Bought"}, headers)
	assert.Equal(t, []string{"Mjölk", "Ost", "Äpple", "Bröd"}, names)
}

func TestContentLinesEmptyHints(t *testing.T) {
	ls := contentLines(nil)
	require.Len(t, ls, 3)
	assert.Equal(t, "The list is empty.", ls[0].text)
	assert.Equal(t, "Bought", ls[1].text)
	assert.Equal(t, "Nothing bought yet.", ls[2].text)
}

func TestItemAtAccountsForDropdown(t *testing.T) {
	st := engine.NewItemStore()
	st.Replace([]model.Item{item("1", "Mjölk", "Dairy", false, 0)})
	m := New(Deps{Engine: engine.New(st, nil, "l1", nil)})

	// No dropdown: header at contentTop, item right under it.
	_, ok := m.itemAt(contentTop)
	assert.False(t, ok)
	it, ok := m.itemAt(contentTop + 1)
	require.True(t, ok)
	assert.Equal(t, "1", it.ID)

	// Two suggestion rows push the content down by two.
	m.filtered = []string{"mjölk", "mjöl"}
	_, ok = m.itemAt(contentTop + 1)
	assert.False(t, ok)
	it, ok = m.itemAt(contentTop + 3)
	require.True(t, ok)
	assert.Equal(t, "1", it.ID)
}

func TestClipRunes(t *testing.T) {
	assert.Equal(t, " ✖ d", clipRunes(" ✖ delete", 4))
	assert.Equal(t, " ✖ delete ", clipRunes(" ✖ delete", 10))
}
