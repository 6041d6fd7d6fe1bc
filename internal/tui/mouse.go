package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"handla/internal/gesture"
)

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.mousePress(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if m.mode != modeBrowse {
			return m, nil
		}
		if _, ok := m.tracker.Tracking(); !ok {
			return m, nil
		}
		if m.tracker.Move(msg.X*cellPxX, msg.Y*cellPxY) {
			return m, frameCmd()
		}
		return m, nil

	case tea.MouseActionRelease:
		res := m.tracker.Release()
		if res.Kind == gesture.Delete {
			return m, tea.Batch(m.deleteCmd(res.ID), frameCmd())
		}
		return m, frameCmd()
	}
	return m, nil
}

func (m Model) mousePress(x, y int) (tea.Model, tea.Cmd) {
	if m.mode == modeShare || m.loading || m.fatalErr != nil {
		return m, nil
	}
	if m.mode == modeEdit {
		// A press anywhere else cancels the inline edit.
		m.stopEditing()
		return m, nil
	}

	// Bottom bar doubles as the undo button while the toast is up.
	if y == m.height-1 && m.toast != "" {
		return m.fireUndo()
	}

	// Dropdown rows sit directly under the notice line.
	if n := len(m.filtered); n > 0 && y >= contentTop && y < contentTop+n {
		name := m.filtered[y-contentTop]
		m.input.Reset()
		m.closeDropdown()
		return m, tea.Batch(m.addCmd(name, false), frameCmd())
	}
	// Resolve the row before closing the dropdown: the click coordinates
	// belong to the frame that still showed the dropdown lines.
	it, ok := m.itemAt(y)
	m.closeDropdown()
	if !ok {
		m.tracker.PressOutside()
		return m, frameCmd()
	}

	// Pressing any other row counts as pressing outside the open one.
	if open := m.tracker.OpenID(); open != "" && open != it.ID {
		m.tracker.Evict(open)
	}

	// Open rows expose the delete zone on the right edge; a press there
	// deletes instead of starting a new drag.
	if off := m.tracker.Offset(it.ID); off < 0 {
		reveal := -off / cellPxX
		if x >= m.width-reveal {
			return m, tea.Batch(m.deleteCmd(it.ID), frameCmd())
		}
	}

	switch {
	case x < 2: // checkbox
		return m, tea.Batch(m.toggleCmd(it.ID), frameCmd())
	case x >= m.width-2 && m.tracker.Offset(it.ID) == 0:
		if it.Done {
			return m, tea.Batch(m.deleteCmd(it.ID), frameCmd())
		}
		m.startEditing(it.ID)
		return m, nil
	}

	m.tracker.Press(it.ID, x*cellPxX, y*cellPxY)
	return m, frameCmd()
}
