// Package tui implements the interactive shopping-list screen: a grouped
// item view with mouse swipe gestures, inline add with suggestions, inline
// edit, a single-slot undo toast and a share dialog.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"handla/internal/engine"
	"handla/internal/gesture"
	"handla/internal/model"
	"handla/internal/session"
	"handla/internal/store"
	"handla/internal/suggest"
)

// Terminal cells are not pixels. Gesture thresholds are pixel-denominated,
// so pointer coordinates are scaled before they reach the tracker. A cell
// is roughly twice as tall as it is wide.
const (
	cellPxX = 10
	cellPxY = 20
)

const (
	frameInterval = time.Second / 60
	noticeTimeout = 1800 * time.Millisecond
)

// Deps carries everything the screen needs; cmd/handla assembles it.
type Deps struct {
	Engine  *engine.Engine
	Remote  store.Remote
	Session session.Store
	Lists   []model.List
	Active  model.List
	Corpus  []string
	User    string
	Log     *zap.Logger
}

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeShare
)

// Model is the Bubble Tea model for the whole screen.
type Model struct {
	eng     *engine.Engine
	remote  store.Remote
	sess    session.Store
	undo    *engine.Undo
	tracker *gesture.Tracker
	log     *zap.Logger

	lists  []model.List
	active model.List
	user   string

	corpus   []string
	filtered []string
	dropSel  int // -1 when nothing highlighted

	input   textinput.Model // persistent add field
	ti      textinput.Model // shared by edit and share
	mode    mode
	editing string // item id while mode == modeEdit

	spin    spinner.Model
	loading bool

	notice    string
	noticeErr bool
	noticeGen int

	toast    string // undo toast text, empty when no slot armed
	fatalErr error

	width, height int
	quitting      bool
}

func New(d Deps) Model {
	in := textinput.New()
	in.Placeholder = "Add an item..."
	in.Prompt = "> "
	in.CharLimit = 120
	in.Focus()

	ti := textinput.New()
	ti.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	lg := d.Log
	if lg == nil {
		lg = zap.NewNop()
	}

	return Model{
		eng:     d.Engine,
		remote:  d.Remote,
		sess:    d.Session,
		undo:    engine.NewUndo(),
		tracker: gesture.NewTracker(),
		log:     lg,
		lists:   d.Lists,
		active:  d.Active,
		user:    d.User,
		corpus:  d.Corpus,
		dropSel: -1,
		input:   in,
		ti:      ti,
		spin:    sp,
		loading: true,
		width:   80,
		height:  24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spin.Tick, textinput.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case frameMsg:
		m.tracker.Flush()
		return m, nil

	case itemsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.fatalErr = msg.err
		}
		return m, nil

	case addDoneMsg:
		return m.onAddDone(msg)

	case toggleDoneMsg:
		return m.onToggleDone(msg)

	case editDoneMsg:
		return m.onEditDone(msg)

	case deleteDoneMsg:
		return m.onDeleteDone(msg)

	case undoDoneMsg:
		if msg.err != nil {
			return m.showError("Couldn't undo (database error)")
		}
		return m.showNotice(msg.what)

	case undoExpireMsg:
		if m.undo.Expire(msg.gen) {
			m.toast = ""
		}
		return m, nil

	case noticeFadeMsg:
		if msg.gen == m.noticeGen {
			m.notice = ""
		}
		return m, nil

	case inviteDoneMsg:
		m.mode = modeBrowse
		m.ti.Blur()
		m.input.Focus()
		if msg.err != nil {
			if msg.lookupMiss {
				return m.showError("No user with that email. Ask them to sign in first.")
			}
			return m.showError("Couldn't share the list")
		}
		return m.showNotice("List shared with " + msg.email)

	case listSwitchedMsg:
		if msg.err != nil {
			return m.showError("Couldn't open the list")
		}
		m.eng = msg.eng
		m.active = msg.list
		m.undo = engine.NewUndo()
		m.toast = ""
		m.tracker = gesture.NewTracker()
		if err := m.sess.Save(session.State{ActiveListID: msg.list.ID}); err != nil {
			m.log.Warn("session save failed", zap.Error(err))
		}
		return m.showNotice("Switched to " + msg.list.Name)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeEdit:
		return m.updateEditKey(msg)
	case modeShare:
		return m.updateShareKey(msg)
	}

	switch msg.String() {
	case "esc":
		if len(m.filtered) > 0 {
			m.closeDropdown()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case "ctrl+z":
		return m.fireUndo()

	case "ctrl+s":
		m.mode = modeShare
		m.ti.Reset()
		m.ti.Placeholder = "friend@example.com"
		m.ti.Focus()
		m.input.Blur()
		return m, textinput.Blink

	case "ctrl+l":
		return m.cycleList()

	case "down":
		if len(m.filtered) > 0 {
			if m.dropSel < len(m.filtered)-1 {
				m.dropSel++
			}
			return m, nil
		}

	case "up":
		if len(m.filtered) > 0 && m.dropSel >= 0 {
			m.dropSel--
			return m, nil
		}

	case "enter":
		if m.dropSel >= 0 && m.dropSel < len(m.filtered) {
			name := m.filtered[m.dropSel]
			m.input.Reset()
			m.closeDropdown()
			return m, tea.Batch(m.addCmd(name, false), frameCmd())
		}
		raw := m.input.Value()
		if strings.TrimSpace(raw) == "" {
			return m, nil
		}
		m.input.Reset()
		m.closeDropdown()
		return m, tea.Batch(m.addCmd(raw, true), frameCmd())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

func (m Model) updateEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopEditing()
		return m, nil
	case "enter":
		id := m.editing
		raw := m.ti.Value()
		m.stopEditing()
		if strings.TrimSpace(raw) == "" {
			return m, nil
		}
		return m, tea.Batch(m.editCmd(id, raw), frameCmd())
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) updateShareKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.ti.Blur()
		m.input.Focus()
		return m, nil
	case "enter":
		email := strings.TrimSpace(m.ti.Value())
		if email == "" {
			return m, nil
		}
		return m, m.inviteCmd(email)
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) refilter() {
	m.filtered = suggest.Filter(m.input.Value(), m.corpus)
	if m.dropSel >= len(m.filtered) {
		m.dropSel = len(m.filtered) - 1
	}
}

func (m *Model) closeDropdown() {
	m.filtered = nil
	m.dropSel = -1
}

func (m *Model) startEditing(id string) {
	it, ok := m.eng.Items().Get(id)
	if !ok || it.Done {
		return
	}
	m.mode = modeEdit
	m.editing = id
	m.ti.Reset()
	m.ti.Placeholder = ""
	m.ti.SetValue(it.Name)
	m.ti.CursorEnd()
	m.ti.Focus()
	m.input.Blur()
}

func (m *Model) stopEditing() {
	m.mode = modeBrowse
	m.editing = ""
	m.ti.Blur()
	m.input.Focus()
}

func (m Model) cycleList() (tea.Model, tea.Cmd) {
	if len(m.lists) < 2 {
		return m, nil
	}
	next := m.lists[0]
	for i, l := range m.lists {
		if l.ID == m.active.ID {
			next = m.lists[(i+1)%len(m.lists)]
			break
		}
	}
	return m, m.switchListCmd(next)
}

func (m Model) fireUndo() (tea.Model, tea.Cmd) {
	action, ok := m.undo.Fire()
	if !ok {
		return m, nil
	}
	m.toast = ""
	return m, tea.Batch(m.compensateCmd(action), frameCmd())
}

// armUndo places an action in the slot and schedules its expiry.
func (m *Model) armUndo(message string, a engine.UndoAction) tea.Cmd {
	gen := m.undo.Arm(message, a)
	m.toast = message
	return tea.Tick(engine.Countdown, func(time.Time) tea.Msg {
		return undoExpireMsg{gen: gen}
	})
}

func (m Model) showNotice(text string) (tea.Model, tea.Cmd) {
	m.notice = text
	m.noticeErr = false
	m.noticeGen++
	gen := m.noticeGen
	return m, tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return noticeFadeMsg{gen: gen}
	})
}

func (m Model) showError(text string) (tea.Model, tea.Cmd) {
	next, cmd := m.showNotice(text)
	mm := next.(Model)
	mm.noticeErr = true
	return mm, cmd
}

func (m Model) onAddDone(msg addDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if msg.duplicate {
			return m.showNotice("Already on the list")
		}
		return m.showError("Couldn't save to the database")
	}
	var cmds []tea.Cmd
	if msg.res.FocusAfter {
		cmds = append(cmds, m.input.Focus())
	}
	if msg.res.Undo != nil {
		cmds = append(cmds, m.armUndo("Item added", *msg.res.Undo))
	}
	if msg.res.Reactivated {
		next, cmd := m.showNotice("Moved back to the list")
		mm := next.(Model)
		cmds = append(cmds, cmd)
		return mm, tea.Batch(cmds...)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) onToggleDone(msg toggleDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.showError("Couldn't save to the database")
	}
	if msg.undo == nil {
		return m, nil
	}
	text := "Marked as bought"
	if msg.undo.PrevDone {
		text = "Back on the list"
	}
	return m, m.armUndo(text, *msg.undo)
}

func (m Model) onEditDone(msg editDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if msg.duplicate {
			return m.showNotice("Already on the list")
		}
		return m.showError("Couldn't save to the database")
	}
	if msg.res.Undo == nil {
		return m, nil
	}
	text := "Change saved"
	if msg.res.Merged {
		text = "Merged with a bought item"
	}
	return m, m.armUndo(text, *msg.res.Undo)
}

func (m Model) onDeleteDone(msg deleteDoneMsg) (tea.Model, tea.Cmd) {
	m.tracker.Evict(msg.id)
	if msg.err != nil {
		return m.showError("Couldn't delete from the database")
	}
	if msg.undo == nil {
		return m, nil
	}
	return m, m.armUndo("Item deleted", *msg.undo)
}
