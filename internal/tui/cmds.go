package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"handla/internal/engine"
	"handla/internal/lists"
	"handla/internal/model"
	"handla/internal/store"
)

type (
	itemsLoadedMsg struct{ err error }

	addDoneMsg struct {
		res       engine.AddResult
		duplicate bool
		err       error
	}

	toggleDoneMsg struct {
		undo *engine.UndoAction
		err  error
	}

	editDoneMsg struct {
		res       engine.EditResult
		duplicate bool
		err       error
	}

	deleteDoneMsg struct {
		id   string
		undo *engine.UndoAction
		err  error
	}

	undoDoneMsg struct {
		what string
		err  error
	}

	inviteDoneMsg struct {
		email      string
		lookupMiss bool
		err        error
	}

	listSwitchedMsg struct {
		list model.List
		eng  *engine.Engine
		err  error
	}

	// frameMsg drains coalesced gesture offsets, one per queued frame.
	frameMsg struct{}

	undoExpireMsg struct{ gen int }
	noticeFadeMsg struct{ gen int }
)

// frameCmd schedules a frameMsg one frame out. It drains coalesced
// gesture offsets and also serves as a plain repaint after an optimistic
// mutation is dispatched, so the local change shows before the remote
// call resolves.
func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m *Model) loadCmd() tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		return itemsLoadedMsg{err: eng.Load(context.Background())}
	}
}

func (m *Model) addCmd(raw string, focusAfter bool) tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		res, err := eng.Add(context.Background(), raw, focusAfter)
		return addDoneMsg{
			res:       res,
			duplicate: errors.Is(err, engine.ErrDuplicate),
			err:       err,
		}
	}
}

func (m *Model) toggleCmd(id string) tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		undo, err := eng.ToggleDone(context.Background(), id)
		return toggleDoneMsg{undo: undo, err: err}
	}
}

func (m *Model) editCmd(id, raw string) tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		res, err := eng.Edit(context.Background(), id, raw)
		return editDoneMsg{
			res:       res,
			duplicate: errors.Is(err, engine.ErrDuplicate),
			err:       err,
		}
	}
}

func (m *Model) deleteCmd(id string) tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		undo, err := eng.Delete(context.Background(), id)
		return deleteDoneMsg{id: id, undo: undo, err: err}
	}
}

func (m *Model) compensateCmd(a engine.UndoAction) tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		err := eng.Compensate(context.Background(), a)
		return undoDoneMsg{what: undoText(a.Kind), err: err}
	}
}

func undoText(k engine.UndoKind) string {
	switch k {
	case engine.UndoAdd:
		return "Undone: item removed"
	case engine.UndoDelete:
		return "Undone: item restored"
	case engine.UndoToggleDone:
		return "Undone: status restored"
	case engine.UndoEdit:
		return "Undone: change reverted"
	}
	return "Undone"
}

func (m *Model) inviteCmd(email string) tea.Cmd {
	remote := m.remote
	listID := m.active.ID
	return func() tea.Msg {
		err := lists.Invite(context.Background(), remote, listID, email)
		return inviteDoneMsg{
			email:      email,
			lookupMiss: errors.Is(err, store.ErrUserNotFound),
			err:        err,
		}
	}
}

func (m *Model) switchListCmd(l model.List) tea.Cmd {
	remote := m.remote
	log := m.log
	return func() tea.Msg {
		eng := engine.New(engine.NewItemStore(), remote, l.ID, log)
		if err := eng.Load(context.Background()); err != nil {
			log.Error("list switch failed", zap.String("list", l.ID), zap.Error(err))
			return listSwitchedMsg{err: err}
		}
		return listSwitchedMsg{list: l, eng: eng}
	}
}
