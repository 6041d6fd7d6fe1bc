// Package engine keeps the in-memory item state consistent with the
// remote store under asynchronous, possibly-failing operations. Every
// mutation follows the same shape: validate locally, apply the
// optimistic change, persist remotely, then reconcile with the server
// record on success or roll the optimistic change back on failure. On
// failure the item store is left exactly as it was before the call.
//
// Callers must not issue a second mutation for an id while one is in
// flight; the engine does not enforce this.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"handla/internal/category"
	"handla/internal/model"
	"handla/internal/store"
)

var (
	// ErrDuplicate: a non-done item with the same normalized name
	// already exists. No remote call was made.
	ErrDuplicate = errors.New("already on the list")
	// ErrEmptyName: the trimmed input was empty.
	ErrEmptyName = errors.New("empty name")
	// ErrNoSuchItem: the id is not in the item store.
	ErrNoSuchItem = errors.New("no such item")
)

// Engine performs all item mutations for the active list.
type Engine struct {
	items  *ItemStore
	remote store.Remote
	listID string
	log    *zap.Logger
}

func New(items *ItemStore, remote store.Remote, listID string, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{items: items, remote: remote, listID: listID, log: log}
}

// Items exposes the item store for rendering.
func (e *Engine) Items() *ItemStore { return e.items }

// ListID is the active list this engine mutates.
func (e *Engine) ListID() string { return e.listID }

// Load replaces the item store with the remote snapshot of the active
// list.
func (e *Engine) Load(ctx context.Context) error {
	items, err := e.remote.ItemsByList(ctx, e.listID)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	e.items.Replace(items)
	return nil
}

// AddResult reports what Add did.
type AddResult struct {
	Item model.Item
	// Reactivated is true when a done item with the same normalized
	// name was brought back instead of inserting a new row.
	Reactivated bool
	// Undo is the record to arm, nil for reactivation.
	Undo *UndoAction
	// FocusAfter echoes the per-call option back to the caller, which
	// consumes it once to decide whether to refocus the input.
	FocusAfter bool
}

// Add inserts a new item, or reactivates a done one with the same
// normalized name. Rejects with ErrDuplicate when a non-done duplicate
// exists.
func (e *Engine) Add(ctx context.Context, raw string, focusAfter bool) (AddResult, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return AddResult{}, ErrEmptyName
	}
	norm := category.Normalize(name)

	if _, exists := e.items.findActive(norm, ""); exists {
		return AddResult{}, fmt.Errorf("add %q: %w", name, ErrDuplicate)
	}

	cat := category.Classify(name)

	// A done item with the same normalized name becomes a
	// reactivation: untoggle and refresh it remotely, take the server
	// record's fields locally. No undo record here.
	if done, ok := e.items.findDone(norm, ""); ok {
		notDone := false
		rec, err := e.remote.UpdateItem(ctx, done.ID, store.ItemPatch{
			Name: &name, Category: &cat, Done: &notDone,
		})
		if err != nil {
			e.log.Warn("reactivate failed", zap.String("id", done.ID), zap.Error(err))
			return AddResult{}, fmt.Errorf("reactivate %q: %w", name, err)
		}
		e.items.apply(done.ID, func(it *model.Item) { *it = rec })
		e.log.Info("item reactivated", zap.String("id", rec.ID), zap.String("name", rec.Name))
		return AddResult{Item: rec, Reactivated: true, FocusAfter: focusAfter}, nil
	}

	rec, err := e.remote.InsertItem(ctx, store.ItemRow{
		ListID: e.listID, Name: name, Category: cat,
	})
	if err != nil {
		e.log.Warn("insert failed", zap.String("name", name), zap.Error(err))
		return AddResult{}, fmt.Errorf("add %q: %w", name, err)
	}
	e.items.insertFront(rec)
	e.log.Info("item added", zap.String("id", rec.ID), zap.String("name", rec.Name))
	return AddResult{
		Item:       rec,
		Undo:       &UndoAction{Kind: UndoAdd, Item: rec},
		FocusAfter: focusAfter,
	}, nil
}

// ToggleDone flips the done flag optimistically and persists it. On
// remote failure the flip is rolled back.
func (e *Engine) ToggleDone(ctx context.Context, id string) (*UndoAction, error) {
	target, ok := e.items.Get(id)
	if !ok {
		return nil, ErrNoSuchItem
	}
	prev := target.Done
	next := !prev

	e.items.apply(id, func(it *model.Item) { it.Done = next })

	if _, err := e.remote.UpdateItem(ctx, id, store.ItemPatch{Done: &next}); err != nil {
		e.items.apply(id, func(it *model.Item) { it.Done = prev })
		e.log.Warn("toggle failed, rolled back", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("toggle %s: %w", id, err)
	}
	e.log.Info("item toggled", zap.String("id", id), zap.Bool("done", next))
	return &UndoAction{Kind: UndoToggleDone, ID: id, PrevDone: prev}, nil
}

// EditResult reports what Edit did.
type EditResult struct {
	// Merged is true when the rename collided with a done item: that
	// item was reactivated under the new name and the edited item was
	// deleted.
	Merged bool
	Undo   *UndoAction
}

// Edit renames an item (the category follows the new name). Rejects
// with ErrDuplicate when another non-done item holds the normalized
// name; merges into a done item holding it.
func (e *Engine) Edit(ctx context.Context, id, raw string) (EditResult, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return EditResult{}, ErrEmptyName
	}
	before, ok := e.items.Get(id)
	if !ok {
		return EditResult{}, ErrNoSuchItem
	}
	norm := category.Normalize(name)

	if _, exists := e.items.findActive(norm, id); exists {
		return EditResult{}, fmt.Errorf("edit %q: %w", name, ErrDuplicate)
	}

	cat := category.Classify(name)

	if done, ok := e.items.findDone(norm, id); ok {
		// Merge: reactivate the done item under the new name, drop the
		// one being edited to avoid a duplicate. Undo restores the
		// survivor to done.
		notDone := false
		rec, err := e.remote.UpdateItem(ctx, done.ID, store.ItemPatch{
			Name: &name, Category: &cat, Done: &notDone,
		})
		if err != nil {
			e.log.Warn("merge reactivate failed", zap.String("id", done.ID), zap.Error(err))
			return EditResult{}, fmt.Errorf("edit merge %q: %w", name, err)
		}
		if err := e.remote.DeleteItem(ctx, id); err != nil {
			e.log.Warn("merge delete failed", zap.String("id", id), zap.Error(err))
			return EditResult{}, fmt.Errorf("edit merge delete: %w", err)
		}
		e.items.apply(done.ID, func(it *model.Item) { *it = rec })
		e.items.remove(id)
		e.log.Info("items merged", zap.String("kept", done.ID), zap.String("dropped", id))
		return EditResult{
			Merged: true,
			Undo:   &UndoAction{Kind: UndoToggleDone, ID: done.ID, PrevDone: true},
		}, nil
	}

	rec, err := e.remote.UpdateItem(ctx, id, store.ItemPatch{Name: &name, Category: &cat})
	if err != nil {
		e.log.Warn("edit failed", zap.String("id", id), zap.Error(err))
		return EditResult{}, fmt.Errorf("edit %s: %w", id, err)
	}
	e.items.apply(id, func(it *model.Item) { *it = rec })
	e.log.Info("item edited", zap.String("id", id), zap.String("name", rec.Name))
	return EditResult{
		Undo: &UndoAction{
			Kind: UndoEdit, ID: id,
			PrevName: before.Name, PrevCategory: before.Category,
		},
	}, nil
}

// Delete removes the item optimistically and persists the deletion. On
// remote failure the item is restored to the front of the store.
func (e *Engine) Delete(ctx context.Context, id string) (*UndoAction, error) {
	target, ok := e.items.Get(id)
	if !ok {
		return nil, ErrNoSuchItem
	}
	e.items.remove(id)

	if err := e.remote.DeleteItem(ctx, id); err != nil {
		e.items.insertFront(target)
		e.log.Warn("delete failed, restored", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("delete %s: %w", id, err)
	}
	e.log.Info("item deleted", zap.String("id", id), zap.String("name", target.Name))
	// The full item travels with the record so undo restores it to the
	// right section.
	return &UndoAction{Kind: UndoDelete, Item: target}, nil
}

// Compensate inverts a fired undo action. Failures are for the caller
// to report; they are not retried and nothing is re-armed.
func (e *Engine) Compensate(ctx context.Context, a UndoAction) error {
	switch a.Kind {
	case UndoAdd:
		e.items.remove(a.Item.ID)
		if err := e.remote.DeleteItem(ctx, a.Item.ID); err != nil {
			return fmt.Errorf("undo add: %w", err)
		}
	case UndoDelete:
		// Re-insert; the store assigns a fresh id.
		rec, err := e.remote.InsertItem(ctx, store.ItemRow{
			ListID:   e.listID,
			Name:     a.Item.Name,
			Category: a.Item.Category,
			Done:     a.Item.Done,
		})
		if err != nil {
			return fmt.Errorf("undo delete: %w", err)
		}
		e.items.insertFront(rec)
	case UndoToggleDone:
		prev := a.PrevDone
		e.items.apply(a.ID, func(it *model.Item) { it.Done = prev })
		if _, err := e.remote.UpdateItem(ctx, a.ID, store.ItemPatch{Done: &prev}); err != nil {
			return fmt.Errorf("undo toggle: %w", err)
		}
	case UndoEdit:
		name, cat := a.PrevName, a.PrevCategory
		e.items.apply(a.ID, func(it *model.Item) {
			it.Name = name
			it.Category = cat
		})
		if _, err := e.remote.UpdateItem(ctx, a.ID, store.ItemPatch{Name: &name, Category: &cat}); err != nil {
			return fmt.Errorf("undo edit: %w", err)
		}
	}
	e.log.Info("undo applied", zap.String("kind", a.Kind.String()))
	return nil
}
