// Package store defines the narrow data-access interface the rest of
// the app talks to, plus its SQLite implementation. Everything above
// this package treats the store as a remote collaborator: every call
// takes a context and may fail, and failures come back as errors, never
// panics.
package store

import (
	"context"
	"errors"

	"handla/internal/model"
)

var (
	// ErrNotFound is returned when an item or list id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUserNotFound is returned by UserIDByEmail when no user has
	// the given email.
	ErrUserNotFound = errors.New("user not found")
)

// ItemRow is the insert payload for a new item.
type ItemRow struct {
	ListID   string
	Name     string
	Category string
	Done     bool
}

// ItemPatch is a partial update; nil fields are left untouched.
type ItemPatch struct {
	Name     *string
	Category *string
	Done     *bool
}

// Remote is the capability set the mutation engine and the app consume.
// All calls are request/response; ItemsByList returns records ordered
// by creation time descending.
type Remote interface {
	InsertItem(ctx context.Context, row ItemRow) (model.Item, error)
	UpdateItem(ctx context.Context, id string, patch ItemPatch) (model.Item, error)
	DeleteItem(ctx context.Context, id string) error
	ItemsByList(ctx context.Context, listID string) ([]model.Item, error)

	ListsForUser(ctx context.Context, userID string) ([]model.List, error)
	CreateList(ctx context.Context, name, ownerID string) (model.List, error)
	UpsertMember(ctx context.Context, m model.Membership) error

	UserIDByEmail(ctx context.Context, email string) (string, error)
}
