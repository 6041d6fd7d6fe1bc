// Package lists covers list membership: loading the user's lists
// (creating a default on first run), choosing the active one, and
// sharing by email.
package lists

import (
	"context"
	"fmt"
	"strings"

	"handla/internal/model"
	"handla/internal/store"
)

// DefaultName is the list created for a user with no lists.
const DefaultName = "My list"

// LoadOrCreate returns the user's lists, bootstrapping a default list
// with an owner membership when there are none.
func LoadOrCreate(ctx context.Context, remote store.Remote, userID string) ([]model.List, error) {
	ls, err := remote.ListsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load lists: %w", err)
	}
	if len(ls) > 0 {
		return ls, nil
	}

	l, err := remote.CreateList(ctx, DefaultName, userID)
	if err != nil {
		return nil, fmt.Errorf("create default list: %w", err)
	}
	err = remote.UpsertMember(ctx, model.Membership{
		ListID: l.ID, UserID: userID, Role: model.RoleOwner,
	})
	if err != nil {
		return nil, fmt.Errorf("add owner membership: %w", err)
	}
	return []model.List{l}, nil
}

// PickActive chooses the active list: the saved id when it still
// exists, otherwise the first list.
func PickActive(ls []model.List, savedID string) (model.List, bool) {
	if len(ls) == 0 {
		return model.List{}, false
	}
	for _, l := range ls {
		if l.ID == savedID {
			return l, true
		}
	}
	return ls[0], true
}

// Invite shares a list with the user behind email as a member. A
// missing user surfaces as store.ErrUserNotFound with no mutation
// attempted; inviting an existing member is a no-op.
func Invite(ctx context.Context, remote store.Remote, listID, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("empty email")
	}
	userID, err := remote.UserIDByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("invite %s: %w", email, err)
	}
	err = remote.UpsertMember(ctx, model.Membership{
		ListID: listID, UserID: userID, Role: model.RoleMember,
	})
	if err != nil {
		return fmt.Errorf("share list: %w", err)
	}
	return nil
}
