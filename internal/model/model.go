// Package model holds the domain types shared across the app.
package model

import "time"

// Item is a single shopping-list entry. Identity is the id the store
// assigns at insert time; CreatedAt is the server-assigned timestamp.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// Group is the unbought items of one category, in source order.
type Group struct {
	Category string
	Items    []Item
}

// GroupByCategory splits items into per-category groups ordered by
// first appearance. Items arrive newest first, so the category with
// the newest item leads.
func GroupByCategory(items []Item) []Group {
	idx := map[string]int{}
	var groups []Group
	for _, it := range items {
		i, ok := idx[it.Category]
		if !ok {
			i = len(groups)
			idx[it.Category] = i
			groups = append(groups, Group{Category: it.Category})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// Partition splits items into unbought and bought, preserving order.
func Partition(items []Item) (todo, done []Item) {
	for _, it := range items {
		if it.Done {
			done = append(done, it)
		} else {
			todo = append(todo, it)
		}
	}
	return todo, done
}

// List is a named shopping list. A user reaches a list through a
// Membership row; exactly one list is active per session.
type List struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Role of a list member.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

// Membership ties a user to a list.
type Membership struct {
	ListID string `json:"list_id"`
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}
