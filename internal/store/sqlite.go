package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"handla/internal/model"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id    TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS lists (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	created_by TEXT NOT NULL REFERENCES users(id)
);
CREATE TABLE IF NOT EXISTS list_members (
	list_id TEXT NOT NULL REFERENCES lists(id),
	user_id TEXT NOT NULL REFERENCES users(id),
	role    TEXT NOT NULL,
	PRIMARY KEY (list_id, user_id)
);
CREATE TABLE IF NOT EXISTS items (
	id         TEXT PRIMARY KEY,
	list_id    TEXT NOT NULL REFERENCES lists(id),
	name       TEXT NOT NULL,
	category   TEXT NOT NULL,
	done       INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_items_list ON items(list_id, created_at DESC);
`

// SQLite implements Remote on a local database file.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and bootstraps
// the schema. modernc.org/sqlite driver name is "sqlite".
func Open(ctx context.Context, path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func newID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}

func (s *SQLite) InsertItem(ctx context.Context, row ItemRow) (model.Item, error) {
	it := model.Item{
		ID:        newID(),
		Name:      row.Name,
		Category:  row.Category,
		Done:      row.Done,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items(id, list_id, name, category, done, created_at) VALUES(?, ?, ?, ?, ?, ?)`,
		it.ID, row.ListID, it.Name, it.Category, boolInt(it.Done), it.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return model.Item{}, fmt.Errorf("insert item: %w", err)
	}
	return it, nil
}

func (s *SQLite) UpdateItem(ctx context.Context, id string, patch ItemPatch) (model.Item, error) {
	var sets []string
	var args []any
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *patch.Category)
	}
	if patch.Done != nil {
		sets = append(sets, "done = ?")
		args = append(args, boolInt(*patch.Done))
	}
	if len(sets) > 0 {
		args = append(args, id)
		res, err := s.db.ExecContext(ctx,
			`UPDATE items SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
		if err != nil {
			return model.Item{}, fmt.Errorf("update item: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return model.Item{}, fmt.Errorf("update item %s: %w", id, ErrNotFound)
		}
	}
	return s.getItem(ctx, id)
}

func (s *SQLite) getItem(ctx context.Context, id string) (model.Item, error) {
	var it model.Item
	var done int
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, category, done, created_at FROM items WHERE id = ?`, id).
		Scan(&it.ID, &it.Name, &it.Category, &done, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("get item: %w", err)
	}
	it.Done = done != 0
	it.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return model.Item{}, fmt.Errorf("parse created_at: %w", err)
	}
	return it, nil
}

func (s *SQLite) DeleteItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("delete item %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SQLite) ItemsByList(ctx context.Context, listID string) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, category, done, created_at FROM items
		 WHERE list_id = ? ORDER BY created_at DESC, id DESC`, listID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []model.Item
	for rows.Next() {
		var it model.Item
		var done int
		var created string
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &done, &created); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Done = done != 0
		if it.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (s *SQLite) ListsForUser(ctx context.Context, userID string) ([]model.List, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT l.id, l.name FROM lists l
		 JOIN list_members m ON m.list_id = l.id
		 WHERE m.user_id = ? ORDER BY l.name`, userID)
	if err != nil {
		return nil, fmt.Errorf("lists for user: %w", err)
	}
	defer rows.Close()

	var out []model.List
	for rows.Next() {
		var l model.List
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *SQLite) CreateList(ctx context.Context, name, ownerID string) (model.List, error) {
	l := model.List{ID: newID(), Name: name}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO lists(id, name, created_by) VALUES(?, ?, ?)`, l.ID, l.Name, ownerID)
	if err != nil {
		return model.List{}, fmt.Errorf("create list: %w", err)
	}
	return l, nil
}

func (s *SQLite) UpsertMember(ctx context.Context, m model.Membership) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO list_members(list_id, user_id, role) VALUES(?, ?, ?)
		 ON CONFLICT(list_id, user_id) DO NOTHING`,
		m.ListID, m.UserID, string(m.Role))
	if err != nil {
		return fmt.Errorf("upsert member: %w", err)
	}
	return nil
}

func (s *SQLite) UserIDByEmail(ctx context.Context, email string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM users WHERE email = ?`, strings.ToLower(strings.TrimSpace(email))).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("email %s: %w", email, ErrUserNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}
	return id, nil
}

// EnsureUser finds or creates the user row for email and returns its
// id. This stands in for the account the auth layer would provide.
func (s *SQLite) EnsureUser(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errors.New("empty email")
	}
	id, err := s.UserIDByEmail(ctx, email)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return "", err
	}
	id = newID()
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO users(id, email) VALUES(?, ?)`, id, email); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
