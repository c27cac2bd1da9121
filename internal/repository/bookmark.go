package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bookmarkd/bookmarkd-go/internal/model"
)

var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkRepository handles bookmark persistence operations. Every read and
// write is keyed by (user_id, id) so a caller can never touch another user's
// rows.
type BookmarkRepository struct {
	db *sql.DB
}

// NewBookmarkRepository creates a new BookmarkRepository.
func NewBookmarkRepository(db *sql.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

const bookmarkColumns = `id, user_id, title, link, description, created_at, updated_at`

// Insert stores a new bookmark and sets the generated ID and timestamps on
// the struct.
func (r *BookmarkRepository) Insert(ctx context.Context, bookmark *model.Bookmark) error {
	query := `INSERT INTO bookmarks (user_id, title, link, description) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, bookmark.UserID, bookmark.Title, bookmark.Link, bookmark.Description)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	bookmark.ID = id

	created, err := r.GetByID(ctx, bookmark.UserID, id)
	if err != nil {
		return err
	}
	bookmark.CreatedAt = created.CreatedAt
	bookmark.UpdatedAt = created.UpdatedAt
	return nil
}

// GetByID retrieves a bookmark by owner and ID. A bookmark owned by a
// different user is reported as not found, never as forbidden.
func (r *BookmarkRepository) GetByID(ctx context.Context, userID, id int64) (*model.Bookmark, error) {
	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE user_id = ? AND id = ?`

	bookmark := &model.Bookmark{}
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(
		&bookmark.ID, &bookmark.UserID, &bookmark.Title, &bookmark.Link,
		&bookmark.Description, &bookmark.CreatedAt, &bookmark.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookmarkNotFound
		}
		return nil, err
	}

	return bookmark, nil
}

// ListByOwner retrieves all bookmarks for a user in creation order.
func (r *BookmarkRepository) ListByOwner(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []model.Bookmark
	for rows.Next() {
		var b model.Bookmark
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.Title, &b.Link,
			&b.Description, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}

	return bookmarks, rows.Err()
}

// Update writes the mutable columns of an existing bookmark, scoped to its
// owner.
func (r *BookmarkRepository) Update(ctx context.Context, bookmark *model.Bookmark) error {
	query := `UPDATE bookmarks SET title = ?, link = ?, description = ? WHERE user_id = ? AND id = ?`

	_, err := r.db.ExecContext(ctx, query, bookmark.Title, bookmark.Link, bookmark.Description, bookmark.UserID, bookmark.ID)
	if err != nil {
		return err
	}

	updated, err := r.GetByID(ctx, bookmark.UserID, bookmark.ID)
	if err != nil {
		return err
	}
	*bookmark = *updated
	return nil
}

// Delete removes a bookmark, scoped to its owner. Deleting an absent or
// foreign row reports not found.
func (r *BookmarkRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM bookmarks WHERE user_id = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrBookmarkNotFound
	}

	return nil
}
