package model

import "time"

// Bookmark represents a saved link owned by a single user.
type Bookmark struct {
	ID          int64
	UserID      int64
	Title       string
	Link        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateBookmarkRequest represents a bookmark creation request.
type CreateBookmarkRequest struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// EditBookmarkRequest represents a partial bookmark update. Nil fields are
// left untouched.
type EditBookmarkRequest struct {
	Title       *string `json:"title"`
	Link        *string `json:"link"`
	Description *string `json:"description"`
}

// BookmarkResponse represents a bookmark in API responses.
type BookmarkResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewBookmarkResponse maps a stored bookmark onto its API representation.
func NewBookmarkResponse(b *Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Title:       b.Title,
		Link:        b.Link,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
