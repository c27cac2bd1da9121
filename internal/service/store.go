package service

import (
	"context"

	"github.com/bookmarkd/bookmarkd-go/internal/model"
)

// UserStore is the slice of user persistence the services depend on. The
// MySQL implementation lives in internal/repository; tests use an in-memory
// fake.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

// BookmarkStore is the slice of bookmark persistence the services depend on.
// Reads and writes are keyed by owner so ownership filtering happens at the
// store boundary.
type BookmarkStore interface {
	Insert(ctx context.Context, bookmark *model.Bookmark) error
	GetByID(ctx context.Context, userID, id int64) (*model.Bookmark, error)
	ListByOwner(ctx context.Context, userID int64) ([]model.Bookmark, error)
	Update(ctx context.Context, bookmark *model.Bookmark) error
	Delete(ctx context.Context, userID, id int64) error
}
