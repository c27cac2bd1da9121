package service

import (
	"context"
	"errors"

	"github.com/bookmarkd/bookmarkd-go/internal/model"
	"github.com/bookmarkd/bookmarkd-go/internal/repository"
	"github.com/bookmarkd/bookmarkd-go/internal/validate"
)

// ErrBookmarkNotFound covers both a missing bookmark and one owned by a
// different user, so existence never leaks across accounts.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkService handles bookmark CRUD. Every operation takes the caller's
// user ID as an implicit ownership filter.
type BookmarkService struct {
	bookmarks BookmarkStore
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(bookmarks BookmarkStore) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks}
}

// List returns all of the caller's bookmarks in creation order. The result
// is an empty slice, never nil, when none exist.
func (s *BookmarkService) List(ctx context.Context, userID int64) ([]model.BookmarkResponse, error) {
	bookmarks, err := s.bookmarks.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.BookmarkResponse, len(bookmarks))
	for i := range bookmarks {
		result[i] = model.NewBookmarkResponse(&bookmarks[i])
	}
	return result, nil
}

// Create stores a new bookmark owned by the caller and returns it with its
// generated ID.
func (s *BookmarkService) Create(ctx context.Context, userID int64, req model.CreateBookmarkRequest) (model.BookmarkResponse, error) {
	if err := validate.CreateBookmark(req); err != nil {
		return model.BookmarkResponse{}, err
	}

	bookmark := &model.Bookmark{
		UserID:      userID,
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	}

	if err := s.bookmarks.Insert(ctx, bookmark); err != nil {
		return model.BookmarkResponse{}, err
	}

	return model.NewBookmarkResponse(bookmark), nil
}

// GetByID returns one of the caller's bookmarks.
func (s *BookmarkService) GetByID(ctx context.Context, userID, id int64) (model.BookmarkResponse, error) {
	bookmark, err := s.bookmarks.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return model.BookmarkResponse{}, ErrBookmarkNotFound
		}
		return model.BookmarkResponse{}, err
	}

	return model.NewBookmarkResponse(bookmark), nil
}

// Edit applies a partial update to one of the caller's bookmarks. Nil fields
// in the patch are left untouched.
func (s *BookmarkService) Edit(ctx context.Context, userID, id int64, req model.EditBookmarkRequest) (model.BookmarkResponse, error) {
	if err := validate.EditBookmark(req); err != nil {
		return model.BookmarkResponse{}, err
	}

	bookmark, err := s.bookmarks.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return model.BookmarkResponse{}, ErrBookmarkNotFound
		}
		return model.BookmarkResponse{}, err
	}

	if req.Title != nil {
		bookmark.Title = *req.Title
	}
	if req.Link != nil {
		bookmark.Link = *req.Link
	}
	if req.Description != nil {
		bookmark.Description = *req.Description
	}

	if err := s.bookmarks.Update(ctx, bookmark); err != nil {
		return model.BookmarkResponse{}, err
	}

	return model.NewBookmarkResponse(bookmark), nil
}

// Delete removes one of the caller's bookmarks.
func (s *BookmarkService) Delete(ctx context.Context, userID, id int64) error {
	err := s.bookmarks.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrBookmarkNotFound) {
		return ErrBookmarkNotFound
	}
	return err
}
