package service

import (
	"context"
	"sync"
	"time"

	"github.com/bookmarkd/bookmarkd-go/internal/model"
	"github.com/bookmarkd/bookmarkd-go/internal/repository"
)

// fakeUserStore is an in-memory UserStore returning the same sentinel errors
// as the MySQL implementation.
type fakeUserStore struct {
	mu     sync.Mutex
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*model.User)}
}

func (s *fakeUserStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	s.nextID++
	user.ID = s.nextID
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *fakeUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *fakeUserStore) Update(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	for _, u := range s.users {
		if u.ID != user.ID && u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	existing.Email = user.Email
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.UpdatedAt = time.Now().UTC()
	*user = *existing
	return nil
}

// fakeBookmarkStore is an in-memory BookmarkStore with owner-scoped lookups.
type fakeBookmarkStore struct {
	mu        sync.Mutex
	bookmarks map[int64]*model.Bookmark
	nextID    int64
}

func newFakeBookmarkStore() *fakeBookmarkStore {
	return &fakeBookmarkStore{bookmarks: make(map[int64]*model.Bookmark)}
}

func (s *fakeBookmarkStore) Insert(ctx context.Context, bookmark *model.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	bookmark.ID = s.nextID
	now := time.Now().UTC()
	bookmark.CreatedAt = now
	bookmark.UpdatedAt = now

	clone := *bookmark
	s.bookmarks[bookmark.ID] = &clone
	return nil
}

func (s *fakeBookmarkStore) GetByID(ctx context.Context, userID, id int64) (*model.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookmarks[id]
	if !ok || b.UserID != userID {
		return nil, repository.ErrBookmarkNotFound
	}
	clone := *b
	return &clone, nil
}

func (s *fakeBookmarkStore) ListByOwner(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []model.Bookmark
	// Map iteration order is random; walk ids in creation order instead.
	for id := int64(1); id <= s.nextID; id++ {
		if b, ok := s.bookmarks[id]; ok && b.UserID == userID {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (s *fakeBookmarkStore) Update(ctx context.Context, bookmark *model.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.bookmarks[bookmark.ID]
	if !ok || existing.UserID != bookmark.UserID {
		return repository.ErrBookmarkNotFound
	}

	existing.Title = bookmark.Title
	existing.Link = bookmark.Link
	existing.Description = bookmark.Description
	existing.UpdatedAt = time.Now().UTC()
	*bookmark = *existing
	return nil
}

func (s *fakeBookmarkStore) Delete(ctx context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookmarks[id]
	if !ok || b.UserID != userID {
		return repository.ErrBookmarkNotFound
	}
	delete(s.bookmarks, id)
	return nil
}
