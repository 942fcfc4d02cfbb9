// Package memory provides mutex-guarded in-process implementations of the
// storage ports. They back the test suites and local development; the
// durable implementations live in the postgres and redisstore packages.
package memory

import (
	"context"
	"sync"

	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
	"github.com/oksasatya/go-auth-engine/internal/domain/port"
	"github.com/oksasatya/go-auth-engine/internal/domain/valueobject"
)

type UserStore struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]entity.User)}
}

func (s *UserStore) Get(_ context.Context, email valueobject.Email) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email.String()]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &u, nil
}

// Create holds the lock across the existence check and the insert, which is
// the atomic-uniqueness guarantee the signup flow relies on.
func (s *UserStore) Create(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := u.Email.String()
	if _, ok := s.users[key]; ok {
		return port.ErrConflict
	}
	s.users[key] = *u
	return nil
}

func (s *UserStore) Update(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := u.Email.String()
	if _, ok := s.users[key]; !ok {
		return port.ErrNotFound
	}
	s.users[key] = *u
	return nil
}

func (s *UserStore) Delete(_ context.Context, email valueobject.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := email.String()
	if _, ok := s.users[key]; !ok {
		return port.ErrNotFound
	}
	delete(s.users, key)
	return nil
}

var _ port.UserStore = (*UserStore)(nil)
