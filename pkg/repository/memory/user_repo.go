// Package memory provides in-memory repository implementations used by
// tests and DB-less demo runs (STORAGE=memory).
package memory

import (
	"context"
	"sync"

	"github.com/cloudblitz/learnhub/pkg/auth"
)

// UserRepository implements auth.UserRepository with a mutex-guarded map.
// The map key doubles as the unique-email constraint.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]auth.User // keyed by email
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]auth.User{}}
}

func (r *UserRepository) Create(_ context.Context, user auth.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return auth.ErrUserAlreadyExists
	}
	r.users[user.Email] = user
	return nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[email]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[email]
	return ok, nil
}
