package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type demoUser struct {
	name     string
	email    string
	password string
}

var demoUsers = []demoUser{
	{name: "Ramesh Admin", email: "ramesh@admin.com", password: "ramesh@admin"},
	{name: "Test Student", email: "student@cloudblitz.in", password: "password123"},
}

// SeedDemoUsers creates the demo accounts if they do not exist yet.
// Intended for demo deployments only; controlled by configuration.
func SeedDemoUsers(ctx context.Context, repo UserRepository, hasher PasswordHasher) error {
	for _, d := range demoUsers {
		exists, err := repo.ExistsByEmail(ctx, d.email)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		hash, err := hasher.Hash(d.password)
		if err != nil {
			return err
		}
		user := User{
			ID:           uuid.New(),
			Name:         d.name,
			Email:        d.email,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}
		if err := repo.Create(ctx, user); err != nil {
			return err
		}
	}
	return nil
}
