// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/client-portal/internal/auth"
	"github.com/carterperez-dev/client-portal/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByUsername(
	ctx context.Context,
	username string,
) (*auth.Identity, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return &auth.Identity{
		Username:     user.Username,
		Role:         user.Role,
		PasswordHash: user.PasswordHash,
	}, nil
}

// Provision creates a portal account. Only reachable through the admin
// surface; the client-facing flows have no registration.
func (s *Service) Provision(
	ctx context.Context,
	username, password, role string,
) (*User, error) {
	if role != RoleClient && role != RoleAdmin {
		return nil, fmt.Errorf(
			"provision user: invalid role %q: %w",
			role,
			core.ErrInvalidInput,
		)
	}

	passwordHash, err := core.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

var _ auth.UserProvider = (*Service)(nil)
