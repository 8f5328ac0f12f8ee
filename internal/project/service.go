// AngelaMos | 2026
// service.go

package project

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/client-portal/internal/core"
	"github.com/carterperez-dev/client-portal/internal/message"
	"github.com/carterperez-dev/client-portal/internal/metrics"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListForClient returns the client's own projects; an empty slice when none
// exist, never an error.
func (s *Service) ListForClient(
	ctx context.Context,
	username string,
) ([]Project, error) {
	projects, err := s.repo.ListByClient(ctx, username)
	if err != nil {
		return nil, err
	}

	metrics.QueriesTotal.WithLabelValues("projects").Inc()

	if projects == nil {
		projects = []Project{}
	}

	return projects, nil
}

// AuthorizeAccess verifies that username owns projectID. A project owned by
// someone else reports ErrForbidden; a missing project ErrNotFound.
func (s *Service) AuthorizeAccess(
	ctx context.Context,
	projectID int64,
	username string,
) error {
	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	if p.ClientUsername != username {
		return fmt.Errorf("project access: %w", core.ErrForbidden)
	}

	return nil
}

var _ message.ProjectGuard = (*Service)(nil)
