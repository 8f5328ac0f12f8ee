// AngelaMos | 2026
// service.go

package message

import (
	"context"
	"fmt"
	"strings"

	"github.com/carterperez-dev/client-portal/internal/core"
	"github.com/carterperez-dev/client-portal/internal/metrics"
)

// ProjectGuard answers whether a client may touch a given project.
// Returns core.ErrNotFound when the project does not exist and
// core.ErrForbidden when it belongs to another client.
type ProjectGuard interface {
	AuthorizeAccess(ctx context.Context, projectID int64, username string) error
}

type Service struct {
	repo     Repository
	projects ProjectGuard
}

func NewService(repo Repository, projects ProjectGuard) *Service {
	return &Service{
		repo:     repo,
		projects: projects,
	}
}

// ListForProject returns the full thread for a project the client owns,
// oldest first.
func (s *Service) ListForProject(
	ctx context.Context,
	projectID int64,
	username string,
) ([]Message, error) {
	if err := s.projects.AuthorizeAccess(ctx, projectID, username); err != nil {
		return nil, err
	}

	messages, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing messages for project %d: %w", projectID, err)
	}

	metrics.QueriesTotal.WithLabelValues("messages").Inc()

	if messages == nil {
		messages = []Message{}
	}
	return messages, nil
}

// Post appends a message to the project thread. Content must contain at
// least one non-whitespace character and is stored verbatim.
func (s *Service) Post(
	ctx context.Context,
	projectID int64,
	username string,
	content string,
) (*Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: message content must not be empty", core.ErrInvalidInput)
	}

	if err := s.projects.AuthorizeAccess(ctx, projectID, username); err != nil {
		return nil, err
	}

	msg := &Message{
		ProjectID: projectID,
		Sender:    username,
		Content:   content,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("posting message to project %d: %w", projectID, err)
	}

	metrics.MessagesPostedTotal.Inc()

	return msg, nil
}
