// AngelaMos | 2026
// service.go

package expense

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/client-portal/internal/metrics"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListForClient(
	ctx context.Context,
	username string,
) ([]Expense, error) {
	expenses, err := s.repo.ListByClient(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("listing expenses for %s: %w", username, err)
	}

	metrics.QueriesTotal.WithLabelValues("expenses").Inc()

	if expenses == nil {
		expenses = []Expense{}
	}
	return expenses, nil
}
