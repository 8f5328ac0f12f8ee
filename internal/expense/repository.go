// AngelaMos | 2026
// repository.go

package expense

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/client-portal/internal/core"
)

type Repository interface {
	ListByClient(ctx context.Context, username string) ([]Expense, error)
}

type expenseRepository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) ListByClient(
	ctx context.Context,
	username string,
) ([]Expense, error) {
	query := `
		SELECT e.expense_id, e.project_id, e.description, e.amount
		FROM expenses e
		JOIN projects p ON p.project_id = e.project_id
		WHERE p.client_username = $1
		ORDER BY e.expense_id ASC`

	var expenses []Expense
	if err := r.db.SelectContext(ctx, &expenses, query, username); err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	return expenses, nil
}
