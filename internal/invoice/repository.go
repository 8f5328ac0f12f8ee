// AngelaMos | 2026
// repository.go

package invoice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/client-portal/internal/core"
)

type Repository interface {
	ListByClient(ctx context.Context, username string) ([]Invoice, error)
	GetByIDForClient(ctx context.Context, invoiceID int64, username string) (*Invoice, error)
}

type invoiceRepository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &invoiceRepository{db: db}
}

// Ownership is enforced in the query itself: invoices are only visible
// through projects belonging to the requesting client.
func (r *invoiceRepository) ListByClient(
	ctx context.Context,
	username string,
) ([]Invoice, error) {
	query := `
		SELECT i.invoice_id, i.project_id, i.amount, i.status, i.due_date
		FROM invoices i
		JOIN projects p ON p.project_id = i.project_id
		WHERE p.client_username = $1
		ORDER BY i.due_date ASC, i.invoice_id ASC`

	var invoices []Invoice
	if err := r.db.SelectContext(ctx, &invoices, query, username); err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepository) GetByIDForClient(
	ctx context.Context,
	invoiceID int64,
	username string,
) (*Invoice, error) {
	query := `
		SELECT i.invoice_id, i.project_id, i.amount, i.status, i.due_date
		FROM invoices i
		JOIN projects p ON p.project_id = i.project_id
		WHERE i.invoice_id = $1 AND p.client_username = $2`

	var inv Invoice
	err := r.db.GetContext(ctx, &inv, query, invoiceID, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("getting invoice %d: %w", invoiceID, err)
	}
	return &inv, nil
}
