// AngelaMos | 2026
// service.go

package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/carterperez-dev/client-portal/internal/core"
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
) ([]Invoice, error) {
	invoices, err := s.repo.ListByClient(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("listing invoices for %s: %w", username, err)
	}

	metrics.QueriesTotal.WithLabelValues("invoices").Inc()

	if invoices == nil {
		invoices = []Invoice{}
	}
	return invoices, nil
}

// InitiatePayment hands the client off to the payment provider. The
// invoice row is not touched here: status only moves to Paid once the
// provider confirms, which happens out of band.
func (s *Service) InitiatePayment(
	ctx context.Context,
	invoiceID int64,
	username string,
) (*PaymentIntent, error) {
	inv, err := s.repo.GetByIDForClient(ctx, invoiceID, username)
	if err != nil {
		return nil, err
	}

	if !inv.IsPending() {
		return nil, fmt.Errorf(
			"%w: invoice %d is %s, only pending invoices can be paid",
			core.ErrInvalidInput, invoiceID, inv.Status,
		)
	}

	intent := &PaymentIntent{
		InvoiceID: inv.ID,
		Amount:    inv.Amount,
		Reference: uuid.NewString(),
		PayURL:    fmt.Sprintf("/pay/%d", inv.ID),
	}

	metrics.PaymentInitiationsTotal.Inc()

	return intent, nil
}
