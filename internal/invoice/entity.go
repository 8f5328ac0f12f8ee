// AngelaMos | 2026
// entity.go

package invoice

import (
	"time"
)

const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
)

type Invoice struct {
	ID        int64     `db:"invoice_id"`
	ProjectID int64     `db:"project_id"`
	Amount    float64   `db:"amount"`
	Status    string    `db:"status"`
	DueDate   time.Time `db:"due_date"`
}

func (i *Invoice) IsPending() bool {
	return i.Status == StatusPending
}
