// AngelaMos | 2026
// entity.go

package expense

type Expense struct {
	ID          int64   `db:"expense_id"`
	ProjectID   int64   `db:"project_id"`
	Description string  `db:"description"`
	Amount      float64 `db:"amount"`
}
