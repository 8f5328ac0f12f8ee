// AngelaMos | 2026
// dto.go

package expense

type ExpenseResponse struct {
	ID          int64   `json:"id"`
	ProjectID   int64   `json:"project_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Count    int               `json:"count"`
}

func ToExpenseListResponse(expenses []Expense) ExpenseListResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, ExpenseResponse{
			ID:          e.ID,
			ProjectID:   e.ProjectID,
			Description: e.Description,
			Amount:      e.Amount,
		})
	}
	return ExpenseListResponse{
		Expenses: responses,
		Count:    len(responses),
	}
}
