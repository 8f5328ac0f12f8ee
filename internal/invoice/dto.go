// AngelaMos | 2026
// dto.go

package invoice

type InvoiceResponse struct {
	ID        int64   `json:"id"`
	ProjectID int64   `json:"project_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	DueDate   string  `json:"due_date"`
}

type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Count    int               `json:"count"`
}

// PaymentIntent is what the client needs to continue checkout with the
// payment provider.
type PaymentIntent struct {
	InvoiceID int64   `json:"invoice_id"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
	PayURL    string  `json:"pay_url"`
}

func ToInvoiceResponse(inv *Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        inv.ID,
		ProjectID: inv.ProjectID,
		Amount:    inv.Amount,
		Status:    inv.Status,
		DueDate:   inv.DueDate.Format("2006-01-02"),
	}
}

func ToInvoiceListResponse(invoices []Invoice) InvoiceListResponse {
	responses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, ToInvoiceResponse(&invoices[i]))
	}
	return InvoiceListResponse{
		Invoices: responses,
		Count:    len(responses),
	}
}
