package domain

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Valid indica se o status pertence ao conjunto aceito pelo dashboard
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice representa uma fatura. Amount é em centavos e Date no formato 2006-01-02.
// CustomerID não é validado contra a tabela de clientes.
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     int           `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       string        `json:"date"`
}
