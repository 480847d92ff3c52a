package models

// Payment methods accepted on a billing record.
const (
	PaymentCash         = "cash"
	PaymentUPI          = "upi"
	PaymentCard         = "card"
	PaymentBankTransfer = "bank_transfer"
	PaymentOther        = "other"
)

// Billing is one bill raised against a customer. CustomerName is a
// denormalized snapshot taken at billing time; FinalAmount is derived from
// Amount and Discount when the record is written.
type Billing struct {
	ID            string   `json:"id"`
	CustomerID    string   `json:"customerId"`
	CustomerName  string   `json:"customerName,omitempty"`
	Service       string   `json:"service"`
	Services      []string `json:"services,omitempty"`
	Amount        float64  `json:"amount"`
	Discount      float64  `json:"discount,omitempty"`
	FinalAmount   float64  `json:"finalAmount,omitempty"`
	Date          string   `json:"date"`
	Notes         string   `json:"notes,omitempty"`
	PaymentMethod string   `json:"paymentMethod,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
}

// FinalAmountFor applies a percentage discount to an amount.
func FinalAmountFor(amount, discount float64) float64 {
	if discount <= 0 {
		return amount
	}
	return amount - amount*discount/100
}
