package models

// Customer is a salon client. Dates are stored as plain ISO strings the way
// they arrive from the document store; no timezone math happens here.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	Date        string `json:"date"`
	Birthday    string `json:"birthday,omitempty"`
	Anniversary string `json:"anniversary,omitempty"`
	Reference   string `json:"reference,omitempty"`
	Services    string `json:"services,omitempty"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}
