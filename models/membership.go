package models

// Membership statuses.
const (
	MembershipActive  = "active"
	MembershipExpired = "expired"
)

// MonthlyUsage is one recorded benefit redemption within a membership.
type MonthlyUsage struct {
	MonthKey     string `json:"monthKey"`
	ServiceTaken string `json:"serviceTaken"`
	UsedDate     string `json:"usedDate,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// Membership is a plan issued to a customer. Plan price and benefits are
// copied from the plan at assignment time; later plan edits never change
// an issued membership.
type Membership struct {
	ID            string         `json:"id"`
	CustomerID    string         `json:"customerId"`
	CustomerName  string         `json:"customerName,omitempty"`
	Plan          string         `json:"plan"`
	PlanID        string         `json:"planId,omitempty"`
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	Amount        float64        `json:"amount"`
	AdvanceAmount float64        `json:"advanceAmount,omitempty"`
	TotalBenefits int            `json:"totalBenefits,omitempty"`
	UsedBenefits  int            `json:"usedBenefits,omitempty"`
	MonthlyUsage  []MonthlyUsage `json:"monthlyUsage,omitempty"`
	Status        string         `json:"status"`
	CreatedAt     string         `json:"createdAt,omitempty"`
	UpdatedAt     string         `json:"updatedAt,omitempty"`
}

// MembershipPlan is the template a membership is issued from.
type MembershipPlan struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	TotalBenefits int     `json:"totalBenefits"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty"`
}
