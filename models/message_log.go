package models

// Message log statuses and channels.
const (
	MessageStatusSent   = "sent"
	MessageStatusFailed = "failed"

	ChannelWhatsApp = "whatsapp"
	ChannelSMS      = "sms"
)

// MessageLog records one outbound message attempt. These documents are
// written by the outreach service and never synced into the app store.
type MessageLog struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName,omitempty"`
	TemplateID   string `json:"templateId,omitempty"`
	Kind         string `json:"kind"` // birthday, anniversary, bulk
	Message      string `json:"message"`
	Channel      string `json:"channel"`
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	SentAt       string `json:"sentAt"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}
