package models

// Message template categories.
const (
	TemplateCategorySale     = "sale"
	TemplateCategoryDiscount = "discount"
	TemplateCategoryFestival = "festival"
	TemplateCategoryGeneral  = "general"
)

// MessageTemplate is a reusable promotional message. Content may contain
// {name} and {sender} placeholders resolved at send time.
type MessageTemplate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	ImageURL  string `json:"imageUrl,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
