package sync

import (
	"context"
	"log"

	"salonsync-backend/docstore"
	"salonsync-backend/models"
)

// defaultTemplates are written once into an empty templates collection on
// first run. After that the collection belongs to the user: the seeder
// never re-adds a template that was edited or deleted.
var defaultTemplates = []models.MessageTemplate{
	{
		Name:     "Grand Sale",
		Content:  "Hi {name}! 🎉 Grand Sale at Life Style Studio! Get up to 50% OFF on all services. Book now! Call us to reserve your slot. - {sender}",
		Category: models.TemplateCategorySale,
	},
	{
		Name:     "Festival Offer",
		Content:  "Dear {name}, ✨ Celebrate this festive season with Life Style Studio! Special packages starting from ₹999. Limited slots available! - {sender}",
		Category: models.TemplateCategoryFestival,
	},
	{
		Name:     "Loyalty Discount",
		Content:  "Hi {name}! 💖 As our valued customer, enjoy an exclusive 20% discount on your next visit to Life Style Studio. Valid this month only! - {sender}",
		Category: models.TemplateCategoryDiscount,
	},
}

// SeedDefaultTemplates populates the templates collection if and only if
// it is empty. Every failure is logged and swallowed: seeding must never
// block startup, and the next activation simply tries again.
func SeedDefaultTemplates(ctx context.Context, ds docstore.Store) {
	existing := ds.GetAll(ctx, models.CollectionTemplates)
	if len(existing) > 0 {
		return
	}
	for _, t := range defaultTemplates {
		doc, err := docstore.Encode(t)
		if err != nil {
			log.Printf("sync: encode default template %q: %v", t.Name, err)
			continue
		}
		if _, err := ds.Add(ctx, models.CollectionTemplates, doc); err != nil {
			log.Printf("sync: seed template %q: %v", t.Name, err)
		}
	}
}
