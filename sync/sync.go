// Package sync binds the application store's collections to the live
// document store for the lifetime of a session.
package sync

import (
	"context"
	stdsync "sync"

	"salonsync-backend/appstore"
	"salonsync-backend/docstore"
	"salonsync-backend/models"
)

// Syncer owns one subscription per managed collection. Collections are
// fully independent: a slow or failing feed on one never holds up
// another, and each snapshot replaces its slot wholesale.
type Syncer struct {
	ds  docstore.Store
	app *appstore.Store

	mu     stdsync.Mutex
	unsubs []func()
}

func New(ds docstore.Store, app *appstore.Store) *Syncer {
	return &Syncer{ds: ds, app: app}
}

// Start seeds default data in the background and subscribes every managed
// collection. Calling Start on an active syncer is a no-op; after Stop it
// activates again from scratch.
func (s *Syncer) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.unsubs) > 0 {
		return
	}

	go SeedDefaultTemplates(ctx, s.ds)

	bindings := []struct {
		collection string
		apply      func([]docstore.Document)
	}{
		{models.CollectionCustomers, func(docs []docstore.Document) {
			s.app.SetCustomers(docstore.DecodeList[models.Customer](docs))
		}},
		{models.CollectionTemplates, func(docs []docstore.Document) {
			s.app.SetTemplates(docstore.DecodeList[models.MessageTemplate](docs))
		}},
		{models.CollectionBillings, func(docs []docstore.Document) {
			s.app.SetBillings(docstore.DecodeList[models.Billing](docs))
		}},
		{models.CollectionSalonServices, func(docs []docstore.Document) {
			s.app.SetSalonServices(docstore.DecodeList[models.SalonService](docs))
		}},
		{models.CollectionMemberships, func(docs []docstore.Document) {
			s.app.SetMemberships(docstore.DecodeList[models.Membership](docs))
		}},
		{models.CollectionMembershipPlans, func(docs []docstore.Document) {
			s.app.SetMembershipPlans(docstore.DecodeList[models.MembershipPlan](docs))
		}},
		{models.CollectionAppointments, func(docs []docstore.Document) {
			s.app.SetAppointments(docstore.DecodeList[models.Appointment](docs))
		}},
	}
	for _, b := range bindings {
		s.unsubs = append(s.unsubs, s.ds.Subscribe(b.collection, b.apply))
	}
}

// Stop detaches every subscription. Once it returns no stale callback can
// write into the store; the handles are discarded so a later Start never
// reuses them.
func (s *Syncer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, unsubscribe := range s.unsubs {
		unsubscribe()
	}
	s.unsubs = nil
}
