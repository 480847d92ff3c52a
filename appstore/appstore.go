// Package appstore holds the in-memory application state: one slot per
// collection, replaced wholesale by the synchronizer, plus mutation
// methods that delegate to the document store.
//
// Mutations never touch the slots. The visible state changes only when
// the next snapshot arrives through the live subscription, so a caller
// must not expect its write to be readable immediately after the call
// returns.
package appstore

import (
	"context"
	"log"
	"sync"

	"salonsync-backend/docstore"
	"salonsync-backend/models"
)

// Store is constructed once and injected wherever state is needed; there
// is no package-level instance.
type Store struct {
	db docstore.Store

	mu              sync.RWMutex
	customers       []models.Customer
	templates       []models.MessageTemplate
	billings        []models.Billing
	salonServices   []models.SalonService
	memberships     []models.Membership
	membershipPlans []models.MembershipPlan
	appointments    []models.Appointment
}

func New(db docstore.Store) *Store {
	return &Store{db: db}
}

// add encodes a typed payload and writes it through the adapter. Per the
// store contract failures are logged, not surfaced: the caller gets the
// new id, or "" when the write was not confirmed.
func (s *Store) add(ctx context.Context, collection string, payload interface{}) string {
	doc, err := docstore.Encode(payload)
	if err != nil {
		log.Printf("appstore: encode for %s: %v", collection, err)
		return ""
	}
	id, err := s.db.Add(ctx, collection, doc)
	if err != nil {
		log.Printf("appstore: add to %s: %v", collection, err)
		return ""
	}
	return id
}

func (s *Store) update(ctx context.Context, collection, id string, patch docstore.Document) {
	if err := s.db.Update(ctx, collection, id, patch); err != nil {
		log.Printf("appstore: update %s/%s: %v", collection, id, err)
	}
}

func (s *Store) delete(ctx context.Context, collection, id string) {
	if err := s.db.Delete(ctx, collection, id); err != nil {
		log.Printf("appstore: delete %s/%s: %v", collection, id, err)
	}
}

// Customers

// Customers returns the current snapshot. The slice is replaced, never
// mutated in place, so callers may iterate it freely but must not modify
// it.
func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers
}

func (s *Store) SetCustomers(list []models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = list
}

func (s *Store) AddCustomer(ctx context.Context, c models.Customer) string {
	return s.add(ctx, models.CollectionCustomers, c)
}

func (s *Store) UpdateCustomer(ctx context.Context, id string, patch docstore.Document) {
	s.update(ctx, models.CollectionCustomers, id, patch)
}

func (s *Store) DeleteCustomer(ctx context.Context, id string) {
	s.delete(ctx, models.CollectionCustomers, id)
}

// CustomerByID looks a customer up in the current snapshot.
func (s *Store) CustomerByID(id string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// Templates

func (s *Store) Templates() []models.MessageTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.templates
}

func (s *Store) SetTemplates(list []models.MessageTemplate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = list
}

func (s *Store) AddTemplate(ctx context.Context, t models.MessageTemplate) string {
	return s.add(ctx, models.CollectionTemplates, t)
}

func (s *Store) UpdateTemplate(ctx context.Context, id string, patch docstore.Document) {
	s.update(ctx, models.CollectionTemplates, id, patch)
}

func (s *Store) DeleteTemplate(ctx context.Context, id string) {
	s.delete(ctx, models.CollectionTemplates, id)
}

func (s *Store) TemplateByID(id string) (models.MessageTemplate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.templates {
		if t.ID == id {
			return t, true
		}
	}
	return models.MessageTemplate{}, false
}

// Billings

func (s *Store) Billings() []models.Billing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.billings
}

func (s *Store) SetBillings(list []models.Billing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.billings = list
}

func (s *Store) AddBilling(ctx context.Context, b models.Billing) string {
	return s.add(ctx, models.CollectionBillings, b)
}

func (s *Store) UpdateBilling(ctx context.Context, id string, patch docstore.Document) {
	s.update(ctx, models.CollectionBillings, id, patch)
}

func (s *Store) DeleteBilling(ctx context.Context, id string) {
	s.delete(ctx, models.CollectionBillings, id)
}

func (s *Store) BillingByID(id string) (models.Billing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.billings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Billing{}, false
}

// Salon services

func (s *Store) SalonServices() []models.SalonService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.salonServices
}

func (s *Store) SetSalonServices(list []models.SalonService) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.salonServices = list
}

func (s *Store) AddSalonService(ctx context.Context, v models.SalonService) string {
	return s.add(ctx, models.CollectionSalonServices, v)
}

func (s *Store) UpdateSalonService(ctx context.Context, id string, patch docstore.Document) {
	s.update(ctx, models.CollectionSalonServices, id, patch)
}

func (s *Store) DeleteSalonService(ctx context.Context, id string) {
	s.delete(ctx, models.CollectionSalonServices, id)
}

// Memberships

func (s *Store) Memberships() []models.Membership {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.memberships
}

func (s *Store) SetMemberships(list []models.Membership) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memberships = list
}

func (s *Store) AddMembership(ctx context.Context, m models.Membership) string {
	return s.add(ctx, models.CollectionMemberships, m)
}

func (s *Store) UpdateMembership(ctx context.Context, id string, patch docstore.Document) {
	s.update(ctx, models.CollectionMemberships, id, patch)
}

func (s *Store) DeleteMembership(ctx context.Context, id string) {
	s.delete(ctx, models.CollectionMemberships, id)
}

func (s *Store) MembershipByID(id string) (models.Membership, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.memberships {
		if m.ID == id {
			return m, true
		}
	}
	return models.Membership{}, false
}

// Membership plans

func (s *Store) MembershipPlans() []models.MembershipPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.membershipPlans
}

func (s *Store) SetMembershipPlans(list []models.MembershipPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.membershipPlans = list
}

func (s *Store) AddMembershipPlan(ctx context.Context, p models.MembershipPlan) string {
	return s.add(ctx, models.CollectionMembershipPlans, p)
}

func (s *Store) UpdateMembershipPlan(ctx context.Context, id string, patch docstore.Document) {
	s.update(ctx, models.CollectionMembershipPlans, id, patch)
}

func (s *Store) DeleteMembershipPlan(ctx context.Context, id string) {
	s.delete(ctx, models.CollectionMembershipPlans, id)
}

func (s *Store) MembershipPlanByID(id string) (models.MembershipPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.membershipPlans {
		if p.ID == id {
			return p, true
		}
	}
	return models.MembershipPlan{}, false
}

// Appointments

func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appointments
}

func (s *Store) SetAppointments(list []models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = list
}

func (s *Store) AddAppointment(ctx context.Context, a models.Appointment) string {
	return s.add(ctx, models.CollectionAppointments, a)
}

func (s *Store) UpdateAppointment(ctx context.Context, id string, patch docstore.Document) {
	s.update(ctx, models.CollectionAppointments, id, patch)
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) {
	s.delete(ctx, models.CollectionAppointments, id)
}
