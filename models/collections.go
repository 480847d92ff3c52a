package models

// Collection names as they exist in the document store. The synchronizer
// manages all of them except MessageLogs, which is write-mostly and never
// mirrored into the application store.
const (
	CollectionCustomers       = "customers"
	CollectionTemplates       = "templates"
	CollectionBillings        = "billings"
	CollectionSalonServices   = "salonServices"
	CollectionMemberships     = "memberships"
	CollectionMembershipPlans = "membershipPlans"
	CollectionAppointments    = "appointments"
	CollectionMessageLogs     = "messageLogs"
)
