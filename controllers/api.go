package controllers

import (
	"salonsync-backend/appstore"
	"salonsync-backend/services"
)

// API bundles the handlers' dependencies. Writes go through the
// application store and are acknowledged before they are visible: the
// authoritative state arrives through the live sync, so creates answer
// 201 with the new id only, and updates/deletes answer 202.
type API struct {
	Store    *appstore.Store
	Outreach *services.OutreachService
}

func NewAPI(store *appstore.Store, outreach *services.OutreachService) *API {
	return &API{Store: store, Outreach: outreach}
}
