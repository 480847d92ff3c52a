package controllers

import (
	"net/http"
	"strings"
	"time"

	"salonsync-backend/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview aggregates the store snapshots into the numbers the
// dashboard page shows. Everything here is computed from in-memory state;
// the figures trail the remote store by at most one sync round-trip.
func (a *API) GetDashboardOverview(c *gin.Context) {
	now := time.Now()
	today := now.Format("2006-01-02")
	month := now.Format("2006-01")

	billings := a.Store.Billings()
	var todayRevenue, monthRevenue float64
	for _, b := range billings {
		amount := b.FinalAmount
		if amount == 0 {
			amount = models.FinalAmountFor(b.Amount, b.Discount)
		}
		if strings.HasPrefix(b.Date, today) {
			todayRevenue += amount
		}
		if strings.HasPrefix(b.Date, month) {
			monthRevenue += amount
		}
	}

	scheduledToday := 0
	for _, appt := range a.Store.Appointments() {
		if appt.Status == models.AppointmentScheduled && strings.HasPrefix(appt.Date, today) {
			scheduledToday++
		}
	}

	activeMemberships := 0
	for _, m := range a.Store.Memberships() {
		if m.Status == models.MembershipActive {
			activeMemberships++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalCustomers":    len(a.Store.Customers()),
		"totalServices":     len(a.Store.SalonServices()),
		"totalBillings":     len(billings),
		"todayRevenue":      todayRevenue,
		"monthRevenue":      monthRevenue,
		"appointmentsToday": scheduledToday,
		"activeMemberships": activeMemberships,
	})
}
