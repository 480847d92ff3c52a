package routes

import (
	"net/http"

	"salonsync-backend/config"
	"salonsync-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(api *controllers.API) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	{
		customers := apiGroup.Group("/customers")
		{
			customers.POST("", api.CreateCustomer)
			customers.GET("", api.GetCustomers)
			customers.GET("/:id", api.GetCustomer)
			customers.PUT("/:id", api.UpdateCustomer)
			customers.DELETE("/:id", api.DeleteCustomer)
		}

		templates := apiGroup.Group("/templates")
		{
			templates.POST("", api.CreateTemplate)
			templates.GET("", api.GetTemplates)
			templates.PUT("/:id", api.UpdateTemplate)
			templates.DELETE("/:id", api.DeleteTemplate)
		}

		billings := apiGroup.Group("/billings")
		{
			billings.POST("", api.CreateBilling)
			billings.GET("", api.GetBillings)
			billings.PUT("/:id", api.UpdateBilling)
			billings.DELETE("/:id", api.DeleteBilling)
		}

		appointments := apiGroup.Group("/appointments")
		{
			appointments.POST("", api.CreateAppointment)
			appointments.GET("", api.GetAppointments)
			appointments.PUT("/:id", api.UpdateAppointment)
			appointments.DELETE("/:id", api.DeleteAppointment)
		}

		services := apiGroup.Group("/services")
		{
			services.POST("", api.CreateService)
			services.GET("", api.GetServices)
			services.PUT("/:id", api.UpdateService)
			services.DELETE("/:id", api.DeleteService)
		}

		memberships := apiGroup.Group("/memberships")
		{
			memberships.POST("", api.CreateMembership)
			memberships.GET("", api.GetMemberships)
			memberships.GET("/:id", api.GetMembership)
			memberships.PUT("/:id", api.UpdateMembership)
			memberships.DELETE("/:id", api.DeleteMembership)
			memberships.POST("/:id/usage", api.RecordMembershipUsage)
		}

		plans := apiGroup.Group("/membership-plans")
		{
			plans.POST("", api.CreateMembershipPlan)
			plans.GET("", api.GetMembershipPlans)
			plans.PUT("/:id", api.UpdateMembershipPlan)
			plans.DELETE("/:id", api.DeleteMembershipPlan)
		}

		apiGroup.POST("/messages/send", api.SendMessages)
		apiGroup.GET("/dashboard", api.GetDashboardOverview)
	}

	return r
}
