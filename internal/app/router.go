// internal/app/router.go
package app

import (
	activityHandler "lucky-backoffice/internal/handlers/activity"
	addressHandler "lucky-backoffice/internal/handlers/address"
	customerHandler "lucky-backoffice/internal/handlers/customer"
	estimationHandler "lucky-backoffice/internal/handlers/estimation"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	CustomerHandler   *customerHandler.CustomerHandler
	ActivityHandler   *activityHandler.ActivityHandler
	EstimationHandler *estimationHandler.EstimationHandler
	AddressHandler    *addressHandler.AddressHandler
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Customers ====================
	customers := api.Group("/customers")
	{
		customers.GET("", h.CustomerHandler.ListCustomers)
		customers.POST("", h.CustomerHandler.CreateCustomer)
		customers.GET("/:id", h.CustomerHandler.GetCustomer)
		customers.DELETE("/:id", h.CustomerHandler.DeleteCustomer)

		// Activity log lives under its owning customer
		customers.GET("/:id/activities", h.ActivityHandler.ListActivities)
	}

	// ==================== Activities ====================
	activities := api.Group("/activities")
	{
		// One save endpoint covers insert and update; the payload id decides
		activities.POST("", h.ActivityHandler.SaveActivity)
		activities.DELETE("/:id", h.ActivityHandler.DeleteActivity)
	}

	// ==================== Price Estimations ====================
	estimations := api.Group("/price-estimations")
	{
		estimations.GET("", h.EstimationHandler.ListEstimations)
		estimations.POST("", h.EstimationHandler.SaveEstimation)
		estimations.GET("/:id", h.EstimationHandler.GetEstimation)
	}

	// ==================== Address Reference ====================
	address := api.Group("/address")
	{
		address.GET("/provinces", h.AddressHandler.GetProvinces)
		address.GET("/districts", h.AddressHandler.GetDistricts)       // ?province=
		address.GET("/subdistricts", h.AddressHandler.GetSubdistricts) // ?province=&district=
		address.GET("/zipcode", h.AddressHandler.GetZipCode)           // ?province=&district=&subdistrict=
		address.GET("/zipcode/lookup", h.AddressHandler.LookupZip)     // ?zip=
	}
}
