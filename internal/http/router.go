package http

import (
	"net/http"

	intconfig "huduma-portal/internal/config"
	"huduma-portal/internal/http/handlers"
	"huduma-portal/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the public portal surface and the authenticated
// back-office surface on a single gin engine.
func NewRouter(env intconfig.Env) *gin.Engine {
	handlers.Configure(env)

	r := gin.New()
	r.SetTrustedProxies(nil)

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(env.CORSAllowedOrigins))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	r.GET("/health", handlers.Health)
	r.GET("/db-check", handlers.DBCheck)
	r.GET("/routes", handlers.Routes)

	api := r.Group("/api")
	{
		api.POST("/auth/login", handlers.Login)
		api.POST("/auth/register", handlers.Register)

		// Catalog browsing.
		api.GET("/services", handlers.GetServices)
		api.GET("/services/:id", handlers.GetServiceByID)
		api.GET("/services/:id/fields", handlers.GetServiceFields)
		api.GET("/institutions", handlers.GetInstitutions)

		// Applications and billing.
		api.POST("/services/:id/applications", handlers.SubmitApplication)
		api.POST("/bill-requests", handlers.SubmitBillRequest)
		api.GET("/bill-tracking/:requestCode", handlers.TrackRequest)
		api.POST("/billing/callback", handlers.BillingCallback)
		api.GET("/bill-requests/:requestCode/receipt", handlers.GetBillReceipt)

		// Published content.
		api.GET("/guides", handlers.GetGuides)
		api.GET("/guides/:id", handlers.GetGuideByID)
		api.GET("/guides/:id/download", handlers.DownloadGuide)
		api.GET("/faqs", handlers.GetFAQs)
		api.GET("/sliders", handlers.GetSliders)
		api.GET("/contacts", handlers.GetContacts)
		api.GET("/muhimu/:kind", handlers.GetMuhimuItems)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(env.JWTSecret))
	admin.Use(middleware.RequireRoles("owner", "admin"))
	{
		admin.GET("/me", handlers.Me)
		admin.GET("/bill-requests", handlers.ListBillRequests)

		admin.POST("/services", handlers.CreateService)
		admin.PUT("/services/:id", handlers.UpdateService)
		admin.DELETE("/services/:id", handlers.DeleteService)
		admin.POST("/services/:id/fields", handlers.CreateServiceField)
		admin.PUT("/fields/:id", handlers.UpdateServiceField)
		admin.DELETE("/fields/:id", handlers.DeleteServiceField)

		admin.POST("/institutions", handlers.CreateInstitution)
		admin.PUT("/institutions/:id", handlers.UpdateInstitution)
		admin.DELETE("/institutions/:id", handlers.DeleteInstitution)

		admin.GET("/faqs", handlers.GetAllFAQs)
		admin.POST("/faqs", handlers.CreateFAQ)
		admin.PUT("/faqs/:id", handlers.UpdateFAQ)
		admin.DELETE("/faqs/:id", handlers.DeleteFAQ)

		admin.GET("/guides", handlers.GetAllGuides)
		admin.POST("/guides", handlers.CreateGuide)
		admin.PUT("/guides/:id", handlers.UpdateGuide)
		admin.DELETE("/guides/:id", handlers.DeleteGuide)

		admin.POST("/sliders", handlers.CreateSlider)
		admin.PUT("/sliders/:id", handlers.UpdateSlider)
		admin.DELETE("/sliders/:id", handlers.DeleteSlider)

		admin.POST("/contacts", handlers.CreateContact)
		admin.PUT("/contacts/:id", handlers.UpdateContact)
		admin.DELETE("/contacts/:id", handlers.DeleteContact)

		admin.POST("/muhimu/:kind", handlers.CreateMuhimuItem)
		admin.PUT("/muhimu/:kind/:id", handlers.UpdateMuhimuItem)
		admin.DELETE("/muhimu/:kind/:id", handlers.DeleteMuhimuItem)

		admin.GET("/users", handlers.GetUsers)
		admin.GET("/users/:id", handlers.GetUserByID)
		admin.POST("/users", handlers.CreateUser)
		admin.PUT("/users/:id", handlers.UpdateUser)
		admin.DELETE("/users/:id", handlers.DeleteUser)

		admin.GET("/roles", handlers.GetRoles)
		admin.GET("/permissions", handlers.GetPermissions)
	}

	handlers.SetRouter(r)
	return r
}
