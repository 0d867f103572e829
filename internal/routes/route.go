package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ilhadomel/passeios/internal/container"
	"github.com/ilhadomel/passeios/internal/handlers"
	"github.com/ilhadomel/passeios/internal/middleware"
	"github.com/ilhadomel/passeios/internal/models"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{container.Config.PublicBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID", "X-Actor-Role", "X-Actor-Company"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// The public booking surface takes no credentials, so it gets a per-IP
	// rate limit instead.
	publicLimiter := middleware.NewRateLimiter(5, 10)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "passeios-api",
			})
		})

		// Public browsing and booking surface
		v1.GET("/companies", handlers.ListCompanies(container.CatalogService))
		v1.GET("/companies/:slug", handlers.GetCompanyBySlug(container.CatalogService))
		v1.GET("/tours/:id", handlers.GetTour(container.CatalogService))
		v1.POST("/bookings", publicLimiter.Limit(), handlers.CreateBooking(container.BookingService))

		// Customer self-service surface (lookup + cancel by document)
		v1.POST("/bookings/search", publicLimiter.Limit(), handlers.SearchBookings(container.BookingService))
		v1.POST("/bookings/:id/cancel", publicLimiter.Limit(), handlers.CancelBooking(container.BookingService))
	}

	// Seller referral tooling
	seller := v1.Group("/sellers", middleware.RequireRole(models.RoleSeller, models.RoleMaster))
	{
		seller.GET("/:id/referral-link", handlers.ReferralLink(container.ReferralService))
		seller.GET("/:id/referral-qr", handlers.ReferralQR(container.ReferralService))
		seller.GET("/:id/vouchers", handlers.ListVouchers(container.ReferralService))
		seller.POST("/:id/vouchers", handlers.IssueVoucher(container.ReferralService))
		seller.GET("/:id/vouchers/sheet", handlers.VoucherSheet(container.ReferralService))
		seller.GET("/:id/sales", handlers.SellerSalesReport(container.ReportService))
	}

	// Company dashboard
	company := v1.Group("/company", middleware.RequireRole(models.RoleCompany, models.RoleMaster))
	{
		company.GET("/bookings", handlers.ListCompanyBookings(container.BookingService))
		company.PATCH("/bookings/:id/status", handlers.SetBookingStatus(container.BookingService))
		company.GET("/tours", handlers.ListCompanyTours(container.CatalogService))
		company.POST("/tours", handlers.CreateTour(container.CatalogService))
		company.PUT("/tours/:id", handlers.UpdateTour(container.CatalogService))
		company.DELETE("/tours/:id", handlers.DeleteTour(container.CatalogService))
		company.GET("/reports/sellers", handlers.CompanySellerReport(container.ReportService))
	}

	// Master admin
	admin := v1.Group("/admin", middleware.RequireRole(models.RoleMaster))
	{
		admin.POST("/companies", handlers.CreateCompany(container.CatalogService))
		admin.PUT("/companies/:id", handlers.UpdateCompany(container.CatalogService))
		admin.DELETE("/companies/:id", handlers.DeleteCompany(container.CatalogService))
		admin.GET("/sellers", handlers.ListSellers(container.CatalogService))
		admin.POST("/sellers", handlers.CreateSeller(container.CatalogService))
		admin.PUT("/sellers/:id", handlers.UpdateSeller(container.CatalogService))
		admin.DELETE("/sellers/:id", handlers.DeleteSeller(container.CatalogService))
		admin.DELETE("/vouchers/:code", handlers.DeleteVoucher(container.ReferralService))
		admin.GET("/reports/transactions", handlers.PlatformReport(container.ReportService))
	}

	return r
}
