package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"agrilink-backend/config"
	"agrilink-backend/internal/api"
	"agrilink-backend/internal/middleware"
	"agrilink-backend/internal/services"
	"agrilink-backend/internal/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	// Initialize the in-memory data store with the demo dataset
	dataStore := store.New()
	log.Printf("Data store seeded: %v", dataStore.Counts())

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Slow request logging
	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if duration := time.Since(start); duration > 5*time.Second {
			log.Printf("slow request: %s %s took %v", c.Request.Method, c.Request.URL.Path, duration)
		}
	})

	// CORS
	router.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := cfg.AllowAllOrigins
		if !allowed {
			for _, o := range cfg.AllowedOrigins {
				if o == origin {
					allowed = true
					break
				}
			}
		}

		if allowed && origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, Accept, Origin")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
			c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Security middleware
	securityConfig := &middleware.SecurityConfig{
		MaxRequestSize:    cfg.MaxRequestSize,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   time.Duration(cfg.RateLimitWindow) * time.Second,
		RequireHTTPS:      cfg.Environment == "production",
	}
	router.Use(middleware.SecurityMiddleware(securityConfig))

	// Inject the store into every request context
	router.Use(func(c *gin.Context) {
		c.Set("store", dataStore)
		c.Next()
	})

	// Services
	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpiration)
	hub := services.NewHub(dataStore)
	go hub.Run()
	notifier := services.NewNotifier(dataStore, hub)
	visionService := services.NewVisionService(cfg.VisionAPIURL)
	smsService := services.NewSMSService()

	api.InitializeServices(notifier, visionService, smsService, hub)

	authHandlers := api.NewAuthHandlers(authService)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	adminRole := "ADMIN"
	sellerRoles := []string{"ADMIN", "WHOLESALER", "FARMER"}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status":      "healthy",
				"environment": cfg.Environment,
			},
		})
	})

	apiGroup := router.Group("/api/v1")
	{
		// Auth
		auth := apiGroup.Group("/auth")
		auth.Use(middleware.AuthRateLimit(cfg.AuthRateLimit))
		{
			auth.POST("/login", authHandlers.Login)
			auth.POST("/logout", authHandlers.Logout)
			auth.POST("/refresh", authHandlers.RefreshToken)
			auth.GET("/me", authMiddleware.AuthRequired(), authHandlers.Me)
		}

		// Public signup surface
		apiGroup.POST("/registrations", api.CreateRegistrationRequest)
		apiGroup.GET("/forms/:role", api.GetFormTemplate)

		// WebSocket
		apiGroup.GET("/ws", authMiddleware.AuthRequired(), api.HandleWebSocket)

		// Everything below requires a valid token
		protected := apiGroup.Group("")
		protected.Use(authMiddleware.AuthRequired())
		{
			// Users
			protected.GET("/users", authMiddleware.RequireRoles(adminRole), api.GetUsers)
			protected.GET("/users/:id", api.GetUser)
			protected.PUT("/users/settings", api.UpdateUserSettings)
			protected.PUT("/users/password", api.ChangePassword)
			protected.DELETE("/users/:id", authMiddleware.RequireRoles(adminRole), api.DeleteUser)

			// Catalog
			protected.GET("/products", api.GetProducts)
			protected.GET("/products/:id", api.GetProduct)
			protected.POST("/products", authMiddleware.RequireRoles(adminRole), api.CreateProduct)
			protected.PUT("/products/:id/pricing", authMiddleware.RequireRoles(adminRole), api.UpdateProductPricing)

			// Inventory
			protected.GET("/inventory", api.GetInventory)
			protected.GET("/inventory/:id", api.GetInventoryItem)
			protected.POST("/inventory", authMiddleware.RequireRoles(sellerRoles...), api.AddInventoryItem)
			protected.POST("/inventory/:id/donate", authMiddleware.RequireRoles(sellerRoles...), api.MarkLotDonated)
			protected.PUT("/inventory/:id/discount", authMiddleware.RequireRoles(sellerRoles...), api.SetDiscountRule)
			protected.POST("/inventory/:id/verify-price", authMiddleware.RequireRoles(adminRole), api.VerifyPrice)
			protected.GET("/pricing-rules", api.GetPricingRules)

			// Orders
			protected.GET("/orders", api.GetOrders)
			protected.GET("/orders/:id", api.GetOrder)
			protected.POST("/orders", api.CreateOrder)
			protected.POST("/orders/instant", api.CreateInstantOrder)
			protected.POST("/orders/:id/accept", api.AcceptOrder)
			protected.POST("/orders/:id/pack", api.PackOrder)
			protected.POST("/orders/:id/ship", api.ShipOrder)
			protected.POST("/orders/:id/deliver", api.DeliverOrder)
			protected.POST("/orders/:id/cancel", api.CancelOrder)
			protected.PUT("/orders/:id/driver", api.AssignDriver)
			protected.PUT("/orders/:id/logistics", api.UpdateOrderLogistics)
			protected.PUT("/orders/:id/payment", api.SetPaymentStatus)
			protected.POST("/orders/:id/issue", api.ReportOrderIssue)
			protected.PUT("/orders/:id/priority", api.SetOrderPriority)

			// Customers
			protected.GET("/customers", api.GetCustomers)
			protected.GET("/customers/match", api.FindBuyersForProduct)
			protected.GET("/customers/:id", api.GetCustomer)
			protected.POST("/customers", authMiddleware.RequireRoles(adminRole), api.CreateCustomer)
			protected.PUT("/customers/:id", authMiddleware.RequireRoles(adminRole), api.UpdateCustomer)
			protected.PUT("/customers/:id/connection", authMiddleware.RequireRoles(adminRole), api.UpdateCustomerConnection)

			// Price requests
			protected.GET("/price-requests", api.GetPriceRequests)
			protected.GET("/price-requests/:id", api.GetPriceRequest)
			protected.POST("/price-requests", authMiddleware.RequireRoles(adminRole), api.CreatePriceRequest)
			protected.POST("/price-requests/:id/respond", api.SubmitPriceRequestResponse)
			protected.POST("/price-requests/:id/resolve", authMiddleware.RequireRoles(adminRole), api.ResolvePriceRequest)

			// Registrations (admin review)
			protected.GET("/registrations", authMiddleware.RequireRoles(adminRole), api.GetRegistrationRequests)
			protected.GET("/registrations/:id", authMiddleware.RequireRoles(adminRole), api.GetRegistrationRequest)
			protected.POST("/registrations/:id/approve", authMiddleware.RequireRoles(adminRole), api.ApproveRegistration)
			protected.POST("/registrations/:id/reject", authMiddleware.RequireRoles(adminRole), api.RejectRegistration)

			// Notifications
			protected.GET("/notifications", api.GetNotifications)
			protected.PUT("/notifications/:id/read", api.MarkNotificationRead)
			protected.POST("/notifications/read-all", api.MarkAllNotificationsRead)

			// Chat
			protected.GET("/chat/:userId", api.GetChatMessages)
			protected.POST("/chat/:userId", api.SendChatMessage)

			// Staff rosters
			protected.GET("/staff/drivers", api.GetDrivers)
			protected.POST("/staff/drivers", api.AddDriver)
			protected.GET("/staff/packers", api.GetPackers)
			protected.POST("/staff/packers", api.AddPacker)

			// Vision and SMS helpers
			protected.POST("/vision/identify", api.IdentifyProduct)
			protected.POST("/sms/link", api.ComposeSMSLink)
		}
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("AgriLink API server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server shutdown complete")
}
