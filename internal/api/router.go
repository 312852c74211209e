package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jmoreno/solarops/internal/api/handler"
	"github.com/jmoreno/solarops/internal/api/middleware"
	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
	"github.com/jmoreno/solarops/internal/service"
)

// Services bundles the service layer the router depends on.
type Services struct {
	Auth      *service.AuthService
	Jobs      *service.JobService
	Dispatch  *service.DispatchService
	Inventory *service.InventoryService
	Weather   *service.WeatherService
	Photos    *service.PhotoService
}

// Repositories bundles the repositories the CRUD handlers use directly.
type Repositories struct {
	Customers *repository.CustomerRepository
	Crews     *repository.CrewRepository
	Vehicles  *repository.VehicleRepository
	Partners  *repository.PartnerRepository
	Leads     *repository.LeadRepository
	Inventory *repository.InventoryRepository
	Estimates *repository.EstimateRepository
	Invoices  *repository.InvoiceRepository
	SKUs      *repository.SKURepository
	Tech      *repository.TechRepository
	Jobs      *repository.JobRepository
	Users     *repository.UserRepository
}

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	svcs *Services,
	repos *Repositories,
	mode string,
	allowedOrigins []string,
) *gin.Engine {
	// Set Gin mode
	switch mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	registerValidations()

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	authHandler := handler.NewAuthHandler(repos.Users)
	jobHandler := handler.NewJobHandler(svcs.Jobs, svcs.Photos)
	dispatchHandler := handler.NewDispatchHandler(svcs.Dispatch)
	customerHandler := handler.NewCustomerHandler(repos.Customers)
	crewHandler := handler.NewCrewHandler(repos.Crews)
	vehicleHandler := handler.NewVehicleHandler(repos.Vehicles)
	partnerHandler := handler.NewPartnerHandler(repos.Partners)
	leadHandler := handler.NewLeadHandler(repos.Leads)
	inventoryHandler := handler.NewInventoryHandler(repos.Inventory, svcs.Inventory)
	estimateHandler := handler.NewEstimateHandler(repos.Estimates)
	invoiceHandler := handler.NewInvoiceHandler(repos.Invoices)
	skuHandler := handler.NewSKUHandler(repos.SKUs)
	techHandler := handler.NewTechHandler(repos.Tech, repos.Jobs)
	weatherHandler := handler.NewWeatherHandler(svcs.Weather)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes, all authenticated
	v1 := r.Group("/api/v1")
	v1.Use(middleware.Auth(svcs.Auth))

	office := middleware.RequireRole(domain.RoleAdmin, domain.RoleManager)
	sales := middleware.RequireRole(domain.RoleAdmin, domain.RoleManager, domain.RoleSales)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// Principal
	v1.GET("/auth/me", authHandler.Me)
	v1.GET("/auth/users", adminOnly, authHandler.ListUsers)
	v1.POST("/auth/users", adminOnly, authHandler.CreateUser)
	v1.PATCH("/auth/users/:id", adminOnly, authHandler.UpdateUser)

	// Jobs
	v1.POST("/jobs", office, jobHandler.CreateJob)
	v1.GET("/jobs", jobHandler.ListJobs)
	v1.GET("/jobs/:id", jobHandler.GetJob)
	v1.PUT("/jobs/:id", office, jobHandler.UpdateJob)
	v1.POST("/jobs/:id/transition", office, jobHandler.TransitionJob)
	v1.POST("/jobs/:id/photos", jobHandler.UploadPhoto)

	// Dispatch board
	v1.POST("/dispatch", office, dispatchHandler.CreateEntry)
	v1.GET("/dispatch", dispatchHandler.ListEntries)
	v1.PUT("/dispatch/:id", office, dispatchHandler.UpdateEntry)
	v1.DELETE("/dispatch/:id", office, dispatchHandler.DeleteEntry)

	// Customers
	v1.POST("/customers", sales, customerHandler.CreateCustomer)
	v1.GET("/customers", customerHandler.ListCustomers)
	v1.GET("/customers/:id", customerHandler.GetCustomer)
	v1.PUT("/customers/:id", sales, customerHandler.UpdateCustomer)
	v1.DELETE("/customers/:id", office, customerHandler.DeleteCustomer)

	// Crews
	v1.POST("/crews", office, crewHandler.CreateCrew)
	v1.GET("/crews", crewHandler.ListCrews)
	v1.GET("/crews/:id", crewHandler.GetCrew)
	v1.PUT("/crews/:id", office, crewHandler.UpdateCrew)
	v1.DELETE("/crews/:id", office, crewHandler.DeleteCrew)

	// Vehicles
	v1.POST("/vehicles", office, vehicleHandler.CreateVehicle)
	v1.GET("/vehicles", vehicleHandler.ListVehicles)
	v1.GET("/vehicles/:id", vehicleHandler.GetVehicle)
	v1.PUT("/vehicles/:id", office, vehicleHandler.UpdateVehicle)
	v1.DELETE("/vehicles/:id", office, vehicleHandler.DeleteVehicle)

	// Partners
	v1.POST("/partners", sales, partnerHandler.CreatePartner)
	v1.GET("/partners", partnerHandler.ListPartners)
	v1.GET("/partners/:id", partnerHandler.GetPartner)
	v1.PUT("/partners/:id", sales, partnerHandler.UpdatePartner)
	v1.DELETE("/partners/:id", office, partnerHandler.DeletePartner)

	// Leads
	v1.POST("/leads", sales, leadHandler.CreateLead)
	v1.GET("/leads", sales, leadHandler.ListLeads)
	v1.GET("/leads/:id", sales, leadHandler.GetLead)
	v1.PUT("/leads/:id", sales, leadHandler.UpdateLead)
	v1.DELETE("/leads/:id", office, leadHandler.DeleteLead)

	// Inventory
	v1.POST("/inventory/items", office, inventoryHandler.CreateItem)
	v1.GET("/inventory/items", inventoryHandler.ListItems)
	v1.GET("/inventory/items/:id", inventoryHandler.GetItem)
	v1.PUT("/inventory/items/:id", office, inventoryHandler.UpdateItem)
	v1.DELETE("/inventory/items/:id", office, inventoryHandler.DeleteItem)
	v1.POST("/inventory/bins", office, inventoryHandler.CreateBin)
	v1.GET("/inventory/bins", inventoryHandler.ListBins)
	v1.POST("/inventory/bins/transfer", inventoryHandler.Transfer)
	v1.GET("/inventory/activity", inventoryHandler.ListActivity)

	// Billing
	v1.POST("/estimates", sales, estimateHandler.CreateEstimate)
	v1.GET("/estimates", sales, estimateHandler.ListEstimates)
	v1.GET("/estimates/:id", sales, estimateHandler.GetEstimate)
	v1.PUT("/estimates/:id", sales, estimateHandler.UpdateEstimate)
	v1.DELETE("/estimates/:id", office, estimateHandler.DeleteEstimate)

	v1.POST("/invoices", office, invoiceHandler.CreateInvoice)
	v1.GET("/invoices", office, invoiceHandler.ListInvoices)
	v1.GET("/invoices/:id", office, invoiceHandler.GetInvoice)
	v1.PUT("/invoices/:id", office, invoiceHandler.UpdateInvoice)
	v1.DELETE("/invoices/:id", office, invoiceHandler.DeleteInvoice)

	v1.POST("/skus", office, skuHandler.CreateSKU)
	v1.GET("/skus", skuHandler.ListSKUs)
	v1.GET("/skus/:id", skuHandler.GetSKU)
	v1.PUT("/skus/:id", office, skuHandler.UpdateSKU)
	v1.DELETE("/skus/:id", office, skuHandler.DeleteSKU)

	// Field submissions
	v1.POST("/tech/jsa", techHandler.CreateJSA)
	v1.GET("/tech/jsa", techHandler.ListJSAs)
	v1.POST("/tech/damage-scans", techHandler.CreateDamageScan)
	v1.GET("/tech/damage-scans", techHandler.ListDamageScans)
	v1.POST("/tech/detach-reports", techHandler.CreateDetachReport)
	v1.GET("/tech/detach-reports", techHandler.ListDetachReports)
	v1.POST("/tech/reset-reports", techHandler.CreateResetReport)
	v1.GET("/tech/reset-reports", techHandler.ListResetReports)

	// Weather
	v1.GET("/weather/forecast", weatherHandler.GetForecast)

	return r
}
