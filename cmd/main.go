package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	deleteCategoryHandler "github.com/bookeasy/admin-service/internal/api/handlers/delete_category"
	deleteLocationHandler "github.com/bookeasy/admin-service/internal/api/handlers/delete_location"
	deleteServiceHandler "github.com/bookeasy/admin-service/internal/api/handlers/delete_service"
	deleteStaffHandler "github.com/bookeasy/admin-service/internal/api/handlers/delete_staff"
	deleteStaffGroupHandler "github.com/bookeasy/admin-service/internal/api/handlers/delete_staff_group"
	getBookingDataHandler "github.com/bookeasy/admin-service/internal/api/handlers/get_booking_data"
	getServiceHandler "github.com/bookeasy/admin-service/internal/api/handlers/get_service"
	getSettingsHandler "github.com/bookeasy/admin-service/internal/api/handlers/get_settings"
	listCategoriesHandler "github.com/bookeasy/admin-service/internal/api/handlers/list_categories"
	listLocationsHandler "github.com/bookeasy/admin-service/internal/api/handlers/list_locations"
	listServicesHandler "github.com/bookeasy/admin-service/internal/api/handlers/list_services"
	listStaffHandler "github.com/bookeasy/admin-service/internal/api/handlers/list_staff"
	listStaffGroupsHandler "github.com/bookeasy/admin-service/internal/api/handlers/list_staff_groups"
	saveCategoryHandler "github.com/bookeasy/admin-service/internal/api/handlers/save_category"
	saveLocationHandler "github.com/bookeasy/admin-service/internal/api/handlers/save_location"
	saveServiceHandler "github.com/bookeasy/admin-service/internal/api/handlers/save_service"
	saveSettingsHandler "github.com/bookeasy/admin-service/internal/api/handlers/save_settings"
	saveStaffHandler "github.com/bookeasy/admin-service/internal/api/handlers/save_staff"
	saveStaffGroupHandler "github.com/bookeasy/admin-service/internal/api/handlers/save_staff_group"
	"github.com/bookeasy/admin-service/internal/api/middleware"
	"github.com/bookeasy/admin-service/internal/config"
	categoryRepo "github.com/bookeasy/admin-service/internal/infra/storage/category"
	locationRepo "github.com/bookeasy/admin-service/internal/infra/storage/location"
	serviceRepo "github.com/bookeasy/admin-service/internal/infra/storage/service"
	settingsRepo "github.com/bookeasy/admin-service/internal/infra/storage/settings"
	shopRepo "github.com/bookeasy/admin-service/internal/infra/storage/shop"
	staffRepo "github.com/bookeasy/admin-service/internal/infra/storage/staff"
	productCatalogClient "github.com/bookeasy/admin-service/internal/integrations/productcatalog"
	categoriesService "github.com/bookeasy/admin-service/internal/service/categories"
	locationsService "github.com/bookeasy/admin-service/internal/service/locations"
	servicesService "github.com/bookeasy/admin-service/internal/service/services"
	settingsService "github.com/bookeasy/admin-service/internal/service/settings"
	shopsService "github.com/bookeasy/admin-service/internal/service/shops"
	staffService "github.com/bookeasy/admin-service/internal/service/staffmembers"
	saveServiceUC "github.com/bookeasy/admin-service/internal/usecase/save_service"
	"github.com/bookeasy/admin-service/pkg/logger"
	"github.com/bookeasy/admin-service/pkg/metrics"
	"github.com/bookeasy/admin-service/pkg/txmanager"
)

func main() {
	// Local development reads secrets from .env; deployed environments
	// inject them directly.
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting bookeasy admin-service...")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	catalogClient := productCatalogClient.NewClient(
		cfg.ProductCatalog.URL,
		cfg.ProductCatalog.Token,
		time.Duration(cfg.ProductCatalog.Timeout)*time.Second,
		log,
	)
	log.Info("Product catalog client initialized (url=%s timeout=%ds)",
		cfg.ProductCatalog.URL, cfg.ProductCatalog.Timeout)

	// Repositories
	shopRepository := shopRepo.NewRepository(db)
	serviceRepository := serviceRepo.NewRepository(db)
	locationRepository := locationRepo.NewRepository(db)
	staffRepository := staffRepo.NewRepository(db)
	categoryRepository := categoryRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)
	txManager := txmanager.NewTransactionManager(db)

	// Services
	shopsSvc := shopsService.NewService(shopRepository, log)
	servicesSvc := servicesService.NewService(serviceRepository, catalogClient, log)
	locationsSvc := locationsService.NewService(locationRepository, log)
	staffSvc := staffService.NewService(staffRepository, log)
	categoriesSvc := categoriesService.NewService(categoryRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Use cases
	saveServiceUseCase := saveServiceUC.NewUseCase(serviceRepository, txManager, log)

	// Handlers
	saveService := saveServiceHandler.NewHandler(saveServiceUseCase, log)
	getService := getServiceHandler.NewHandler(servicesSvc, log)
	listServices := listServicesHandler.NewHandler(servicesSvc, log)
	deleteService := deleteServiceHandler.NewHandler(servicesSvc, log)
	getBookingData := getBookingDataHandler.NewHandler(servicesSvc, log)
	saveLocation := saveLocationHandler.NewHandler(locationsSvc, log)
	listLocations := listLocationsHandler.NewHandler(locationsSvc, log)
	deleteLocation := deleteLocationHandler.NewHandler(locationsSvc, log)
	saveStaff := saveStaffHandler.NewHandler(staffSvc, log)
	listStaff := listStaffHandler.NewHandler(staffSvc, log)
	deleteStaff := deleteStaffHandler.NewHandler(staffSvc, log)
	saveStaffGroup := saveStaffGroupHandler.NewHandler(staffSvc, log)
	listStaffGroups := listStaffGroupsHandler.NewHandler(staffSvc, log)
	deleteStaffGroup := deleteStaffGroupHandler.NewHandler(staffSvc, log)
	saveCategory := saveCategoryHandler.NewHandler(categoriesSvc, log)
	listCategories := listCategoriesHandler.NewHandler(categoriesSvc, log)
	deleteCategory := deleteCategoryHandler.NewHandler(categoriesSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	saveSettings := saveSettingsHandler.NewHandler(settingsSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Hand-off record for the booking engine. Public: the engine
	// addresses a service by id and carries no shop header.
	r.HandleFunc("/api/v1/services/{serviceId}/booking-data", getBookingData.Handle).Methods(http.MethodGet)

	// Every admin route is tenant-scoped through the shop domain header
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.ShopAuth(shopsSvc, log))

	// --- Services ---
	api.HandleFunc("/services", saveService.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", saveService.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Locations ---
	api.HandleFunc("/locations", saveLocation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/locations", listLocations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations/{locationId}", deleteLocation.Handle).Methods(http.MethodDelete)

	// --- Staff ---
	api.HandleFunc("/staff", saveStaff.Handle).Methods(http.MethodPost)
	api.HandleFunc("/staff", listStaff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId}", deleteStaff.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/staff-groups", saveStaffGroup.Handle).Methods(http.MethodPost)
	api.HandleFunc("/staff-groups", listStaffGroups.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff-groups/{groupId}", deleteStaffGroup.Handle).Methods(http.MethodDelete)

	// --- Categories ---
	api.HandleFunc("/categories", saveCategory.Handle).Methods(http.MethodPost)
	api.HandleFunc("/categories", listCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/categories/{categoryId}", deleteCategory.Handle).Methods(http.MethodDelete)

	// --- Settings ---
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", saveSettings.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
