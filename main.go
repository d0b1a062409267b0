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

	"hotel-frontdesk/config"
	"hotel-frontdesk/controllers"
	"hotel-frontdesk/routes"
	"hotel-frontdesk/services"
	"hotel-frontdesk/storage"
)

type stores struct {
	customers services.CustomerRepository
	rooms     services.RoomRepository
	events    services.ActivityLog
}

func openStores(cfg config.Config) (stores, error) {
	if cfg.StorageDriver == config.DriverMySQL {
		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			return stores{}, err
		}
		log.Println("✅ Database connection established and migrations applied.")
		return stores{
			customers: storage.NewCustomerTable(db),
			rooms:     storage.NewRoomTable(db),
			events:    storage.NewEventTable(db),
		}, nil
	}

	log.Printf("✅ Using text files under %q", cfg.DataDir)
	return stores{
		customers: storage.NewCustomerFile(cfg.DataDir),
		rooms:     storage.NewRoomFile(cfg.DataDir),
		events:    storage.NewLogEvents(0),
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	st, err := openStores(cfg)
	if err != nil {
		log.Fatalf("❌ Storage setup failed: %v", err)
	}

	// Initialize services
	customerService, err := services.NewCustomerService(st.customers, st.events)
	if err != nil {
		log.Fatalf("❌ Loading customers failed: %v", err)
	}
	roomService, err := services.NewRoomService(st.rooms, cfg.TotalRooms, st.events)
	if err != nil {
		log.Fatalf("❌ Loading rooms failed: %v", err)
	}
	billingService := services.NewBillingService(roomService, customerService)
	reportService := services.NewReportService(roomService, customerService)
	log.Printf("✅ Front desk ready: %d customers, %d rooms", len(customerService.List()), len(roomService.All()))

	// Initialize controllers
	router := routes.SetupRouter(routes.Controllers{
		Customers: controllers.NewCustomerController(customerService),
		Rooms:     controllers.NewRoomController(roomService, reportService),
		Billing:   controllers.NewBillingController(billingService, controllers.NewFrontDeskSession()),
		Reports:   controllers.NewReportController(reportService, st.events),
		RoomTypes: controllers.NewRoomTypeController(services.NewRoomTypeService(roomService)),
	}, cfg.CORSOrigins)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
