package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-frontdesk/controllers"
	"hotel-frontdesk/middleware"
)

// Controllers groups the handlers the router mounts.
type Controllers struct {
	Customers *controllers.CustomerController
	Rooms     *controllers.RoomController
	Billing   *controllers.BillingController
	Reports   *controllers.ReportController
	RoomTypes *controllers.RoomTypeController
}

// SetupRouter wires the front desk API onto a gin engine.
func SetupRouter(ctl Controllers, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		customers := api.Group("/customers")
		{
			customers.GET("", ctl.Customers.ListCustomers)
			customers.POST("", ctl.Customers.CreateCustomer)
			customers.GET("/:id", ctl.Customers.GetCustomer)
			customers.DELETE("/:id", ctl.Customers.DeleteCustomer)
		}

		rooms := api.Group("/rooms")
		{
			// static segments before /:number
			rooms.GET("/available", ctl.Rooms.ListAvailable)
			rooms.GET("/occupied", ctl.Rooms.ListOccupied)
			rooms.GET("/:number", ctl.Rooms.GetRoom)
			rooms.POST("/:number/book", ctl.Rooms.BookRoom)
			rooms.POST("/:number/checkout", ctl.Rooms.CheckOutRoom)
		}

		api.GET("/room-types", ctl.RoomTypes.GetRoomTypes)

		billing := api.Group("/billing")
		{
			billing.GET("/rooms/:number", ctl.Billing.GetStayQuote)
			billing.GET("/invoice", ctl.Billing.GetInvoice)
			billing.DELETE("/invoice", ctl.Billing.ResetInvoice)
			billing.POST("/invoice/items", ctl.Billing.AddInvoiceItem)
			billing.POST("/invoice/discount", ctl.Billing.ApplyDiscount)
			billing.POST("/invoice/payment", ctl.Billing.ProcessPayment)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/occupancy", ctl.Reports.GetOccupancy)
			reports.GET("/activity", ctl.Reports.GetActivity)
		}
	}

	return r
}
