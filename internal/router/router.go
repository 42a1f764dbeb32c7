package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	ListItems(c *ginext.Context)
	GetItem(c *ginext.Context)
	SubmitBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	MyBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	GetCalendar(c *ginext.Context)
	ExportCalendar(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUser(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Sessions
		api.POST("/sessions", h.Login)
		api.DELETE("/sessions", h.Logout)

		// Items
		api.GET("/items", h.ListItems)
		api.GET("/items/:id", h.GetItem)

		// Bookings
		api.POST("/bookings", h.SubmitBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/me", h.MyBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id/status", h.UpdateBookingStatus)

		// Calendar
		api.GET("/calendar", h.GetCalendar)
		api.GET("/calendar/export", h.ExportCalendar)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
