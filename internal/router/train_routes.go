package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mlindqv/train-seat-booking/internal/handler"
	"github.com/mlindqv/train-seat-booking/internal/middleware"
)

// RegisterTrains registers the train inventory and booking endpoints.  All of
// them require an authenticated clerk; creating and deleting trains is
// reserved for ADMIN.  The cacheMW middleware (Redis response cache) wraps
// the read-heavy seat map and listing endpoints so repeated lookups between
// bookings do not touch the roster lock.
func RegisterTrains(e *echo.Echo, th *handler.TrainHandler, bh *handler.BookingHandler, tk *handler.TicketHandler, jwtSecret string, cacheMW echo.MiddlewareFunc) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("AGENT", "ADMIN"))

	g.GET("/trains", th.List, cacheMW)
	g.GET("/trains/:number", th.Get)
	g.GET("/trains/:number/seatmap", th.SeatMap, cacheMW)
	g.GET("/trains/:number/tickets", tk.TrainTickets)
	g.GET("/tickets", tk.SessionTickets)

	g.POST("/trains/:number/bookings", bh.Book)
	g.DELETE("/trains/:number/bookings", bh.Unbook)

	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole("ADMIN"))
	admin.POST("/trains", th.Create)
	admin.DELETE("/trains/:number", th.Delete)
}
