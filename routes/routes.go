package routes

import (
	"styledecor/auth"
	"styledecor/bookings"
	"styledecor/middleware"
	"styledecor/ratelim"
	"styledecor/services"
	"styledecor/users"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/jwt", rl.Limit(auth.IssueToken))
}

func AddUserRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/users", rl.Limit(users.Register))
	router.GET("/users/role/:email", middleware.Authenticate(users.GetRole))
	router.GET("/decorators/top", users.TopDecorators)
}

func AddServiceRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.GET("/services", services.GetServices)
	router.GET("/services/:id", services.GetService)

	// admin routes require a valid token; no role check
	router.POST("/admin/services", middleware.Authenticate(services.CreateService))
	router.PUT("/admin/services/:id", middleware.Authenticate(services.UpdateService))
	router.DELETE("/admin/services/:id", middleware.Authenticate(services.DeleteService))
}

func AddBookingRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.POST("/bookings", middleware.Authenticate(bookings.CreateBooking))
	router.GET("/bookings/user/:email", middleware.Authenticate(bookings.GetBookingsByUser))
	router.PATCH("/decorator/status/:id", middleware.Authenticate(bookings.UpdateStatus))
}
