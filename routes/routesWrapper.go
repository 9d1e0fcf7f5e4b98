package routes

import (
	"styledecor/ratelim"

	"github.com/julienschmidt/httprouter"
)

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	AddAuthRoutes(router, rateLimiter)
	AddUserRoutes(router, rateLimiter)
	AddServiceRoutes(router, rateLimiter)
	AddBookingRoutes(router, rateLimiter)
	AddPaymentRoutes(router, rateLimiter)
}
