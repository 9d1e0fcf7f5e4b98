package routes

import (
	"styledecor/middleware"
	"styledecor/payments"
	"styledecor/ratelim"

	"github.com/julienschmidt/httprouter"
)

// AddPaymentRoutes wires the payment handlers to the router.
func AddPaymentRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.POST("/create-payment-intent", middleware.Authenticate(payments.CreatePaymentIntent))
	router.POST("/payments", middleware.Authenticate(payments.RecordPayment))
	router.GET("/payments/user/:email", middleware.Authenticate(payments.GetPaymentsByUser))
}
