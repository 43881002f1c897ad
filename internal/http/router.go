package api

import (
	"log"
	stdhttp "net/http"

	intconfig "techpark/internal/config"
	h "techpark/internal/http/handlers"
	"techpark/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, deps h.API) *gin.Engine {
	deps.StrictAmount = env.StrictAmount

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(deps.Metrics), gin.Recovery(), middleware.CORS(middleware.AllowedOrigins()))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		api.GET("/locations", deps.ListLocations)
		api.POST("/quote", deps.Quote)

		bookings := api.Group("/bookings")
		bookings.POST("", deps.CreateBooking)
		bookings.GET("/:id/receipt", deps.GetBookingReceipt)
	}

	h.SetRouter(r)
	return r
}
