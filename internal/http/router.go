package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"travelpartner/internal/http/handlers"
	"travelpartner/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(h *handlers.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     h.Env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

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

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/auth/login", h.Login)

		// Vehicle catalog suggestions stay public; the data itself is public.
		catalog := api.Group("/catalog")
		catalog.GET("/makes", h.CatalogMakes)
		catalog.GET("/models", h.CatalogModels)

		secured := api.Group("")
		secured.Use(middleware.RequireAuth([]byte(h.Env.JWTSecret)))
		{
			secured.GET("/dashboard/summary", h.DashboardSummary)

			rides := secured.Group("/rides")
			rides.GET("", h.GetRides)
			rides.PATCH("/:id/status", h.UpdateRideStatus)
			rides.PATCH("/:id/details", h.UpdateRideDetails)
			rides.POST("/:id/seat-session", h.OpenSeatSession)

			sessions := secured.Group("/seat-sessions")
			sessions.GET("/:sid", h.GetSeatSession)
			sessions.PATCH("/:sid/seats/:index", h.UpdateSeat)
			sessions.POST("/:sid/seats", h.AddSeat)
			sessions.DELETE("/:sid/seats/:index", h.RemoveSeat)
			sessions.POST("/:sid/save", h.SaveSeatSession)
			sessions.DELETE("/:sid", h.CloseSeatSession)

			reports := secured.Group("/reports")
			reports.GET("/revenue", h.RevenueReport)
		}
	}

	return r
}
