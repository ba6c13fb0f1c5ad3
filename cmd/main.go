package main

import (
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"soulsrpg/cache"
	"soulsrpg/db"
	"soulsrpg/handlers"
	"soulsrpg/middleware"
	"soulsrpg/monitoring"
	"soulsrpg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	utils.InitLogger()
	db.InitDB()
	handlers.InitSimilarity()
	monitoring.InitMetrics()

	if err := cache.InitRedis(); err != nil {
		utils.Log.Warnf("Redis unavailable, rate limiting disabled: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.CustomRecovery(handlers.Recovery))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(monitoring.PrometheusMiddleware())

	clientURL := os.Getenv("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:5173"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/", handlers.Welcome)
	r.GET("/metrics", monitoring.PrometheusHandler())

	games := r.Group("/api/games")
	games.Use(middleware.RateLimit(300, time.Minute))
	{
		// Fixed routes first so they never collide with /:id
		games.GET("/search", handlers.SearchGames)
		games.GET("/filter", handlers.FilterGames)
		games.GET("/featured", handlers.GetFeaturedGames)
		games.GET("/stats", handlers.GetStats)

		games.GET("", handlers.GetGames)
		games.POST("", handlers.CreateGame)

		games.GET("/category/:category", handlers.GetGamesByCategory)
		games.GET("/subgenre/:subGenre", handlers.GetGamesBySubGenre)

		games.GET("/:id/similar", handlers.GetSimilarGames)
		games.GET("/:id", handlers.GetGameByID)
		games.PUT("/:id", handlers.UpdateGame)
		games.DELETE("/:id", handlers.DeleteGame)
	}

	r.NoRoute(handlers.NotFound)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	useHTTPS := os.Getenv("USE_HTTPS") == "true"
	certFile := os.Getenv("TLS_CERT_FILE")
	keyFile := os.Getenv("TLS_KEY_FILE")

	if useHTTPS && certFile != "" && keyFile != "" {
		utils.Log.Infof("Starting server with HTTPS on port %s", port)

		server := &http.Server{
			Addr:    ":" + port,
			Handler: r,
			TLSConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		}
		if err := server.ListenAndServeTLS(certFile, keyFile); err != nil {
			utils.Log.Fatalf("Failed to start HTTPS server: %v", err)
		}
		return
	}

	utils.Log.Infof("Starting server with HTTP on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.Log.Fatalf("Failed to start server: %v", err)
	}
}
