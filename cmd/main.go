package main

import (
	"log"
	"net/http"
	"os"
	"runtime"
	"time"

	"fittrack/database"
	"fittrack/docs"
	"fittrack/internal/cache"
	"fittrack/internal/coach"
	"fittrack/internal/controllers"
	"fittrack/internal/notify"
	"fittrack/internal/repository"
	"fittrack/internal/services"
	"fittrack/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "FitTrack API"
	docs.SwaggerInfo.Description = "Fitness tracking API: calorie goals, meal/exercise/sleep logs, achievements and AI coaching."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Repositories
	profileRepo := repository.NewProfileRepository(database.DB)
	mealRepo := repository.NewMealRepository(database.DB)
	exerciseRepo := repository.NewExerciseRepository(database.DB)
	sleepRepo := repository.NewSleepRepository(database.DB)
	achievementRepo := repository.NewAchievementRepository(database.DB)
	userAchievementRepo := repository.NewUserAchievementRepository(database.DB)

	// Realtime hub for websocket unlock notifications
	hub := services.NewRealtimeHub()

	// Event publisher is optional: without a broker URL unlocks are only
	// delivered over the websocket hub.
	var publisher *notify.Publisher
	if rabbitMQURL := os.Getenv("RABBITMQ_URL"); rabbitMQURL != "" {
		p, err := notify.NewPublisher(rabbitMQURL, "fittrack.events")
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, unlock events disabled: %v", err)
		} else {
			publisher = p
			defer publisher.Close()
			log.Println("Connected to RabbitMQ")
		}
	}

	// Achievement evaluation runs off the request path
	workerCount := runtime.NumCPU()
	if workerCount < 2 {
		workerCount = 2
	}
	achievementWorker := services.NewAchievementWorker(
		achievementRepo,
		userAchievementRepo,
		mealRepo,
		exerciseRepo,
		sleepRepo,
		hub,
		publisher,
		workerCount,
	)
	achievementWorker.Start()
	defer achievementWorker.Stop()

	// Redis caches coach output; the app runs without it, just slower and
	// pricier on repeated summary requests.
	var redisClient *cache.RedisClient
	var summaryCache controllers.SummaryInvalidator
	if rc, err := cache.NewRedisClient(); err != nil {
		log.Printf("Warning: Redis unavailable, coach caching disabled: %v", err)
	} else {
		redisClient = rc
		summaryCache = rc
		defer redisClient.Close()
		log.Println("Connected to Redis")
	}

	// Controllers
	profileController := controllers.NewProfileController(profileRepo)
	mealController := controllers.NewMealController(mealRepo, achievementWorker, summaryCache)
	exerciseController := controllers.NewExerciseController(exerciseRepo, profileRepo, achievementWorker, summaryCache)
	sleepController := controllers.NewSleepController(sleepRepo, achievementWorker, summaryCache)
	achievementController := controllers.NewAchievementController(achievementRepo, userAchievementRepo, hub, achievementWorker)
	dashboardController := controllers.NewDashboardController(profileRepo, mealRepo, exerciseRepo, sleepRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "FitTrack API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterProfileRoutes(router, profileController)
	routes.RegisterMealRoutes(router, mealController)
	routes.RegisterExerciseRoutes(router, exerciseController)
	routes.RegisterSleepRoutes(router, sleepController)
	routes.RegisterAchievementRoutes(router, achievementController)
	routes.RegisterDashboardRoutes(router, dashboardController)
	routes.RegisterSwaggerRoutes(router)

	// Coach routes only when the gateway is configured
	if coachClient, err := coach.NewClient(); err != nil {
		log.Printf("Warning: AI coach disabled: %v", err)
	} else {
		coachController := controllers.NewCoachController(
			coachClient,
			redisClient,
			profileRepo,
			mealRepo,
			exerciseRepo,
			sleepRepo,
		)
		routes.RegisterCoachRoutes(router, coachController)
		log.Println("AI coach enabled")
	}

	// Debug endpoints
	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		c.JSON(200, gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory_mb":  m.Alloc / 1024 / 1024,
			"workers":    workerCount,
		})
	})

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{
			"database_health": err == nil && result == 1,
		})
	})

	router.GET("/debug/redis", func(c *gin.Context) {
		if redisClient == nil {
			c.JSON(200, gin.H{"connected": false})
			return
		}
		status, err := redisClient.GetStatus(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"connected": false, "error": err.Error()})
			return
		}
		c.JSON(200, status)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	log.Printf("Starting server on port %s", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
