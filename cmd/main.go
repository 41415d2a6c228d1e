package main

import (
	"log"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"time"

	"nutrilog/database"
	"nutrilog/internal/cache"
	"nutrilog/internal/controllers"
	"nutrilog/internal/openai"
	"nutrilog/internal/repository"
	"nutrilog/internal/services"
	"nutrilog/internal/usecase"
	"nutrilog/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func recommendationConfigFromEnv() usecase.RecommendationConfig {
	config := usecase.DefaultRecommendationConfig()
	if v := os.Getenv("RECOMMENDATION_REQUIRED_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			config.RequiredDays = parsed
		}
	}
	if v := os.Getenv("RECOMMENDATION_COOLDOWN"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			config.CoolDown = parsed
		}
	}
	if v := os.Getenv("RECOMMENDATION_DAILY_CAP"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			config.DailyCap = parsed
		}
	}
	return config
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)
	foodEntryRepo := repository.NewFoodEntryRepository(database.DB)
	targetRepo := repository.NewTargetRepository(database.DB)
	uow := repository.NewNutritionUnitOfWork(database.DB)

	// Initialize OpenAI client (estimator + report + recommendation generators)
	aiClient, err := openai.NewClient()
	if err != nil {
		log.Fatal("Failed to create OpenAI client:", err)
	}

	// Optional Redis cache for the report read path
	var redisCache *cache.RedisClient
	if os.Getenv("REDIS_URL") != "" {
		redisCache, err = cache.NewRedisClient()
		if err != nil {
			log.Printf("Warning: Redis unavailable, report caching disabled: %v", err)
			redisCache = nil
		} else {
			defer redisCache.Close()
			log.Println("Redis connection established successfully")
		}
	}

	// Initialize the nutrition pipeline services
	clock := usecase.NewSystemClock()
	gate := usecase.NewPlanGate(clock)
	checker := usecase.NewDailyLogChecker()
	ensurer := usecase.NewTargetSnapshotEnsurer(clock)

	mealService := usecase.NewMealNutritionService(uow, gate, aiClient, clock)
	dailyService := usecase.NewDailyNutritionService(uow, gate, clock)
	dailyLogService := usecase.NewDailyLogService(uow, checker)
	reportService := usecase.NewDailyReportService(uow, gate, checker, ensurer, dailyService, aiClient, clock)
	recommendationService := usecase.NewRecommendationService(uow, gate, aiClient, clock, recommendationConfigFromEnv())

	// Initialize recommendation job worker
	workerCount := runtime.NumCPU()
	if workerCount < 3 {
		workerCount = 3
	}

	recommendationWorker := services.NewRecommendationJobWorker(userRepo, recommendationService, clock, workerCount)
	log.Printf("Starting recommendation job worker with %d workers...", workerCount)
	recommendationWorker.Start()
	defer recommendationWorker.Stop()

	// Initialize controllers
	userController := controllers.NewUserController(userRepo)
	profileController := controllers.NewUserProfileController(profileRepo)
	foodEntryController := controllers.NewFoodEntryController(foodEntryRepo)
	targetController := controllers.NewTargetController(targetRepo)
	nutritionController := controllers.NewNutritionController(mealService, dailyService, dailyLogService)
	reportController := controllers.NewReportController(reportService, redisCache)
	recommendationController := controllers.NewRecommendationController(recommendationService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Nutrilog API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterUserProfileRoutes(router, profileController)
	routes.RegisterFoodEntryRoutes(router, foodEntryController)
	routes.RegisterTargetRoutes(router, targetController)
	routes.RegisterNutritionRoutes(router, nutritionController)
	routes.RegisterReportRoutes(router, reportController)
	routes.RegisterRecommendationRoutes(router, recommendationController)

	// Debug endpoints
	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(200, gin.H{
			"goroutines":     runtime.NumGoroutine(),
			"memory_mb":      m.Alloc / 1024 / 1024,
			"workers":        workerCount,
			"worker_running": recommendationWorker.IsRunning(),
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
		isHealthy := err == nil && result == 1

		c.JSON(200, gin.H{
			"database_health": isHealthy,
		})
	})

	if redisCache != nil {
		router.GET("/debug/redis", func(c *gin.Context) {
			status, err := redisCache.GetStatus(c.Request.Context())
			if err != nil {
				c.JSON(500, gin.H{
					"redis_health": false,
					"error":        err.Error(),
				})
				return
			}
			c.JSON(200, status)
		})
	}

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("Database Health: http://localhost:%s/debug/database", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	runtime.GOMAXPROCS(runtime.NumCPU())

	log.Printf("Nutrilog API Server started successfully on port %s", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
