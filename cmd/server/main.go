package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adamaboelmatty/basketball-form-analyzer/internal/client"
	"github.com/adamaboelmatty/basketball-form-analyzer/internal/config"
	"github.com/adamaboelmatty/basketball-form-analyzer/internal/database"
	"github.com/adamaboelmatty/basketball-form-analyzer/internal/ffmpeg"
	"github.com/adamaboelmatty/basketball-form-analyzer/internal/handler"
	"github.com/adamaboelmatty/basketball-form-analyzer/internal/repository"
	"github.com/adamaboelmatty/basketball-form-analyzer/internal/service"
)

func main() {
	// Инициализируем логгер
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	logger.Info("Запуск Basketball Form Analyzer API Server")

	// Получаем конфигурацию из переменных окружения
	cfg := config.LoadConfig()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Инициализируем базу данных
	logger.Info("Подключение к базе данных...")
	if err := database.Connect(); err != nil {
		logger.Fatalf("Ошибка подключения к базе данных: %v", err)
	}

	// Выполняем миграции
	logger.Info("Выполнение миграций базы данных...")
	if err := database.Migrate(); err != nil {
		logger.Fatalf("Ошибка выполнения миграций: %v", err)
	}

	// Проверяем здоровье базы данных
	if err := database.HealthCheck(); err != nil {
		logger.Fatalf("База данных недоступна: %v", err)
	}

	logger.Info("База данных успешно подключена и готова к работе")

	// Создаем папку для кадров со скелетом
	if err := os.MkdirAll(cfg.Static.Dir, 0755); err != nil {
		logger.Fatalf("Ошибка создания папки для статических файлов: %v", err)
	}

	// Инициализируем репозитории
	analysisRepo := repository.NewAnalysisRepository(database.DB)

	// Инициализируем клиент сервиса позы и экстрактор кадров
	poseClient := client.NewPoseAPIClient(
		cfg.PythonAPI.BaseURL,
		time.Duration(cfg.PythonAPI.Timeout)*time.Second,
		logger,
	)
	extractor := ffmpeg.NewExtractor(cfg.FFmpeg.FPS, logger)

	// Инициализируем сервисы
	analysisService := service.NewAnalysisService(analysisRepo, logger, cfg.Static.Dir)
	analyzerService := service.NewAnalyzerService(poseClient, extractor, analysisService, logger, cfg.Static.Dir)

	// Инициализируем обработчики
	analysisHandler := handler.NewAnalysisHandler(analyzerService, analysisService, logger)

	// Настраиваем Gin router
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Добавляем middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Обслуживание кадров со скелетом
	router.Static("/static", cfg.Static.Dir)

	// Регистрируем маршруты
	analysisHandler.RegisterRoutes(router)

	// Добавляем базовый маршрут для проверки
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Basketball Form Analyzer API Server",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	// Запускаем сервер
	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Infof("Сервер запущен на порту %d", cfg.Server.Port)
	logger.Infof("API доступно по адресу: http://localhost:%d/api/v1", cfg.Server.Port)

	if err := router.Run(serverAddr); err != nil {
		logger.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

// corsMiddleware добавляет заголовки CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Requested-With")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
