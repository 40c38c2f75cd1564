package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adamaboelmatty/basketball-form-analyzer/internal/service"
)

// AnalysisHandler обрабатывает HTTP запросы анализа бросков
type AnalysisHandler struct {
	analyzerService *service.AnalyzerService
	analysisService *service.AnalysisService
	logger          *logrus.Logger
}

// NewAnalysisHandler создает новый экземпляр AnalysisHandler
func NewAnalysisHandler(analyzerService *service.AnalyzerService, analysisService *service.AnalysisService, logger *logrus.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analyzerService: analyzerService,
		analysisService: analysisService,
		logger:          logger,
	}
}

// RegisterRoutes регистрирует маршруты API
func (h *AnalysisHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/analyze", h.AnalyzeShot)
		api.GET("/analyses", h.ListAnalyses)
		api.GET("/analyses/:id", h.GetAnalysis)
		api.DELETE("/analyses/:id", h.DeleteAnalysis)
		api.GET("/health", h.CheckHealth)
	}
}

// AnalyzeShot обрабатывает запрос на анализ видео броска
// @Summary Анализ техники броска
// @Description Принимает видео броска, извлекает кадры и возвращает углы техники броска
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param video formData file true "Видео файл броска"
// @Param is_right_handed formData boolean false "Бросковая рука (true — правая)" default(true)
// @Success 200 {object} service.AnalyzeShotResponse
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /analyze [post]
func (h *AnalysisHandler) AnalyzeShot(c *gin.Context) {
	h.logger.Info("Получен запрос на анализ броска")

	// Парсим multipart form
	if err := c.Request.ParseMultipartForm(64 << 20); err != nil { // 64 MB max
		h.logger.Errorf("Ошибка парсинга multipart form: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ошибка парсинга формы"})
		return
	}

	// Получаем видео файл
	videoFile, header, err := c.Request.FormFile("video")
	if err != nil {
		h.logger.Errorf("Ошибка получения видео файла: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Видео файл обязателен"})
		return
	}
	defer videoFile.Close()

	videoData, err := io.ReadAll(videoFile)
	if err != nil {
		h.logger.Errorf("Ошибка чтения видео файла: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка чтения видео файла"})
		return
	}

	// Бросковая рука (поддерживаем разные форматы имени поля)
	isRightHanded := true
	if value := getFormValue(c, []string{"is_right_handed", "isRightHanded"}); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_right_handed должен быть true или false"})
			return
		}
		isRightHanded = parsed
	}

	// Вызываем сервис
	response, err := h.analyzerService.AnalyzeShot(service.AnalyzeShotRequest{
		VideoData:     videoData,
		VideoFilename: header.Filename,
		IsRightHanded: isRightHanded,
	})
	if err != nil {
		h.logger.Errorf("Ошибка сервиса анализа: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
		return
	}

	h.logger.Info("Анализ успешно завершен")
	c.JSON(http.StatusOK, response)
}

// ListAnalyses возвращает список сохраненных анализов с пагинацией
// @Summary Список анализов
// @Tags analysis
// @Produce json
// @Param page query int false "Номер страницы" default(1)
// @Param size query int false "Размер страницы" default(20)
// @Success 200 {object} service.ListAnalysesResponse
// @Router /analyses [get]
func (h *AnalysisHandler) ListAnalyses(c *gin.Context) {
	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page должен быть положительным числом"})
			return
		}
		page = parsed
	}

	size := 20
	if sizeStr := c.Query("size"); sizeStr != "" {
		parsed, err := strconv.Atoi(sizeStr)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size должен быть числом от 1 до 100"})
			return
		}
		size = parsed
	}

	response, err := h.analysisService.ListAnalyses(page, size)
	if err != nil {
		h.logger.Errorf("Ошибка получения списка анализов: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения списка анализов"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetAnalysis возвращает сохраненный анализ по ID
// @Summary Получение анализа
// @Tags analysis
// @Produce json
// @Param id path string true "ID анализа"
// @Success 200 {object} service.AnalysisResponse
// @Failure 404 {object} gin.H
// @Router /analyses/{id} [get]
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	analysisID := c.Param("id")

	response, err := h.analysisService.GetAnalysisByID(analysisID)
	if err != nil {
		h.logger.Errorf("Ошибка получения анализа %s: %v", analysisID, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Анализ не найден"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteAnalysis удаляет сохраненный анализ по ID
// @Summary Удаление анализа
// @Tags analysis
// @Produce json
// @Param id path string true "ID анализа"
// @Success 200 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /analyses/{id} [delete]
func (h *AnalysisHandler) DeleteAnalysis(c *gin.Context) {
	analysisID := c.Param("id")

	if err := h.analysisService.DeleteAnalysis(analysisID); err != nil {
		h.logger.Errorf("Ошибка удаления анализа %s: %v", analysisID, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Анализ не найден"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Анализ успешно удален"})
}

// CheckHealth проверяет состояние сервиса
// @Summary Проверка состояния сервиса
// @Description Возвращает информацию о состоянии сервиса и его зависимостей
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func (h *AnalysisHandler) CheckHealth(c *gin.Context) {
	h.logger.Debug("Получен запрос проверки здоровья")

	health, err := h.analyzerService.CheckHealth()
	if err != nil {
		h.logger.Errorf("Ошибка проверки здоровья: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка проверки состояния сервиса"})
		return
	}

	statusCode := http.StatusOK
	if health.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, health)
}

// getFormValue возвращает первое непустое значение из списка имен полей
func getFormValue(c *gin.Context, names []string) string {
	for _, name := range names {
		if value := c.PostForm(name); value != "" {
			return value
		}
	}
	return ""
}
