package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/adamaboelmatty/basketball-form-analyzer/internal/client"
	"github.com/adamaboelmatty/basketball-form-analyzer/internal/database"
	"github.com/adamaboelmatty/basketball-form-analyzer/internal/ffmpeg"
	"github.com/adamaboelmatty/basketball-form-analyzer/internal/pipeline"
	"github.com/adamaboelmatty/basketball-form-analyzer/pkg/models"
)

// AnalyzerService сервис для анализа техники броска по видео
type AnalyzerService struct {
	poseClient      *client.PoseAPIClient
	extractor       *ffmpeg.Extractor
	pipeline        *pipeline.Pipeline
	analysisService *AnalysisService
	logger          *logrus.Logger
	staticDir       string
}

// NewAnalyzerService создает новый сервис анализатора
func NewAnalyzerService(poseClient *client.PoseAPIClient, extractor *ffmpeg.Extractor, analysisService *AnalysisService, logger *logrus.Logger, staticDir string) *AnalyzerService {
	return &AnalyzerService{
		poseClient:      poseClient,
		extractor:       extractor,
		pipeline:        pipeline.New(poseClient, logger),
		analysisService: analysisService,
		logger:          logger,
		staticDir:       staticDir,
	}
}

// AnalyzeShot анализирует видео броска: извлекает кадры, прогоняет их
// через конвейер анализа позы и сохраняет результат в базе данных
func (s *AnalyzerService) AnalyzeShot(request AnalyzeShotRequest) (*AnalyzeShotResponse, error) {
	s.logger.Infof("Начинаем анализ броска для видео %s", request.VideoFilename)

	startTime := time.Now()
	analysisID := uuid.New().String()

	// Временный каталог для видео и извлеченных кадров
	workDir, err := os.MkdirTemp("", "shot-analysis-*")
	if err != nil {
		return nil, fmt.Errorf("ошибка создания временного каталога: %w", err)
	}
	defer os.RemoveAll(workDir)

	videoPath := filepath.Join(workDir, "input"+filepath.Ext(request.VideoFilename))
	if err := os.WriteFile(videoPath, request.VideoData, 0644); err != nil {
		return nil, fmt.Errorf("ошибка записи видео файла: %w", err)
	}

	// 1. Извлекаем кадры из видео
	framesDir := filepath.Join(workDir, "frames")
	if err := os.MkdirAll(framesDir, 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания каталога кадров: %w", err)
	}

	if _, err := s.extractor.ExtractFrames(videoPath, framesDir); err != nil {
		s.logger.Errorf("Ошибка извлечения кадров: %v", err)
		return &AnalyzeShotResponse{
			Status:  "error",
			Message: fmt.Sprintf("Ошибка извлечения кадров из видео: %v", err),
		}, nil
	}

	// 2. Прогоняем кадры через конвейер анализа позы
	outputDir := filepath.Join(s.staticDir, analysisID)
	result, err := s.pipeline.Run(pipeline.Options{
		FramesDir:         framesDir,
		OutputDir:         outputDir,
		GenerateSkeletons: true,
		IsRightHanded:     request.IsRightHanded,
	})
	if err != nil {
		s.logger.Errorf("Ошибка конвейера анализа: %v", err)
		return &AnalyzeShotResponse{
			Status:  "error",
			Message: fmt.Sprintf("Ошибка анализа кадров: %v", err),
		}, nil
	}

	// 3. Сохраняем результат в базе данных
	if err := s.analysisService.SaveAnalysis(analysisID, request.VideoFilename, request.IsRightHanded, result.Report, outputDir); err != nil {
		s.logger.Errorf("Ошибка сохранения анализа: %v", err)
		return &AnalyzeShotResponse{
			Status:  "error",
			Message: fmt.Sprintf("Ошибка сохранения анализа: %v", err),
		}, nil
	}

	processingTime := time.Since(startTime)
	s.logger.Infof("Анализ завершен за %v. Проанализировано кадров: %d, надежность: %s",
		processingTime, result.Report.FramesAnalyzed, result.Report.ShootingAngles.Confidence)

	return &AnalyzeShotResponse{
		Status:     "success",
		Message:    "Анализ техники броска успешно завершен",
		AnalysisID: analysisID,
		Report:     result.Report,
	}, nil
}

// CheckHealth проверяет состояние сервиса и его зависимостей
func (s *AnalyzerService) CheckHealth() (*models.HealthResponse, error) {
	s.logger.Debug("Проверяем состояние сервиса анализатора")

	// Проверяем состояние базы данных
	if err := database.HealthCheck(); err != nil {
		s.logger.Errorf("База данных недоступна: %v", err)
		return &models.HealthResponse{
			Status:      "unhealthy",
			ModelLoaded: false,
			Version:     "1.0.0",
		}, nil
	}

	// Проверяем состояние Python API
	poseHealth, err := s.poseClient.CheckHealth()
	if err != nil {
		s.logger.Errorf("Python API недоступен: %v", err)
		return &models.HealthResponse{
			Status:      "unhealthy",
			ModelLoaded: false,
			Version:     "1.0.0",
		}, nil
	}

	// Если Python API здоров, возвращаем его статус
	return poseHealth, nil
}
