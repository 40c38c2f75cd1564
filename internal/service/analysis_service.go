package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/adamaboelmatty/basketball-form-analyzer/internal/model"
	"github.com/adamaboelmatty/basketball-form-analyzer/internal/repository"
	"github.com/adamaboelmatty/basketball-form-analyzer/pkg/models"
)

// AnalysisService сервис для работы с сохраненными анализами бросков
type AnalysisService struct {
	analysisRepo repository.AnalysisRepository
	logger       *logrus.Logger
	staticDir    string
}

// NewAnalysisService создает новый сервис для работы с анализами
func NewAnalysisService(analysisRepo repository.AnalysisRepository, logger *logrus.Logger, staticDir string) *AnalysisService {
	return &AnalysisService{
		analysisRepo: analysisRepo,
		logger:       logger,
		staticDir:    staticDir,
	}
}

// SaveAnalysis сохраняет результат конвейера в базе данных
func (s *AnalysisService) SaveAnalysis(analysisID, videoFilename string, isRightHanded bool, report *models.PipelineReport, skeletonDir string) error {
	s.logger.Infof("Сохраняем анализ %s в базе данных", analysisID)

	// Преобразуем отчет конвейера в модель базы данных
	analysis := &model.Analysis{
		ID:                    analysisID,
		Name:                  fmt.Sprintf("Shot %s", analysisID[:8]),
		VideoFilename:         videoFilename,
		IsRightHanded:         isRightHanded,
		FramesAnalyzed:        report.FramesAnalyzed,
		TotalFrames:           report.TotalFrames,
		SkippedDecode:         report.SkippedDecode,
		SkippedNoPose:         report.SkippedNoPose,
		ElbowAngleAtRelease:   report.ShootingAngles.ElbowAngleAtRelease,
		KneeFlexionAtSetPoint: report.ShootingAngles.KneeFlexionAtSetPoint,
		BodyLean:              report.ShootingAngles.BodyLean,
		SetPointHeight:        report.ShootingAngles.SetPointHeight,
		ReleaseFrame:          report.ShootingAngles.ReleaseFrame,
		Confidence:            report.ShootingAngles.Confidence,
		SkeletonDir:           skeletonDir,
	}

	// Преобразуем кадры
	for _, frame := range report.FramesData {
		record := model.FrameRecord{
			AnalysisID:            analysisID,
			FrameNumber:           frame.FrameNumber,
			ElbowAngle:            frame.ElbowAngle,
			KneeFlexion:           frame.KneeFlexion,
			ShoulderAngle:         frame.ShoulderAngle,
			BodyLean:              frame.BodyLean,
			WristHeightNormalized: frame.WristHeightNormalized,
		}
		analysis.Frames = append(analysis.Frames, record)
	}

	s.logger.Infof("Сохраняем анализ в БД. Количество кадров: %d", len(analysis.Frames))
	if err := s.analysisRepo.Create(analysis); err != nil {
		s.logger.Errorf("Ошибка сохранения анализа в БД: %v", err)
		return fmt.Errorf("failed to save analysis to database: %w", err)
	}

	s.logger.Infof("Анализ %s успешно сохранен в БД с %d кадрами", analysisID, len(analysis.Frames))
	return nil
}

// GetAnalysisByID получает анализ по ID
func (s *AnalysisService) GetAnalysisByID(analysisID string) (*AnalysisResponse, error) {
	s.logger.Infof("Получаем анализ %s из базы данных", analysisID)

	analysis, err := s.analysisRepo.GetByID(analysisID)
	if err != nil {
		s.logger.Errorf("Ошибка получения анализа: %v", err)
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	return s.modelToResponse(analysis), nil
}

// ListAnalyses получает список анализов с пагинацией
func (s *AnalysisService) ListAnalyses(page, pageSize int) (*ListAnalysesResponse, error) {
	s.logger.Infof("Получаем список анализов: страница %d, размер %d", page, pageSize)

	analyses, total, err := s.analysisRepo.List(page, pageSize)
	if err != nil {
		s.logger.Errorf("Ошибка получения списка анализов: %v", err)
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}

	response := &ListAnalysesResponse{
		Analyses: make([]AnalysisResponse, 0, len(analyses)),
		Total:    total,
		Page:     page,
		Size:     pageSize,
	}

	for _, analysis := range analyses {
		response.Analyses = append(response.Analyses, *s.modelToResponse(analysis))
	}

	return response, nil
}

// DeleteAnalysis удаляет анализ вместе с кадрами со скелетом
func (s *AnalysisService) DeleteAnalysis(analysisID string) error {
	s.logger.Infof("Удаляем анализ %s", analysisID)

	analysis, err := s.analysisRepo.GetByID(analysisID)
	if err != nil {
		return fmt.Errorf("failed to get analysis: %w", err)
	}

	if err := s.analysisRepo.Delete(analysisID); err != nil {
		s.logger.Errorf("Ошибка удаления анализа: %v", err)
		return fmt.Errorf("failed to delete analysis: %w", err)
	}

	// Удаляем кадры со скелетом, если они хранятся в нашем каталоге
	if analysis.SkeletonDir != "" && strings.HasPrefix(analysis.SkeletonDir, s.staticDir) {
		if err := os.RemoveAll(analysis.SkeletonDir); err != nil {
			s.logger.Warnf("Не удалось удалить каталог со скелетами %s: %v", analysis.SkeletonDir, err)
		}
	}

	s.logger.Infof("Анализ %s успешно удален", analysisID)
	return nil
}

// modelToResponse преобразует модель базы данных в ответ API
func (s *AnalysisService) modelToResponse(analysis *model.Analysis) *AnalysisResponse {
	response := &AnalysisResponse{
		ID:             analysis.ID,
		Name:           analysis.Name,
		VideoFilename:  analysis.VideoFilename,
		IsRightHanded:  analysis.IsRightHanded,
		FramesAnalyzed: analysis.FramesAnalyzed,
		TotalFrames:    analysis.TotalFrames,
		SkippedDecode:  analysis.SkippedDecode,
		SkippedNoPose:  analysis.SkippedNoPose,
		ShootingAngles: models.ShootingAngles{
			ElbowAngleAtRelease:   analysis.ElbowAngleAtRelease,
			KneeFlexionAtSetPoint: analysis.KneeFlexionAtSetPoint,
			BodyLean:              analysis.BodyLean,
			SetPointHeight:        analysis.SetPointHeight,
			ReleaseFrame:          analysis.ReleaseFrame,
			Confidence:            analysis.Confidence,
		},
		FramesData:  make([]models.FrameMetrics, 0, len(analysis.Frames)),
		SkeletonDir: analysis.SkeletonDir,
		CreatedAt:   analysis.CreatedAt,
	}

	for _, frame := range analysis.Frames {
		response.FramesData = append(response.FramesData, models.FrameMetrics{
			FrameNumber:           frame.FrameNumber,
			ElbowAngle:            frame.ElbowAngle,
			KneeFlexion:           frame.KneeFlexion,
			ShoulderAngle:         frame.ShoulderAngle,
			BodyLean:              frame.BodyLean,
			WristHeightNormalized: frame.WristHeightNormalized,
		})
	}

	return response
}
