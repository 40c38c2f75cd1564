package service

import (
	"time"

	"github.com/adamaboelmatty/basketball-form-analyzer/pkg/models"
)

// AnalyzeShotRequest запрос на анализ видео броска
type AnalyzeShotRequest struct {
	VideoData     []byte `json:"-"`               // Данные видео файла (не сериализуем в JSON)
	VideoFilename string `json:"video_filename"`  // Имя видео файла
	IsRightHanded bool   `json:"is_right_handed"` // Бросковая рука (true — правая)
}

// AnalyzeShotResponse ответ анализа видео броска
type AnalyzeShotResponse struct {
	Status     string                 `json:"status"`      // Статус выполнения (success/error)
	Message    string                 `json:"message"`     // Сообщение о результате
	AnalysisID string                 `json:"analysis_id"` // ID сохраненного анализа
	Report     *models.PipelineReport `json:"report"`      // Полный отчет конвейера
}

// AnalysisResponse ответ с информацией о сохраненном анализе
type AnalysisResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	VideoFilename  string                `json:"video_filename,omitempty"`
	IsRightHanded  bool                  `json:"is_right_handed"`
	FramesAnalyzed int                   `json:"frames_analyzed"`
	TotalFrames    int                   `json:"total_frames"`
	SkippedDecode  int                   `json:"skipped_decode"`
	SkippedNoPose  int                   `json:"skipped_no_pose"`
	ShootingAngles models.ShootingAngles `json:"shooting_angles"`
	FramesData     []models.FrameMetrics `json:"frames_data"`
	SkeletonDir    string                `json:"skeleton_dir,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

// ListAnalysesResponse ответ со списком анализов
type ListAnalysesResponse struct {
	Analyses []AnalysisResponse `json:"analyses"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	Size     int                `json:"size"`
}
