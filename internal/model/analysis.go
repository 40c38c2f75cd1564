package model

import (
	"time"

	"gorm.io/gorm"
)

// Analysis представляет сохраненный анализ броска в базе данных
type Analysis struct {
	ID            string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name          string `gorm:"type:varchar(255);not null" json:"name"`
	VideoFilename string `gorm:"type:varchar(255)" json:"video_filename"`
	IsRightHanded bool   `gorm:"not null;default:true" json:"is_right_handed"`

	// Счетчики обработки кадров
	FramesAnalyzed int `gorm:"not null;default:0" json:"frames_analyzed"`
	TotalFrames    int `gorm:"not null;default:0" json:"total_frames"`
	SkippedDecode  int `gorm:"not null;default:0" json:"skipped_decode"`
	SkippedNoPose  int `gorm:"not null;default:0" json:"skipped_no_pose"`

	// Итоговые углы броска
	ElbowAngleAtRelease   float64 `gorm:"not null;default:0" json:"elbow_angle_at_release"`
	KneeFlexionAtSetPoint float64 `gorm:"not null;default:0" json:"knee_flexion_at_set_point"`
	BodyLean              float64 `gorm:"not null;default:0" json:"body_lean"`
	SetPointHeight        float64 `gorm:"not null;default:0" json:"set_point_height"`
	ReleaseFrame          int     `gorm:"not null;default:0" json:"release_frame"`
	Confidence            string  `gorm:"type:varchar(16);not null;default:'low'" json:"confidence"`

	// Каталог с кадрами со скелетом
	SkeletonDir string `gorm:"type:varchar(500)" json:"skeleton_dir"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Связь с кадрами
	Frames []FrameRecord `gorm:"foreignKey:AnalysisID;constraint:OnDelete:CASCADE" json:"frames"`
}

// FrameRecord представляет метрики одного кадра в базе данных
type FrameRecord struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	AnalysisID string `gorm:"type:varchar(36);not null;index" json:"analysis_id"`

	FrameNumber           int     `gorm:"not null" json:"frame_number"`
	ElbowAngle            float64 `gorm:"not null" json:"elbow_angle"`
	KneeFlexion           float64 `gorm:"not null" json:"knee_flexion"`
	ShoulderAngle         float64 `gorm:"not null" json:"shoulder_angle"`
	BodyLean              float64 `gorm:"not null" json:"body_lean"`
	WristHeightNormalized float64 `gorm:"not null" json:"wrist_height_normalized"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Обратная связь с анализом
	Analysis Analysis `gorm:"foreignKey:AnalysisID;references:ID" json:"-"`
}

// TableName указывает имя таблицы для Analysis
func (Analysis) TableName() string {
	return "analyses"
}

// TableName указывает имя таблицы для FrameRecord
func (FrameRecord) TableName() string {
	return "analysis_frames"
}
