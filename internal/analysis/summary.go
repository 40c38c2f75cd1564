package analysis

import (
	"github.com/adamaboelmatty/basketball-form-analyzer/internal/geom"
	"github.com/adamaboelmatty/basketball-form-analyzer/pkg/models"
)

// CalculateShootingAngles собирает итоговые углы броска по всей
// последовательности кадров. Пустая последовательность дает нулевой
// результат с надежностью "low", а не ошибку.
func CalculateShootingAngles(framesData []models.FrameMetrics) models.ShootingAngles {
	if len(framesData) == 0 {
		return models.ShootingAngles{
			Confidence: "low",
		}
	}

	releaseFrame := DetectReleaseFrame(framesData)
	setPointFrame := DetectSetPointFrame(framesData, releaseFrame)

	// Данные в момент выпуска; если эвристика указала за пределы
	// последовательности — берем последний кадр
	releaseData := framesData[len(framesData)-1]
	for _, f := range framesData {
		if f.FrameNumber == releaseFrame {
			releaseData = f
			break
		}
	}

	// Данные в сет-поинте; при отсутствии — первый кадр
	setPointData := framesData[0]
	for _, f := range framesData {
		if f.FrameNumber == setPointFrame {
			setPointData = f
			break
		}
	}

	// Средний наклон корпуса по всем кадрам
	sum := 0.0
	for _, f := range framesData {
		sum += f.BodyLean
	}
	avgBodyLean := sum / float64(len(framesData))

	// Надежность оценки: чем больше кадров, тем меньше шанс, что
	// экстремум — шумовой выброс
	confidence := "low"
	switch {
	case len(framesData) >= 5:
		confidence = "high"
	case len(framesData) >= 3:
		confidence = "medium"
	}

	return models.ShootingAngles{
		ElbowAngleAtRelease:   releaseData.ElbowAngle,
		KneeFlexionAtSetPoint: setPointData.KneeFlexion,
		BodyLean:              geom.Round1(avgBodyLean),
		SetPointHeight:        releaseData.WristHeightNormalized,
		ReleaseFrame:          releaseFrame,
		Confidence:            confidence,
	}
}
