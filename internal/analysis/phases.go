package analysis

import "github.com/adamaboelmatty/basketball-form-analyzer/pkg/models"

// DetectReleaseFrame находит кадр выпуска мяча: кадр с максимальной
// нормализованной высотой запястья. При равенстве побеждает более
// ранний кадр. Для пустой последовательности возвращает 0.
func DetectReleaseFrame(framesData []models.FrameMetrics) int {
	if len(framesData) == 0 {
		return 0
	}

	maxHeight := -1.0
	releaseFrame := 0
	first := true

	for _, data := range framesData {
		if first || data.WristHeightNormalized > maxHeight {
			maxHeight = data.WristHeightNormalized
			releaseFrame = data.FrameNumber
			first = false
		}
	}

	return releaseFrame
}

// DetectSetPointFrame находит сет-поинт: кадр с минимальным сгибанием
// колена строго до кадра выпуска (ноги выпрямляются перед броском).
// Если выпуск не найден (releaseFrame == 0) или последовательность пуста,
// возвращает эвристику max(0, releaseFrame-3) — примерно три кадра
// до выпуска при типичной частоте съемки.
func DetectSetPointFrame(framesData []models.FrameMetrics, releaseFrame int) int {
	setPointFrame := releaseFrame - 3
	if setPointFrame < 0 {
		setPointFrame = 0
	}

	if len(framesData) == 0 || releaseFrame == 0 {
		return setPointFrame
	}

	minKnee := -1.0
	first := true

	for _, data := range framesData {
		if data.FrameNumber >= releaseFrame {
			continue
		}
		if first || data.KneeFlexion < minKnee {
			minKnee = data.KneeFlexion
			setPointFrame = data.FrameNumber
			first = false
		}
	}

	return setPointFrame
}
