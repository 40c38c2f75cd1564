package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adamaboelmatty/basketball-form-analyzer/pkg/models"
)

// framesWithWristHeights строит последовательность кадров с заданными
// высотами запястья
func framesWithWristHeights(heights ...float64) []models.FrameMetrics {
	frames := make([]models.FrameMetrics, 0, len(heights))
	for i, h := range heights {
		frames = append(frames, models.FrameMetrics{
			FrameNumber:           i,
			WristHeightNormalized: h,
		})
	}
	return frames
}

func TestDetectReleaseFrameMaximum(t *testing.T) {
	frames := framesWithWristHeights(0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 1.2, 0.8, 0.4)

	// Максимум на кадре 7 — остальные значения не важны
	assert.Equal(t, 7, DetectReleaseFrame(frames))
}

func TestDetectReleaseFrameTie(t *testing.T) {
	frames := framesWithWristHeights(0.1, 0.2, 0.3, 0.9, 0.5, 0.9, 0.4)

	// При равенстве побеждает более ранний кадр
	assert.Equal(t, 3, DetectReleaseFrame(frames))
}

func TestDetectReleaseFrameNegativeHeights(t *testing.T) {
	// Все высоты отрицательные — максимум все равно находится
	frames := framesWithWristHeights(-0.5, -0.2, -0.8)

	assert.Equal(t, 1, DetectReleaseFrame(frames))
}

func TestDetectReleaseFrameEmpty(t *testing.T) {
	assert.Equal(t, 0, DetectReleaseFrame(nil))
	assert.Equal(t, 0, DetectReleaseFrame([]models.FrameMetrics{}))
}

func TestDetectSetPointFrameMinimumBeforeRelease(t *testing.T) {
	frames := make([]models.FrameMetrics, 12)
	for i := range frames {
		frames[i] = models.FrameMetrics{FrameNumber: i, KneeFlexion: 150}
	}
	frames[6].KneeFlexion = 120  // минимум до выпуска
	frames[11].KneeFlexion = 100 // минимум после выпуска не учитывается

	assert.Equal(t, 6, DetectSetPointFrame(frames, 10))
}

func TestDetectSetPointFrameTie(t *testing.T) {
	frames := make([]models.FrameMetrics, 10)
	for i := range frames {
		frames[i] = models.FrameMetrics{FrameNumber: i, KneeFlexion: 150}
	}
	frames[2].KneeFlexion = 120
	frames[5].KneeFlexion = 120

	// При равенстве побеждает более ранний кадр
	assert.Equal(t, 2, DetectSetPointFrame(frames, 9))
}

func TestDetectSetPointFrameNoRelease(t *testing.T) {
	frames := framesWithWristHeights(0.1, 0.2)

	// Выпуск не найден — эвристика max(0, 0-3) == 0
	assert.Equal(t, 0, DetectSetPointFrame(frames, 0))
}

func TestDetectSetPointFrameEmpty(t *testing.T) {
	assert.Equal(t, 7, DetectSetPointFrame(nil, 10))
	assert.Equal(t, 0, DetectSetPointFrame(nil, 2))
}
