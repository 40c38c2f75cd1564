package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adamaboelmatty/basketball-form-analyzer/pkg/models"
)

// testLandmarks возвращает позу стоящего игрока на кадре 100x200,
// правая нога полностью выпрямлена
func testLandmarks() models.Landmarks {
	return models.Landmarks{
		Nose:          models.Point{X: 50, Y: 20},
		LeftShoulder:  models.Point{X: 40, Y: 50},
		RightShoulder: models.Point{X: 60, Y: 50},
		LeftElbow:     models.Point{X: 20, Y: 80},
		RightElbow:    models.Point{X: 70, Y: 80},
		LeftWrist:     models.Point{X: 30, Y: 110},
		RightWrist:    models.Point{X: 70, Y: 110},
		LeftHip:       models.Point{X: 42, Y: 120},
		RightHip:      models.Point{X: 58, Y: 120},
		LeftKnee:      models.Point{X: 42, Y: 160},
		RightKnee:     models.Point{X: 58, Y: 160},
		LeftAnkle:     models.Point{X: 42, Y: 200},
		RightAnkle:    models.Point{X: 58, Y: 200},
	}
}

func TestAnalyzeFrameRightHanded(t *testing.T) {
	analyzer := NewAnalyzer()

	metrics := analyzer.AnalyzeFrame(testLandmarks(), true)

	// Плечо (60,50), локоть (70,80), запястье (70,110)
	assert.Equal(t, 161.6, metrics.ElbowAngle)

	// Бедро, колено и лодыжка на одной вертикали — нога выпрямлена
	assert.Equal(t, 180.0, metrics.KneeFlexion)

	// Угол в плече в разумных пределах
	assert.Greater(t, metrics.ShoulderAngle, 0.0)
	assert.Less(t, metrics.ShoulderAngle, 90.0)

	// Середины плеч и бедер на одной вертикали — корпус прямой
	assert.Equal(t, 0.0, metrics.BodyLean)

	// (20-110)/(20-120) = 0.9
	assert.Equal(t, 0.9, metrics.WristHeightNormalized)
}

func TestAnalyzeFrameLeftHanded(t *testing.T) {
	analyzer := NewAnalyzer()
	landmarks := testLandmarks()

	right := analyzer.AnalyzeFrame(landmarks, true)
	left := analyzer.AnalyzeFrame(landmarks, false)

	// Поза асимметрична — выбор стороны меняет угол локтя
	assert.NotEqual(t, right.ElbowAngle, left.ElbowAngle)

	// Наклон корпуса считается по обеим сторонам и от руки не зависит
	assert.Equal(t, right.BodyLean, left.BodyLean)
}

func TestAnalyzeFrameZeroSpan(t *testing.T) {
	analyzer := NewAnalyzer()

	// Нос и середина бедер на одной высоте — вырожденный кадр
	landmarks := testLandmarks()
	landmarks.Nose.Y = 120

	metrics := analyzer.AnalyzeFrame(landmarks, true)

	assert.Equal(t, 0.0, metrics.WristHeightNormalized)
}

func TestAnalyzeFrameCoincidentPoints(t *testing.T) {
	analyzer := NewAnalyzer()

	// Все точки в одном месте — все углы определены и равны нулю
	var landmarks models.Landmarks

	metrics := analyzer.AnalyzeFrame(landmarks, true)

	assert.Equal(t, 0.0, metrics.ElbowAngle)
	assert.Equal(t, 0.0, metrics.KneeFlexion)
	assert.Equal(t, 0.0, metrics.ShoulderAngle)
	assert.Equal(t, 0.0, metrics.BodyLean)
	assert.Equal(t, 0.0, metrics.WristHeightNormalized)
}
