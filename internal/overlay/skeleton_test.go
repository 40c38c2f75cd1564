package overlay

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamaboelmatty/basketball-form-analyzer/pkg/models"
)

func testPose() models.Landmarks {
	return models.Landmarks{
		Nose:          models.Point{X: 50, Y: 20},
		LeftShoulder:  models.Point{X: 40, Y: 50},
		RightShoulder: models.Point{X: 60, Y: 50},
		LeftElbow:     models.Point{X: 30, Y: 80},
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

func TestDrawSkeleton(t *testing.T) {
	renderer := NewRenderer()

	frame := image.NewRGBA(image.Rect(0, 0, 100, 200))
	annotated := renderer.DrawSkeleton(frame, testPose())

	// Размеры кадра сохраняются
	assert.Equal(t, frame.Bounds(), annotated.Bounds())

	// Точка тела закрашена зеленым
	assert.Equal(t, landmarkColor, annotated.RGBAAt(50, 20))
	assert.Equal(t, landmarkColor, annotated.RGBAAt(42, 160))

	// Середина соединения плеч закрашена желтым
	assert.Equal(t, connectionColor, annotated.RGBAAt(50, 50))

	// Исходный кадр не изменяется
	assert.Equal(t, color.RGBA{}, frame.RGBAAt(50, 20))
}

func TestDrawSkeletonOutOfBounds(t *testing.T) {
	renderer := NewRenderer()

	// Точки за пределами кадра не должны приводить к панике
	pose := testPose()
	pose.RightWrist = models.Point{X: -50, Y: 500}
	pose.Nose = models.Point{X: 1000, Y: -20}

	frame := image.NewRGBA(image.Rect(0, 0, 100, 200))
	assert.NotPanics(t, func() {
		renderer.DrawSkeleton(frame, pose)
	})
}

func TestSaveJPEG(t *testing.T) {
	renderer := NewRenderer()

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	path := filepath.Join(t.TempDir(), "skeleton_0000.jpg")

	require.NoError(t, renderer.SaveJPEG(path, img))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	decoded, err := jpeg.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
