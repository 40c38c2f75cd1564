package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"

	"github.com/adamaboelmatty/basketball-form-analyzer/pkg/models"
)

// Параметры отрисовки скелета
const (
	jpegQuality    = 85
	landmarkRadius = 4
	lineThickness  = 2
)

var (
	landmarkColor   = color.RGBA{R: 0, G: 255, B: 0, A: 255}   // Зеленые точки
	connectionColor = color.RGBA{R: 255, G: 255, B: 0, A: 255} // Желтые соединения
)

// connections пары точек скелета, соединяемые линиями
var connections = [][2]string{
	{"left_shoulder", "right_shoulder"},
	{"left_shoulder", "left_elbow"},
	{"left_elbow", "left_wrist"},
	{"right_shoulder", "right_elbow"},
	{"right_elbow", "right_wrist"},
	{"left_shoulder", "left_hip"},
	{"right_shoulder", "right_hip"},
	{"left_hip", "right_hip"},
	{"left_hip", "left_knee"},
	{"left_knee", "left_ankle"},
	{"right_hip", "right_knee"},
	{"right_knee", "right_ankle"},
}

// Renderer рисует скелет поверх кадра
type Renderer struct{}

// NewRenderer создает новый отрисовщик скелета
func NewRenderer() *Renderer {
	return &Renderer{}
}

// DrawSkeleton возвращает копию кадра с наложенным скелетом
func (r *Renderer) DrawSkeleton(frame image.Image, landmarks models.Landmarks) *image.RGBA {
	bounds := frame.Bounds()
	annotated := image.NewRGBA(bounds)
	draw.Draw(annotated, bounds, frame, bounds.Min, draw.Src)

	points := landmarkPoints(landmarks)

	// Сначала соединения, потом точки поверх них
	for _, conn := range connections {
		from := points[conn[0]]
		to := points[conn[1]]
		drawLine(annotated, int(from.X), int(from.Y), int(to.X), int(to.Y), connectionColor)
	}

	for _, point := range points {
		drawCircle(annotated, int(point.X), int(point.Y), landmarkRadius, landmarkColor)
	}

	return annotated
}

// SaveJPEG сохраняет кадр со скелетом в JPEG с фиксированным качеством
func (r *Renderer) SaveJPEG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка создания файла %s: %w", path, err)
	}
	defer file.Close()

	if err := jpeg.Encode(file, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("ошибка кодирования JPEG %s: %w", path, err)
	}

	return nil
}

// landmarkPoints раскладывает набор точек по именам словаря
func landmarkPoints(lm models.Landmarks) map[string]models.Point {
	return map[string]models.Point{
		"nose":           lm.Nose,
		"left_shoulder":  lm.LeftShoulder,
		"right_shoulder": lm.RightShoulder,
		"left_elbow":     lm.LeftElbow,
		"right_elbow":    lm.RightElbow,
		"left_wrist":     lm.LeftWrist,
		"right_wrist":    lm.RightWrist,
		"left_hip":       lm.LeftHip,
		"right_hip":      lm.RightHip,
		"left_knee":      lm.LeftKnee,
		"right_knee":     lm.RightKnee,
		"left_ankle":     lm.LeftAnkle,
		"right_ankle":    lm.RightAnkle,
	}
}

// drawLine рисует отрезок алгоритмом Брезенхэма с заданной толщиной
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		stamp(img, x0, y0, lineThickness, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawCircle рисует закрашенный круг
func drawCircle(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= radius*radius {
				setPixel(img, cx+x, cy+y, c)
			}
		}
	}
}

// stamp закрашивает квадрат со стороной size вокруг точки
func stamp(img *image.RGBA, x, y, size int, c color.RGBA) {
	half := size / 2
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			setPixel(img, x+dx, y+dy, c)
		}
	}
}

// setPixel закрашивает пиксель, если он в пределах кадра
func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
