package geom

import (
	"math"

	"github.com/adamaboelmatty/basketball-form-analyzer/pkg/models"
)

// Calculator для геометрических вычислений над точками тела
type Calculator struct{}

// NewCalculator создает новый калькулятор
func NewCalculator() *Calculator {
	return &Calculator{}
}

// AngleAtVertex вычисляет угол в вершине b, образованный лучами к a и c.
// Используются только координаты x и y (z игнорируется).
// Возвращает угол в градусах в диапазоне [0, 180].
// Для вырожденных случаев (совпадающие точки) возвращает 0.
func (c *Calculator) AngleAtVertex(a, b, vc models.Point) float64 {
	// Векторы BA и BC
	bax := a.X - b.X
	bay := a.Y - b.Y
	bcx := vc.X - b.X
	bcy := vc.Y - b.Y

	// Скалярное произведение
	dot := bax*bcx + bay*bcy

	// Длины векторов
	magBA := math.Sqrt(bax*bax + bay*bay)
	magBC := math.Sqrt(bcx*bcx + bcy*bcy)

	if magBA == 0 || magBC == 0 {
		return 0.0
	}

	// Ограничиваем косинус, чтобы избежать ошибок области определения acos
	cosAngle := math.Max(-1.0, math.Min(1.0, dot/(magBA*magBC)))

	return math.Acos(cosAngle) * 180 / math.Pi
}

// LeanFromVertical вычисляет наклон вектора lower→upper от вертикали в градусах.
// Положительное значение — наклон назад, отрицательное — вперед.
// Ось y изображения растет вниз, поэтому dy берется с обратным знаком.
func (c *Calculator) LeanFromVertical(upper, lower models.Point) float64 {
	dx := upper.X - lower.X
	dy := upper.Y - lower.Y

	return math.Atan2(dx, -dy) * 180 / math.Pi
}

// Midpoint вычисляет середину отрезка между двумя точками
func (c *Calculator) Midpoint(a, b models.Point) models.Point {
	return models.Point{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
	}
}

// Round1 округляет значение до 1 знака после запятой
func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// Round2 округляет значение до 2 знаков после запятой
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
