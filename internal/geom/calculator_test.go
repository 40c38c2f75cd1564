package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adamaboelmatty/basketball-form-analyzer/pkg/models"
)

func TestAngleAtVertexRightAngle(t *testing.T) {
	calc := NewCalculator()

	a := models.Point{X: 1, Y: 0}
	b := models.Point{X: 0, Y: 0}
	c := models.Point{X: 0, Y: 1}

	assert.InDelta(t, 90.0, calc.AngleAtVertex(a, b, c), 1e-9)
}

func TestAngleAtVertexCollinear(t *testing.T) {
	calc := NewCalculator()

	// b строго между a и c
	a := models.Point{X: 0, Y: 0}
	b := models.Point{X: 1, Y: 0}
	c := models.Point{X: 2, Y: 0}

	assert.InDelta(t, 180.0, calc.AngleAtVertex(a, b, c), 1e-9)
}

func TestAngleAtVertexDegenerate(t *testing.T) {
	calc := NewCalculator()

	b := models.Point{X: 5, Y: 5}
	c := models.Point{X: 10, Y: 10}

	// Совпадение a с вершиной дает нулевой вектор
	assert.Equal(t, 0.0, calc.AngleAtVertex(b, b, c))
	assert.Equal(t, 0.0, calc.AngleAtVertex(c, b, b))
	assert.Equal(t, 0.0, calc.AngleAtVertex(b, b, b))
}

func TestAngleAtVertexRange(t *testing.T) {
	calc := NewCalculator()

	points := []models.Point{
		{X: 3, Y: 7}, {X: -2, Y: 4}, {X: 10, Y: -1},
		{X: 0.5, Y: 0.25}, {X: 100, Y: 250},
	}

	for _, a := range points {
		for _, c := range points {
			b := models.Point{X: 1, Y: 1}
			angle := calc.AngleAtVertex(a, b, c)
			assert.GreaterOrEqual(t, angle, 0.0)
			assert.LessOrEqual(t, angle, 180.0)
		}
	}
}

func TestAngleAtVertexIgnoresZ(t *testing.T) {
	calc := NewCalculator()

	a := models.Point{X: 1, Y: 0, Z: 99}
	b := models.Point{X: 0, Y: 0, Z: -42}
	c := models.Point{X: 0, Y: 1, Z: 7}

	assert.InDelta(t, 90.0, calc.AngleAtVertex(a, b, c), 1e-9)
}

func TestLeanFromVerticalUpright(t *testing.T) {
	calc := NewCalculator()

	// Нижняя точка строго под верхней — наклон нулевой
	upper := models.Point{X: 50, Y: 10}
	lower := models.Point{X: 50, Y: 100}

	assert.InDelta(t, 0.0, calc.LeanFromVertical(upper, lower), 1e-9)
}

func TestLeanFromVerticalSignFlip(t *testing.T) {
	calc := NewCalculator()

	lower := models.Point{X: 50, Y: 100}
	right := models.Point{X: 60, Y: 10}
	left := models.Point{X: 40, Y: 10}

	leanRight := calc.LeanFromVertical(right, lower)
	leanLeft := calc.LeanFromVertical(left, lower)

	assert.Greater(t, leanRight, 0.0)
	assert.Less(t, leanLeft, 0.0)
	assert.InDelta(t, leanRight, -leanLeft, 1e-9)
}

func TestMidpoint(t *testing.T) {
	calc := NewCalculator()

	mid := calc.Midpoint(models.Point{X: 40, Y: 50}, models.Point{X: 60, Y: 70})

	assert.Equal(t, 50.0, mid.X)
	assert.Equal(t, 60.0, mid.Y)
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 161.6, Round1(161.56))
	assert.Equal(t, 0.9, Round2(0.901))
	assert.Equal(t, 0.92, Round2(0.916))
	assert.Equal(t, -3.1, Round1(-3.06))
}
