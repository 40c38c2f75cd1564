package analysis

import (
	"github.com/adamaboelmatty/basketball-form-analyzer/internal/geom"
	"github.com/adamaboelmatty/basketball-form-analyzer/pkg/models"
)

// Analyzer вычисляет биомеханические метрики по точкам тела одного кадра
type Analyzer struct {
	calc *geom.Calculator
}

// NewAnalyzer создает новый анализатор кадров
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		calc: geom.NewCalculator(),
	}
}

// AnalyzeFrame вычисляет метрики кадра для выбранной стороны тела.
// Номер кадра проставляет вызывающая сторона.
func (a *Analyzer) AnalyzeFrame(landmarks models.Landmarks, isRightHanded bool) models.FrameMetrics {
	// Выбираем бросковую сторону
	var shoulder, elbow, wrist, hip, knee, ankle models.Point
	if isRightHanded {
		shoulder = landmarks.RightShoulder
		elbow = landmarks.RightElbow
		wrist = landmarks.RightWrist
		hip = landmarks.RightHip
		knee = landmarks.RightKnee
		ankle = landmarks.RightAnkle
	} else {
		shoulder = landmarks.LeftShoulder
		elbow = landmarks.LeftElbow
		wrist = landmarks.LeftWrist
		hip = landmarks.LeftHip
		knee = landmarks.LeftKnee
		ankle = landmarks.LeftAnkle
	}

	// Угол в локте (плечо-локоть-запястье)
	elbowAngle := a.calc.AngleAtVertex(shoulder, elbow, wrist)

	// Сгибание колена (бедро-колено-лодыжка)
	kneeFlexion := a.calc.AngleAtVertex(hip, knee, ankle)

	// Угол в плече (локоть-плечо-бедро)
	shoulderAngle := a.calc.AngleAtVertex(elbow, shoulder, hip)

	// Наклон корпуса считаем по серединам плеч и бедер обеих сторон,
	// независимо от бросковой руки
	midShoulder := a.calc.Midpoint(landmarks.LeftShoulder, landmarks.RightShoulder)
	midHip := a.calc.Midpoint(landmarks.LeftHip, landmarks.RightHip)
	bodyLean := a.calc.LeanFromVertical(midShoulder, midHip)

	// Высота запястья как доля расстояния от носа до середины бедер.
	// При нулевом знаменателе (вырожденный кадр) возвращаем 0.
	nose := landmarks.Nose
	wristHeight := 0.0
	if span := nose.Y - midHip.Y; span != 0 {
		wristHeight = (nose.Y - wrist.Y) / span
	}

	return models.FrameMetrics{
		Landmarks:             landmarks,
		ElbowAngle:            geom.Round1(elbowAngle),
		KneeFlexion:           geom.Round1(kneeFlexion),
		ShoulderAngle:         geom.Round1(shoulderAngle),
		BodyLean:              geom.Round1(bodyLean),
		WristHeightNormalized: geom.Round2(wristHeight),
	}
}
