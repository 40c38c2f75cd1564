package models

// Point представляет точку тела на кадре
type Point struct {
	X          float64 `json:"x"`          // Координата X в пикселях
	Y          float64 `json:"y"`          // Координата Y в пикселях (растет вниз)
	Z          float64 `json:"z"`          // Относительная глубина (информационное поле)
	Visibility float64 `json:"visibility"` // Уверенность модели в точке [0,1]
}

// Landmarks фиксированный набор из 13 ключевых точек тела.
// Набор замкнут: либо детектор вернул все 13 точек, либо поза
// на кадре не найдена — частичных наборов не бывает.
type Landmarks struct {
	Nose          Point `json:"nose"`           // Нос
	LeftShoulder  Point `json:"left_shoulder"`  // Левое плечо
	RightShoulder Point `json:"right_shoulder"` // Правое плечо
	LeftElbow     Point `json:"left_elbow"`     // Левый локоть
	RightElbow    Point `json:"right_elbow"`    // Правый локоть
	LeftWrist     Point `json:"left_wrist"`     // Левое запястье
	RightWrist    Point `json:"right_wrist"`    // Правое запястье
	LeftHip       Point `json:"left_hip"`       // Левое бедро
	RightHip      Point `json:"right_hip"`      // Правое бедро
	LeftKnee      Point `json:"left_knee"`      // Левое колено
	RightKnee     Point `json:"right_knee"`     // Правое колено
	LeftAnkle     Point `json:"left_ankle"`     // Левая лодыжка
	RightAnkle    Point `json:"right_ankle"`    // Правая лодыжка
}

// LandmarkNames имена всех 13 точек в порядке словаря MediaPipe
var LandmarkNames = []string{
	"nose",
	"left_shoulder", "right_shoulder",
	"left_elbow", "right_elbow",
	"left_wrist", "right_wrist",
	"left_hip", "right_hip",
	"left_knee", "right_knee",
	"left_ankle", "right_ankle",
}

// FrameMetrics метрики одного успешно проанализированного кадра.
// FrameNumber — порядковый номер среди проанализированных кадров,
// а не позиция файла в каталоге: пропущенные кадры номер не занимают.
type FrameMetrics struct {
	FrameNumber           int       `json:"frame_number"`            // Номер кадра в последовательности
	Landmarks             Landmarks `json:"-"`                       // Точки тела (не сериализуем в отчет)
	ElbowAngle            float64   `json:"elbow_angle"`             // Угол в локте (плечо-локоть-запястье), градусы
	KneeFlexion           float64   `json:"knee_flexion"`            // Сгибание колена (бедро-колено-лодыжка), градусы
	ShoulderAngle         float64   `json:"shoulder_angle"`          // Угол в плече (локоть-плечо-бедро), градусы
	BodyLean              float64   `json:"body_lean"`               // Наклон корпуса от вертикали, градусы со знаком
	WristHeightNormalized float64   `json:"wrist_height_normalized"` // Высота запястья как доля от головы до бедра
}

// ShootingAngles итоговые углы броска по всей последовательности
type ShootingAngles struct {
	ElbowAngleAtRelease   float64 `json:"elbow_angle_at_release"`    // Угол локтя в момент выпуска мяча
	KneeFlexionAtSetPoint float64 `json:"knee_flexion_at_set_point"` // Сгибание колена в сет-поинте
	BodyLean              float64 `json:"body_lean"`                 // Средний наклон корпуса по всем кадрам
	SetPointHeight        float64 `json:"set_point_height"`          // Высота запястья в момент выпуска
	ReleaseFrame          int     `json:"release_frame"`             // Номер кадра выпуска мяча
	Confidence            string  `json:"confidence"`                // Надежность оценки (low/medium/high)
}

// PipelineReport итоговый отчет конвейера по каталогу кадров
type PipelineReport struct {
	FramesAnalyzed     int            `json:"frames_analyzed"`      // Количество кадров с найденной позой
	TotalFrames        int            `json:"total_frames"`         // Общее количество файлов кадров
	SkippedDecode      int            `json:"skipped_decode"`       // Кадры, пропущенные из-за ошибки декодирования
	SkippedNoPose      int            `json:"skipped_no_pose"`      // Кадры, где поза не найдена
	ShootingAngles     ShootingAngles `json:"shooting_angles"`      // Итоговые углы броска
	SkeletonFramePaths []string       `json:"skeleton_frame_paths"` // Пути к кадрам со скелетом
	FramesData         []FrameMetrics `json:"frames_data"`          // Метрики по каждому кадру
	Error              string         `json:"error,omitempty"`      // Ошибка уровня каталога (пустой список кадров)
}

// DetectRequest запрос на детекцию позы для одного кадра
type DetectRequest struct {
	ImageData []byte `json:"-"`        // Данные изображения (не сериализуем в JSON)
	Filename  string `json:"filename"` // Имя файла кадра
	Width     int    `json:"width"`    // Ширина кадра в пикселях
	Height    int    `json:"height"`   // Высота кадра в пикселях
}

// PoseAPIResponse определяет структуру ответа от Python FastAPI сервиса.
// Координаты точек нормализованы в [0,1] относительно размеров кадра.
type PoseAPIResponse struct {
	Status    string           `json:"status"`     // Статус выполнения
	Message   string           `json:"message"`    // Сообщение
	PoseFound bool             `json:"pose_found"` // Найдена ли поза на кадре
	Landmarks map[string]Point `json:"landmarks"`  // Нормализованные точки тела по именам
}

// HealthResponse представляет ответ проверки здоровья сервиса
type HealthResponse struct {
	Status      string `json:"status"`       // Статус сервиса (healthy/unhealthy)
	ModelLoaded bool   `json:"model_loaded"` // Загружена ли модель позы
	Version     string `json:"version"`      // Версия сервиса
}
