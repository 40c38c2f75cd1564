package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/adamaboelmatty/basketball-form-analyzer/pkg/models"
	"github.com/sirupsen/logrus"
)

// Настройки модели позы: одиночные изображения (без трекинга),
// максимальная точность, фиксированный порог уверенности
const (
	modelComplexity        = 2
	minDetectionConfidence = 0.5
)

// PoseAPIClient клиент для взаимодействия с Python FastAPI сервисом позы
type PoseAPIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewPoseAPIClient создает новый клиент для Python API
func NewPoseAPIClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *PoseAPIClient {
	return &PoseAPIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// DetectPose отправляет кадр в Python API и возвращает точки тела в
// пиксельных координатах. Второе значение false означает, что поза на
// кадре не найдена (это не ошибка).
func (c *PoseAPIClient) DetectPose(request models.DetectRequest) (models.Landmarks, bool, error) {
	var landmarks models.Landmarks

	// Создаем multipart form-data
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	// Добавляем файл кадра
	imageWriter, err := writer.CreateFormFile("image", request.Filename)
	if err != nil {
		return landmarks, false, fmt.Errorf("ошибка создания form field для кадра: %w", err)
	}

	if _, err := imageWriter.Write(request.ImageData); err != nil {
		return landmarks, false, fmt.Errorf("ошибка записи данных кадра: %w", err)
	}

	// Параметры модели
	if err := writer.WriteField("static_image_mode", "true"); err != nil {
		return landmarks, false, fmt.Errorf("ошибка записи static_image_mode: %w", err)
	}

	if err := writer.WriteField("model_complexity", fmt.Sprintf("%d", modelComplexity)); err != nil {
		return landmarks, false, fmt.Errorf("ошибка записи model_complexity: %w", err)
	}

	if err := writer.WriteField("min_detection_confidence", fmt.Sprintf("%.2f", minDetectionConfidence)); err != nil {
		return landmarks, false, fmt.Errorf("ошибка записи min_detection_confidence: %w", err)
	}

	if err := writer.Close(); err != nil {
		return landmarks, false, fmt.Errorf("ошибка закрытия multipart writer: %w", err)
	}

	// Создаем HTTP запрос
	url := fmt.Sprintf("%s/detect", c.baseURL)
	req, err := http.NewRequest("POST", url, &body)
	if err != nil {
		return landmarks, false, fmt.Errorf("ошибка создания HTTP запроса: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())

	// Отправляем запрос
	c.logger.Debugf("Отправка POST запроса на %s (кадр %s)", url, request.Filename)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return landmarks, false, fmt.Errorf("ошибка отправки HTTP запроса: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return landmarks, false, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return landmarks, false, fmt.Errorf("Python API вернул ошибку: статус %d, тело: %s", resp.StatusCode, string(respBody))
	}

	// Парсим JSON ответ
	var apiResponse models.PoseAPIResponse
	if err := json.Unmarshal(respBody, &apiResponse); err != nil {
		return landmarks, false, fmt.Errorf("ошибка парсинга JSON ответа: %w", err)
	}

	if apiResponse.Status != "success" {
		return landmarks, false, fmt.Errorf("Python API вернул ошибку: %s", apiResponse.Message)
	}

	if !apiResponse.PoseFound {
		return landmarks, false, nil
	}

	// Переводим нормализованные координаты в пиксельные и проверяем,
	// что набор точек полный
	landmarks, err = scaleLandmarks(apiResponse.Landmarks, request.Width, request.Height)
	if err != nil {
		return landmarks, false, err
	}

	return landmarks, true, nil
}

// CheckHealth проверяет состояние Python API
func (c *PoseAPIClient) CheckHealth() (*models.HealthResponse, error) {
	c.logger.Debug("Проверка здоровья Python API")

	url := fmt.Sprintf("%s/health", c.baseURL)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания HTTP запроса: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка отправки HTTP запроса: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Python API вернул ошибку: статус %d, тело: %s", resp.StatusCode, string(respBody))
	}

	var healthResponse models.HealthResponse
	if err := json.Unmarshal(respBody, &healthResponse); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON ответа: %w", err)
	}

	return &healthResponse, nil
}

// scaleLandmarks преобразует нормализованные [0,1] координаты точек в
// пиксельные. Набор точек обязан содержать все 13 имен словаря — иначе
// кадр считается кадром без позы и возвращается ошибка.
func scaleLandmarks(raw map[string]models.Point, width, height int) (models.Landmarks, error) {
	var landmarks models.Landmarks

	scaled := make(map[string]models.Point, len(models.LandmarkNames))
	for _, name := range models.LandmarkNames {
		point, ok := raw[name]
		if !ok {
			return landmarks, fmt.Errorf("неполный набор точек: отсутствует %q", name)
		}
		scaled[name] = models.Point{
			X:          point.X * float64(width),
			Y:          point.Y * float64(height),
			Z:          point.Z,
			Visibility: point.Visibility,
		}
	}

	landmarks = models.Landmarks{
		Nose:          scaled["nose"],
		LeftShoulder:  scaled["left_shoulder"],
		RightShoulder: scaled["right_shoulder"],
		LeftElbow:     scaled["left_elbow"],
		RightElbow:    scaled["right_elbow"],
		LeftWrist:     scaled["left_wrist"],
		RightWrist:    scaled["right_wrist"],
		LeftHip:       scaled["left_hip"],
		RightHip:      scaled["right_hip"],
		LeftKnee:      scaled["left_knee"],
		RightKnee:     scaled["right_knee"],
		LeftAnkle:     scaled["left_ankle"],
		RightAnkle:    scaled["right_ankle"],
	}

	return landmarks, nil
}
