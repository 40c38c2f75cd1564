package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamaboelmatty/basketball-form-analyzer/pkg/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// fullLandmarkSet возвращает нормализованный набор из всех 13 точек
func fullLandmarkSet() map[string]models.Point {
	landmarks := make(map[string]models.Point, len(models.LandmarkNames))
	for _, name := range models.LandmarkNames {
		landmarks[name] = models.Point{X: 0.5, Y: 0.25, Z: -0.1, Visibility: 0.95}
	}
	return landmarks
}

func TestDetectPoseScalesToPixels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/detect", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(32<<20))

		// Параметры модели передаются формой
		assert.Equal(t, "true", r.FormValue("static_image_mode"))
		assert.Equal(t, "2", r.FormValue("model_complexity"))
		assert.Equal(t, "0.50", r.FormValue("min_detection_confidence"))

		_, header, err := r.FormFile("image")
		require.NoError(t, err)
		assert.Equal(t, "frame_0001.jpg", header.Filename)

		json.NewEncoder(w).Encode(models.PoseAPIResponse{
			Status:    "success",
			PoseFound: true,
			Landmarks: fullLandmarkSet(),
		})
	}))
	defer server.Close()

	c := NewPoseAPIClient(server.URL, 5*time.Second, testLogger())

	landmarks, found, err := c.DetectPose(models.DetectRequest{
		ImageData: []byte("fake image data"),
		Filename:  "frame_0001.jpg",
		Width:     200,
		Height:    100,
	})
	require.NoError(t, err)
	require.True(t, found)

	// Нормализованные координаты масштабируются размерами кадра
	assert.Equal(t, 100.0, landmarks.Nose.X)
	assert.Equal(t, 25.0, landmarks.Nose.Y)
	assert.Equal(t, -0.1, landmarks.Nose.Z)
	assert.Equal(t, 0.95, landmarks.Nose.Visibility)
	assert.Equal(t, 100.0, landmarks.RightAnkle.X)
	assert.Equal(t, 25.0, landmarks.RightAnkle.Y)
}

func TestDetectPoseNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.PoseAPIResponse{
			Status:    "success",
			PoseFound: false,
		})
	}))
	defer server.Close()

	c := NewPoseAPIClient(server.URL, 5*time.Second, testLogger())

	_, found, err := c.DetectPose(models.DetectRequest{ImageData: []byte("x"), Filename: "a.jpg", Width: 100, Height: 100})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDetectPoseIncompleteLandmarks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		landmarks := fullLandmarkSet()
		delete(landmarks, "left_ankle")
		json.NewEncoder(w).Encode(models.PoseAPIResponse{
			Status:    "success",
			PoseFound: true,
			Landmarks: landmarks,
		})
	}))
	defer server.Close()

	c := NewPoseAPIClient(server.URL, 5*time.Second, testLogger())

	// Неполный набор точек нарушает инвариант "все или ничего"
	_, _, err := c.DetectPose(models.DetectRequest{ImageData: []byte("x"), Filename: "a.jpg", Width: 100, Height: 100})
	assert.Error(t, err)
}

func TestDetectPoseServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewPoseAPIClient(server.URL, 5*time.Second, testLogger())

	_, _, err := c.DetectPose(models.DetectRequest{ImageData: []byte("x"), Filename: "a.jpg", Width: 100, Height: 100})
	assert.Error(t, err)
}

func TestCheckHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(models.HealthResponse{
			Status:      "healthy",
			ModelLoaded: true,
			Version:     "1.0.0",
		})
	}))
	defer server.Close()

	c := NewPoseAPIClient(server.URL, 5*time.Second, testLogger())

	health, err := c.CheckHealth()
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.True(t, health.ModelLoaded)
}
