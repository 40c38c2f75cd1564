package ffmpeg

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
)

// Extractor извлекает кадры из видео броска через ffmpeg
type Extractor struct {
	fps    int
	logger *logrus.Logger
}

// NewExtractor создает новый экстрактор кадров
func NewExtractor(fps int, logger *logrus.Logger) *Extractor {
	return &Extractor{
		fps:    fps,
		logger: logger,
	}
}

// ExtractFrames извлекает кадры из видео в каталог outputDir с заданной
// частотой. Возвращает отсортированные пути извлеченных кадров.
func (e *Extractor) ExtractFrames(videoPath, outputDir string) ([]string, error) {
	e.logger.Infof("Извлекаем кадры из видео %s (fps=%d)", videoPath, e.fps)

	framePattern := filepath.Join(outputDir, "frame_%04d.jpg")
	cmd := exec.Command("ffmpeg",
		"-i", videoPath,
		"-vf", fmt.Sprintf("fps=%d", e.fps),
		"-y",
		framePattern,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ошибка ffmpeg: %w, вывод: %s", err, string(output))
	}

	frames, err := filepath.Glob(filepath.Join(outputDir, "*.jpg"))
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска извлеченных кадров: %w", err)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("из видео не извлечено ни одного кадра")
	}

	sort.Strings(frames)

	e.logger.Infof("Извлечено %d кадров в %s", len(frames), outputDir)
	return frames, nil
}
