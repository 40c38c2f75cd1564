package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	// Регистрируем декодеры форматов кадров
	_ "image/jpeg"
	_ "image/png"

	"github.com/adamaboelmatty/basketball-form-analyzer/internal/analysis"
	"github.com/adamaboelmatty/basketball-form-analyzer/internal/overlay"
	"github.com/adamaboelmatty/basketball-form-analyzer/pkg/models"
	"github.com/sirupsen/logrus"
)

// ReportFilename имя файла отчета в выходном каталоге
const ReportFilename = "pose_data.json"

// PoseDetector интерфейс внешнего детектора позы: кадр на входе, полный
// набор точек тела или сигнал "поза не найдена" на выходе. Детектор
// живет все время обработки каталога, а не создается на каждый кадр.
type PoseDetector interface {
	DetectPose(request models.DetectRequest) (models.Landmarks, bool, error)
}

// Options параметры запуска конвейера
type Options struct {
	FramesDir         string // Каталог с кадрами видео
	OutputDir         string // Каталог для отчета и кадров со скелетом
	GenerateSkeletons bool   // Генерировать ли кадры со скелетом
	IsRightHanded     bool   // Бросковая рука (true — правая)
}

// FrameStatus статус обработки одного файла кадра
type FrameStatus string

const (
	StatusAnalyzed      FrameStatus = "analyzed"        // Поза найдена, метрики рассчитаны
	StatusSkippedDecode FrameStatus = "skipped_decode"  // Файл не декодируется
	StatusSkippedNoPose FrameStatus = "skipped_no_pose" // Поза на кадре не найдена
)

// FrameOutcome результат обработки одного файла кадра.
// Пропуски фиксируются явно, а не теряются молча.
type FrameOutcome struct {
	File   string      `json:"file"`   // Имя файла кадра
	Status FrameStatus `json:"status"` // Статус обработки
}

// Result результат работы конвейера
type Result struct {
	Report   *models.PipelineReport // Итоговый отчет
	Outcomes []FrameOutcome         // Статус каждого файла кадра по порядку
}

// Pipeline конвейер анализа последовательности кадров броска
type Pipeline struct {
	detector PoseDetector
	analyzer *analysis.Analyzer
	renderer *overlay.Renderer
	logger   *logrus.Logger
}

// New создает новый конвейер с внешним детектором позы
func New(detector PoseDetector, logger *logrus.Logger) *Pipeline {
	return &Pipeline{
		detector: detector,
		analyzer: analysis.NewAnalyzer(),
		renderer: overlay.NewRenderer(),
		logger:   logger,
	}
}

// Run обрабатывает каталог кадров и собирает итоговый отчет.
// Ошибки отдельных кадров (битый файл, поза не найдена) не прерывают
// обработку; фатальна только недоступность каталога кадров.
//
// Номера кадров назначаются по счетчику успешно проанализированных
// кадров, а не по позиции файла в каталоге: при пропусках номера в
// отчете не соответствуют исходному таймингу съемки. Файлы скелетов
// нумеруются тем же счетчиком, поэтому skeleton_000N.jpg всегда
// соответствует кадру N в frames_data.
func (p *Pipeline) Run(opts Options) (*Result, error) {
	frameFiles, err := listFrameFiles(opts.FramesDir)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения каталога кадров %s: %w", opts.FramesDir, err)
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания выходного каталога %s: %w", opts.OutputDir, err)
	}

	framesData := []models.FrameMetrics{}
	skeletonPaths := []string{}
	outcomes := []FrameOutcome{}

	if len(frameFiles) == 0 {
		p.logger.Warnf("В каталоге %s не найдено файлов кадров", opts.FramesDir)
		report := p.assembleReport(framesData, skeletonPaths, outcomes, 0)
		report.Error = "no frame files found"
		if err := p.writeReport(report, opts.OutputDir); err != nil {
			return nil, err
		}
		return &Result{Report: report, Outcomes: outcomes}, nil
	}

	p.logger.Infof("Начинаем обработку %d кадров из %s", len(frameFiles), opts.FramesDir)

	for _, frameFile := range frameFiles {
		framePath := filepath.Join(opts.FramesDir, frameFile)

		data, err := os.ReadFile(framePath)
		if err != nil {
			p.logger.Warnf("Пропускаем кадр %s: ошибка чтения файла: %v", frameFile, err)
			outcomes = append(outcomes, FrameOutcome{File: frameFile, Status: StatusSkippedDecode})
			continue
		}

		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			p.logger.Warnf("Пропускаем кадр %s: ошибка декодирования: %v", frameFile, err)
			outcomes = append(outcomes, FrameOutcome{File: frameFile, Status: StatusSkippedDecode})
			continue
		}

		bounds := img.Bounds()
		landmarks, found, err := p.detector.DetectPose(models.DetectRequest{
			ImageData: data,
			Filename:  frameFile,
			Width:     bounds.Dx(),
			Height:    bounds.Dy(),
		})
		if err != nil {
			p.logger.Warnf("Пропускаем кадр %s: ошибка детектора позы: %v", frameFile, err)
			outcomes = append(outcomes, FrameOutcome{File: frameFile, Status: StatusSkippedNoPose})
			continue
		}
		if !found {
			p.logger.Debugf("Пропускаем кадр %s: поза не найдена", frameFile)
			outcomes = append(outcomes, FrameOutcome{File: frameFile, Status: StatusSkippedNoPose})
			continue
		}

		// Номер кадра — счетчик успешно проанализированных кадров
		frameData := p.analyzer.AnalyzeFrame(landmarks, opts.IsRightHanded)
		frameData.FrameNumber = len(framesData)
		framesData = append(framesData, frameData)
		outcomes = append(outcomes, FrameOutcome{File: frameFile, Status: StatusAnalyzed})

		if opts.GenerateSkeletons {
			skeletonFrame := p.renderer.DrawSkeleton(img, landmarks)
			skeletonPath := filepath.Join(opts.OutputDir, fmt.Sprintf("skeleton_%04d.jpg", frameData.FrameNumber))
			if err := p.renderer.SaveJPEG(skeletonPath, skeletonFrame); err != nil {
				p.logger.Warnf("Ошибка сохранения кадра со скелетом %s: %v", skeletonPath, err)
			} else {
				skeletonPaths = append(skeletonPaths, skeletonPath)
			}
		}
	}

	report := p.assembleReport(framesData, skeletonPaths, outcomes, len(frameFiles))

	p.logger.Infof("Обработка завершена: проанализировано %d из %d кадров, кадр выпуска %d",
		report.FramesAnalyzed, report.TotalFrames, report.ShootingAngles.ReleaseFrame)

	if err := p.writeReport(report, opts.OutputDir); err != nil {
		return nil, err
	}

	return &Result{Report: report, Outcomes: outcomes}, nil
}

// assembleReport собирает итоговый отчет по последовательности кадров
func (p *Pipeline) assembleReport(framesData []models.FrameMetrics, skeletonPaths []string, outcomes []FrameOutcome, totalFrames int) *models.PipelineReport {
	skippedDecode := 0
	skippedNoPose := 0
	for _, outcome := range outcomes {
		switch outcome.Status {
		case StatusSkippedDecode:
			skippedDecode++
		case StatusSkippedNoPose:
			skippedNoPose++
		}
	}

	return &models.PipelineReport{
		FramesAnalyzed:     len(framesData),
		TotalFrames:        totalFrames,
		SkippedDecode:      skippedDecode,
		SkippedNoPose:      skippedNoPose,
		ShootingAngles:     analysis.CalculateShootingAngles(framesData),
		SkeletonFramePaths: skeletonPaths,
		FramesData:         framesData,
	}
}

// writeReport сохраняет отчет в pose_data.json с отступами для чтения человеком
func (p *Pipeline) writeReport(report *models.PipelineReport, outputDir string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации отчета: %w", err)
	}

	reportPath := filepath.Join(outputDir, ReportFilename)
	if err := os.WriteFile(reportPath, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи отчета %s: %w", reportPath, err)
	}

	return nil
}

// listFrameFiles возвращает имена файлов кадров, отсортированные
// лексикографически. Порядок сортировки и определяет последовательность
// кадров — числовые суффиксы в именах не интерпретируются.
func listFrameFiles(framesDir string) ([]string, error) {
	entries, err := os.ReadDir(framesDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg", ".png":
			files = append(files, entry.Name())
		}
	}

	sort.Strings(files)
	return files, nil
}
