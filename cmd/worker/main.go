package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adamaboelmatty/basketball-form-analyzer/internal/client"
	"github.com/adamaboelmatty/basketball-form-analyzer/internal/config"
	"github.com/adamaboelmatty/basketball-form-analyzer/internal/pipeline"
)

var (
	framesDir   string
	outputDir   string
	noSkeletons bool
	leftHanded  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "worker",
		Short: "Анализ техники броска по каталогу кадров видео",
		Long: `Обрабатывает каталог кадров броска: извлекает точки тела через
сервис позы, вычисляет углы техники броска и определяет кадры
сет-поинта и выпуска мяча. Отчет сохраняется в pose_data.json и
выводится одной строкой JSON в stdout для вызывающего процесса.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&framesDir, "frames-dir", "", "каталог с кадрами видео")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "каталог для выходных файлов")
	rootCmd.Flags().BoolVar(&noSkeletons, "no-skeletons", false, "не генерировать кадры со скелетом")
	rootCmd.Flags().BoolVar(&leftHanded, "left-handed", false, "бросковая рука — левая")

	_ = rootCmd.MarkFlagRequired("frames-dir")
	_ = rootCmd.MarkFlagRequired("output-dir")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Логи идут в stderr, stdout занят отчетом JSON
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	cfg := config.LoadConfig()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Отсутствие каталога кадров — фатальная ошибка запуска:
	// выходим до записи каких-либо файлов
	info, err := os.Stat(framesDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("каталог кадров не найден: %s", framesDir)
	}

	// Клиент сервиса позы живет все время обработки каталога
	poseClient := client.NewPoseAPIClient(
		cfg.PythonAPI.BaseURL,
		time.Duration(cfg.PythonAPI.Timeout)*time.Second,
		logger,
	)

	p := pipeline.New(poseClient, logger)
	result, err := p.Run(pipeline.Options{
		FramesDir:         framesDir,
		OutputDir:         outputDir,
		GenerateSkeletons: !noSkeletons,
		IsRightHanded:     !leftHanded,
	})
	if err != nil {
		return err
	}

	// Отчет одной строкой в stdout для вызывающего процесса
	data, err := json.Marshal(result.Report)
	if err != nil {
		return fmt.Errorf("ошибка сериализации отчета: %w", err)
	}
	fmt.Println(string(data))

	return nil
}
