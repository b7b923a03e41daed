// cmd/bank/main.go

// 本程式為單一使用者的主控台銀行系統：開戶、存款、提款、查詢餘額與交易紀錄。
// 此檔案負責初始化模組（config, logger, metrics, ledger, shell），
// 啟動時載入 JSON 檔，每次成功變更後由 ledger 自動覆寫；
// 收到 SIGINT/SIGTERM 時只輸出 metrics 與日誌，不再寫入帳戶檔。

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bankinfo/internal/config"
	"bankinfo/internal/ledger"
	"bankinfo/internal/metrics"
	"bankinfo/internal/shell"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	m := metrics.NewCollector(logger)

	// 載入上次的帳戶檔；不存在則以空帳戶表啟動
	l, err := ledger.Open(ledger.Options{
		Path:            cfg.DataFile,
		PreserveHistory: cfg.PreserveHistory,
	}, logger, m)
	if err != nil {
		logger.Fatal("failed to load accounts", zap.String("path", cfg.DataFile), zap.Error(err))
	}

	// 背景 goroutine 監聽 SIGINT/SIGTERM。
	// 帳戶檔已在每次成功變更後寫入，此處不再保存，也不讀取帳戶表。
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		sig := <-ch
		logger.Info("signal received", zap.String("signal", sig.String()))
		shutdown(m, cfg.MetricsFile, logger)
		os.Exit(0)
	}()

	s := shell.NewShell(l, os.Stdin, os.Stdout, cfg.Currency, logger)
	if err := s.Run(); err != nil {
		logger.Error("console input failed", zap.Error(err))
	}
	shutdown(m, cfg.MetricsFile, logger)
}

// shutdown 結束前輸出 metrics 並 flush 日誌。
// 帳戶檔只由成功的變更寫入；在預設載入模式下，未變更就重寫會覆蓋檔案中保存的交易紀錄。
func shutdown(m *metrics.Collector, metricsFile string, logger *zap.Logger) {
	_ = m.WriteTextfile(metricsFile)
	_ = logger.Sync()
}

// newLogger 以 production 設定建立 zap logger，層級與輸出位置由設定決定。
// 預設 warn 輸出至 stderr，避免干擾互動式選單。
func newLogger(cfg config.AppConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
