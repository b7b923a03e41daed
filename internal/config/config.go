// internal/config/config.go
//
// 讀取執行設定：先載入工作目錄下的 .env（可省略），再讀取 BANK_* 環境變數。
// 未設定的項目使用預設值。
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig 為程式啟動所需的所有設定。
type AppConfig struct {
	DataFile        string // 帳戶檔路徑（BANK_DATA_FILE）
	PreserveHistory bool   // 載入時保留檔案中的交易紀錄（BANK_PRESERVE_HISTORY）
	Currency        string // 顯示用貨幣符號（BANK_CURRENCY）
	LogLevel        string // zap 日誌層級（BANK_LOG_LEVEL）
	LogFile         string // 日誌輸出位置（BANK_LOG_FILE）
	MetricsFile     string // metrics textfile 路徑，空字串表示不輸出（BANK_METRICS_FILE）
}

// Load 載入 .env 與環境變數；BANK_PRESERVE_HISTORY 不是合法布林值時回傳錯誤。
func Load() (AppConfig, error) {
	_ = godotenv.Load()

	preserve, err := strconv.ParseBool(getEnv("BANK_PRESERVE_HISTORY", "false"))
	if err != nil {
		return AppConfig{}, fmt.Errorf("BANK_PRESERVE_HISTORY: %w", err)
	}

	return AppConfig{
		DataFile:        getEnv("BANK_DATA_FILE", "accounts.json"),
		PreserveHistory: preserve,
		Currency:        getEnv("BANK_CURRENCY", "₹"),
		LogLevel:        getEnv("BANK_LOG_LEVEL", "warn"),
		LogFile:         getEnv("BANK_LOG_FILE", "stderr"),
		MetricsFile:     getEnv("BANK_METRICS_FILE", ""),
	}, nil
}

// getEnv 讀取環境變數，未設定或為空時回傳 fallback。
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
