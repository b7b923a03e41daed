// internal/metrics/prometheus.go
//
// 以 Prometheus client 記錄帳本操作的計數與耗時。
// 每個 Collector 使用獨立的 registry，結束時可輸出為 textfile 供 node_exporter 收集。
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// 操作結果，作為 "result" label 的值。
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Collector 保存本程序的操作計數、帳戶餘額與存檔耗時。
// nil *Collector 合法，所有記錄方法皆為 no-op。
type Collector struct {
	registry       *prometheus.Registry
	operations     *prometheus.CounterVec
	accountBalance *prometheus.GaugeVec
	accounts       prometheus.Gauge
	saveDuration   prometheus.Histogram
	logger         *zap.Logger
}

// NewCollector 建立新的 registry 並註冊所有指標；logger 可為 nil。
func NewCollector(logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		operations: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "bank_operations_total",
			Help: "Total number of ledger operations by outcome",
		}, []string{"operation", "result"}),
		accountBalance: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Name: "bank_account_balance",
			Help: "Current account balance",
		}, []string{"holder"}),
		accounts: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "bank_accounts",
			Help: "Number of accounts in the ledger",
		}),
		saveDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "bank_save_duration_seconds",
			Help:    "Time taken to rewrite the accounts file",
			Buckets: prometheus.DefBuckets,
		}),
		logger: logger,
	}
}

// RecordOperation 將指定操作與結果的計數加一。
func (m *Collector) RecordOperation(operation, result string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

// UpdateAccountBalance 設定帳戶目前餘額。
func (m *Collector) UpdateAccountBalance(holder string, balance float64) {
	if m == nil {
		return
	}
	m.accountBalance.WithLabelValues(holder).Set(balance)
}

// SetAccounts 設定目前帳戶數量。
func (m *Collector) SetAccounts(n int) {
	if m == nil {
		return
	}
	m.accounts.Set(float64(n))
}

// ObserveSave 記錄一次覆寫帳戶檔的耗時。
func (m *Collector) ObserveSave(d time.Duration) {
	if m == nil {
		return
	}
	m.saveDuration.Observe(d.Seconds())
}

// Operations 回傳操作計數器，供測試以 testutil 讀值；nil Collector 回傳 nil。
func (m *Collector) Operations() *prometheus.CounterVec {
	if m == nil {
		return nil
	}
	return m.operations
}

// Accounts 回傳帳戶數量 gauge；nil Collector 回傳 nil。
func (m *Collector) Accounts() prometheus.Gauge {
	if m == nil {
		return nil
	}
	return m.accounts
}

// Registry 回傳底層 registry。
func (m *Collector) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// WriteTextfile 將 registry 以文字格式寫入檔案，供 node_exporter textfile collector 使用。
// path 為空字串時不做任何事。
func (m *Collector) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		m.logger.Error("write metrics textfile failed", zap.String("path", path), zap.Error(err))
		return err
	}
	m.logger.Info("metrics textfile written", zap.String("path", path))
	return nil
}
