// internal/ledger/ledger.go

// Package ledger 為帳戶資料的對外入口 (Ledger Store)：
// 啟動時載入一次 JSON 檔，之後每個操作都「查帳戶 → 解析金額 → 變更 → 整份覆寫」。
// 金額以使用者輸入的原始字串傳入，由本層負責解析。
package ledger

import (
	"errors"
	"fmt"
	"time"

	"bankinfo/internal/bank"
	"bankinfo/internal/metrics"
	"bankinfo/internal/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Options 設定 Ledger 的儲存位置與載入行為。
type Options struct {
	Path            string // JSON 檔路徑
	PreserveHistory bool   // 載入時保留檔案中的交易紀錄（預設捨棄）
}

// Ledger 持有 in-memory 銀行與其備份檔路徑。
// 不加鎖：程式假設在整個生命週期內獨佔備份檔。
type Ledger struct {
	bank    *bank.Bank
	opts    Options
	logger  *zap.Logger
	metrics *metrics.Collector
}

// Open 建立 Ledger 並立即載入備份檔；檔案不存在時以空帳戶表啟動。
// logger 與 m 可為 nil。
func Open(opts Options, logger *zap.Logger, m *metrics.Collector) (*Ledger, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Ledger{
		bank:    bank.NewBank(),
		opts:    opts,
		logger:  logger,
		metrics: m,
	}
	if err := l.Load(); err != nil {
		return nil, err
	}
	return l, nil
}

// Path 回傳備份檔路徑。
func (l *Ledger) Path() string {
	return l.opts.Path
}

// Load 從備份檔還原所有帳戶，覆蓋目前的記憶體狀態。
func (l *Ledger) Load() error {
	snap, err := storage.LoadSnapshot(l.opts.Path)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	l.bank.Restore(snap, l.opts.PreserveHistory)
	l.refreshGauges()
	l.logger.Info("accounts loaded",
		zap.String("path", l.opts.Path),
		zap.Int("accounts", l.bank.Len()),
		zap.Bool("preserve_history", l.opts.PreserveHistory))
	return nil
}

// Save 將所有帳戶（含完整交易紀錄）整份覆寫至備份檔。
func (l *Ledger) Save() error {
	start := time.Now()
	err := storage.SaveSnapshot(l.opts.Path, l.bank.Snapshot())
	l.metrics.ObserveSave(time.Since(start))
	if err != nil {
		l.logger.Error("save accounts failed", zap.String("path", l.opts.Path), zap.Error(err))
		return fmt.Errorf("save accounts: %w", err)
	}
	return nil
}

// CreateAccount 開戶。檢查順序：名稱重複 → 金額可否解析。
// 成功後立即持久化；若持久化失敗，帳戶仍留在記憶體中並回傳錯誤。
func (l *Ledger) CreateAccount(holder, amount string) (*bank.Account, error) {
	const op = "create"
	if l.bank.Exists(holder) {
		return nil, l.reject(op, holder, bank.ErrAlreadyExists)
	}
	amt, err := bank.ParseAmount(amount)
	if err != nil {
		return nil, l.reject(op, holder, err)
	}
	a, err := l.bank.Create(holder, amt)
	if err != nil {
		return nil, l.reject(op, holder, err)
	}
	return a, l.commit(op, a)
}

// FindAccount 以正規化名稱查詢帳戶；不存在時回傳 bank.ErrNotFound。
func (l *Ledger) FindAccount(holder string) (*bank.Account, error) {
	return l.bank.Get(holder)
}

// DepositMoney 存款。檢查順序：帳戶存在 → 金額可解析 → 金額 > 0。
func (l *Ledger) DepositMoney(holder, amount string) (*bank.Account, error) {
	const op = "deposit"
	if _, err := l.bank.Get(holder); err != nil {
		return nil, l.reject(op, holder, err)
	}
	amt, err := bank.ParseAmount(amount)
	if err != nil {
		return nil, l.reject(op, holder, err)
	}
	a, err := l.bank.Deposit(holder, amt)
	if err != nil {
		return nil, l.reject(op, holder, err)
	}
	return a, l.commit(op, a)
}

// WithdrawMoney 提款。檢查順序：帳戶存在 → 金額可解析 → 餘額足夠 → 金額 > 0。
func (l *Ledger) WithdrawMoney(holder, amount string) (*bank.Account, error) {
	const op = "withdraw"
	if _, err := l.bank.Get(holder); err != nil {
		return nil, l.reject(op, holder, err)
	}
	amt, err := bank.ParseAmount(amount)
	if err != nil {
		return nil, l.reject(op, holder, err)
	}
	a, err := l.bank.Withdraw(holder, amt)
	if err != nil {
		return nil, l.reject(op, holder, err)
	}
	return a, l.commit(op, a)
}

// CheckBalance 回傳帳戶名稱與餘額。
func (l *Ledger) CheckBalance(holder string) (string, decimal.Decimal, error) {
	a, err := l.bank.Get(holder)
	if err != nil {
		return "", decimal.Zero, l.reject("balance", holder, err)
	}
	l.metrics.RecordOperation("balance", metrics.ResultOK)
	name, bal := a.DisplayBalance()
	return name, bal, nil
}

// ShowTransactionHistory 回傳帳戶的完整交易紀錄（依發生順序）。
func (l *Ledger) ShowTransactionHistory(holder string) ([]string, error) {
	logs, err := l.bank.Logs(holder)
	if err != nil {
		return nil, l.reject("history", holder, err)
	}
	l.metrics.RecordOperation("history", metrics.ResultOK)
	return logs, nil
}

// Accounts 回傳所有帳戶的拷貝，依名稱排序。
func (l *Ledger) Accounts() []*bank.Account {
	return l.bank.List()
}

// commit 在變更成功後持久化並更新觀測資料。
func (l *Ledger) commit(op string, a *bank.Account) error {
	opID := uuid.New().String()
	if err := l.Save(); err != nil {
		l.metrics.RecordOperation(op, metrics.ResultError)
		return err
	}
	l.metrics.RecordOperation(op, metrics.ResultOK)
	l.refreshGauges()
	l.logger.Info("account updated",
		zap.String("op", op),
		zap.String("op_id", opID),
		zap.String("holder", a.Holder),
		zap.Stringer("balance", a.Balance))
	return nil
}

// reject 記錄被拒絕的操作並原樣回傳錯誤。
func (l *Ledger) reject(op, holder string, err error) error {
	result := metrics.ResultRejected
	if !isDomainErr(err) {
		result = metrics.ResultError
	}
	l.metrics.RecordOperation(op, result)
	l.logger.Debug("operation rejected",
		zap.String("op", op),
		zap.String("holder", bank.Normalize(holder)),
		zap.Error(err))
	return err
}

func (l *Ledger) refreshGauges() {
	if l.metrics == nil {
		return
	}
	accts := l.bank.List()
	l.metrics.SetAccounts(len(accts))
	for _, a := range accts {
		l.metrics.UpdateAccountBalance(a.Holder, a.Balance.InexactFloat64())
	}
}

func isDomainErr(err error) bool {
	for _, target := range []error{
		bank.ErrNotFound, bank.ErrAlreadyExists, bank.ErrBadAmount,
		bank.ErrInsufficient,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
