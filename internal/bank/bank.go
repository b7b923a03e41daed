// internal/bank/bank.go

// Package bank 定義核心商業邏輯：開戶、存款、提款、查詢餘額與交易紀錄。
// 本系統為單一使用者、單一執行緒的主控台程式，因此帳戶表不加鎖；
// 呼叫端（ledger）負責在每次成功變更後持久化。
// 金額使用 decimal.Decimal，避免二進位浮點誤差。
package bank

import (
	"sort"

	"bankinfo/internal/storage"

	"github.com/shopspring/decimal"
)

// Bank 為聚合根 (Aggregate Root)：管理所有帳戶。
// accts：帳戶索引表（正規化名稱 → *Account）。
type Bank struct {
	accts map[string]*Account
}

// NewBank 建立空白銀行實例（僅 in-memory 狀態，無外部依賴）。
func NewBank() *Bank {
	return &Bank{accts: make(map[string]*Account)}
}

// Create 以名稱與初始餘額建立帳戶。
// 名稱先正規化；重複時回傳 ErrAlreadyExists。名稱與初始餘額皆不另做檢查（空名稱亦可開戶）。
// 回傳拷貝（非內部指標）避免呼叫端越權修改內部狀態。
func (b *Bank) Create(holder string, balance decimal.Decimal) (*Account, error) {
	key := Normalize(holder)
	if _, ok := b.accts[key]; ok {
		return nil, ErrAlreadyExists
	}
	a := newAccount(key, balance)
	b.accts[key] = a
	return a.clone(), nil
}

// Exists 回傳正規化後的名稱是否已有帳戶。
func (b *Bank) Exists(holder string) bool {
	_, ok := b.accts[Normalize(holder)]
	return ok
}

// Get 依名稱取得帳戶的目前快照；若不存在回傳 ErrNotFound。
func (b *Bank) Get(holder string) (*Account, error) {
	a, ok := b.accts[Normalize(holder)]
	if !ok {
		return nil, ErrNotFound
	}
	return a.clone(), nil
}

// List 回傳所有帳戶的拷貝，依名稱排序。
func (b *Bank) List() []*Account {
	out := make([]*Account, 0, len(b.accts))
	for _, a := range b.accts {
		out = append(out, a.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Holder < out[j].Holder })
	return out
}

// Len 回傳帳戶數量。
func (b *Bank) Len() int {
	return len(b.accts)
}

// Deposit 存款：帳戶不存在回傳 ErrNotFound，其餘規則見 Account.Deposit。
func (b *Bank) Deposit(holder string, amt decimal.Decimal) (*Account, error) {
	a, ok := b.accts[Normalize(holder)]
	if !ok {
		return nil, ErrNotFound
	}
	if err := a.Deposit(amt); err != nil {
		return nil, err
	}
	return a.clone(), nil
}

// Withdraw 提款：帳戶不存在回傳 ErrNotFound，其餘規則見 Account.Withdraw。
func (b *Bank) Withdraw(holder string, amt decimal.Decimal) (*Account, error) {
	a, ok := b.accts[Normalize(holder)]
	if !ok {
		return nil, ErrNotFound
	}
	if err := a.Withdraw(amt); err != nil {
		return nil, err
	}
	return a.clone(), nil
}

// Logs 回傳指定帳戶的交易紀錄（拷貝）。
func (b *Bank) Logs(holder string) ([]string, error) {
	a, ok := b.accts[Normalize(holder)]
	if !ok {
		return nil, ErrNotFound
	}
	return a.Transactions(), nil
}

// Snapshot 匯出銀行狀態到可持久化的 storage.Snapshot，包含完整交易紀錄。
func (b *Bank) Snapshot() storage.Snapshot {
	s := make(storage.Snapshot, len(b.accts))
	for key, a := range b.accts {
		s[key] = storage.PersistAccount{
			Balance:      a.Balance,
			Transactions: a.Transactions(),
		}
	}
	return s
}

// Restore 由 storage.Snapshot 重建帳戶表。
//
// preserveHistory 為 false 時（預設行為），檔案中保存的交易紀錄會被捨棄，
// 每個帳戶只留下一筆以目前餘額產生的開戶紀錄。
// 為 true 時保留檔案中的交易紀錄；若紀錄為空仍補上開戶紀錄。
func (b *Bank) Restore(s storage.Snapshot, preserveHistory bool) {
	b.accts = make(map[string]*Account, len(s))
	for key, pa := range s {
		a := newAccount(key, pa.Balance)
		if preserveHistory && len(pa.Transactions) > 0 {
			a.History = append([]string(nil), pa.Transactions...)
		}
		b.accts[key] = a
	}
}
