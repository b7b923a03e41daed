// internal/storage/model.go
//
// 定義「資料持久化層 (storage layer)」的結構模型。
// 檔案格式為單一 JSON 物件：帳戶名稱 → { balance, transactions }。
// 此層僅定義資料結構，不涉入商業邏輯。
package storage

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PersistAccount 為帳戶在儲存層的序列化格式。
type PersistAccount struct {
	Balance      decimal.Decimal `json:"balance"`      // 帳戶餘額
	Transactions []string        `json:"transactions"` // 完整交易紀錄，依發生順序
}

// Snapshot 為所有帳戶的完整快照，key 為正規化後的帳戶名稱。
// 每次成功變更後整份重新寫出。
type Snapshot map[string]PersistAccount

// persistWire 為 PersistAccount 實際寫出的 JSON 形狀；balance 以 JSON number 表示。
type persistWire struct {
	Balance      json.Number `json:"balance"`
	Transactions []string    `json:"transactions"`
}

// MarshalJSON 將 balance 寫成 JSON number（decimal 預設會加上引號）。
// 只影響本型別，不修改 decimal 的全域設定。
// 讀取時沿用 decimal.UnmarshalJSON，數字與字串兩種寫法皆可。
func (p PersistAccount) MarshalJSON() ([]byte, error) {
	return json.Marshal(persistWire{
		Balance:      json.Number(p.Balance.String()),
		Transactions: p.Transactions,
	})
}
