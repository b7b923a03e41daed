// internal/bank/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 這些錯誤屬於商業邏輯層級（非系統錯誤），由上層 shell 轉換成對使用者的提示訊息，
// 並只中止當次操作；程式與帳戶資料皆維持可用。

package bank

import "errors"

var (
	// ErrNotFound 代表帳戶不存在。
	ErrNotFound = errors.New("account not found")

	// ErrAlreadyExists 代表（正規化後）同名帳戶已存在。
	ErrAlreadyExists = errors.New("account already exists")

	// ErrBadAmount 代表金額非法：無法解析為數字，或在需要正數時 <= 0。
	ErrBadAmount = errors.New("invalid amount")

	// ErrInsufficient 代表餘額不足，提款失敗。
	ErrInsufficient = errors.New("insufficient balance")
)
