// internal/bank/amount.go
//
// 使用者輸入金額的解析規則。

package bank

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// maxExponent 為金額十進位指數的上限（絕對值）。
// decimal 接受極大的指數（如 1e99999999），轉成字串時會展開全部位數而卡住程式，
// 因此超出範圍的輸入一律視為非法金額。
const maxExponent = 30

// ParseAmount 將使用者輸入解析為金額；無法解析或指數超出範圍時回傳 ErrBadAmount。
// 只檢查格式，正負由各操作自行判斷。
func ParseAmount(s string) (decimal.Decimal, error) {
	amt, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrBadAmount, s)
	}
	if exp := amt.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, fmt.Errorf("%w: %q exponent out of range", ErrBadAmount, s)
	}
	return amt, nil
}
