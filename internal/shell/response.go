// internal/shell/response.go
//
// 本檔負責統一主控台輸出格式。
// 成功訊息以 ✅ 開頭、失敗訊息以 ❌ 開頭；
// 領域錯誤到使用者訊息的對應集中於 writeErr，handler 不需各自處理。
package shell

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"bankinfo/internal/bank"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// printf 直接輸出至 out；寫入錯誤忽略（主控台輸出失敗無從回報）。
func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// writeOK 輸出成功訊息。
func (s *Shell) writeOK(format string, args ...any) {
	s.printf("✅ "+format+"\n", args...)
}

// writeFail 輸出失敗訊息。
func (s *Shell) writeFail(msg string) {
	s.printf("❌ %s\n", msg)
}

// writeErr 將錯誤轉為使用者訊息輸出。
// 非領域錯誤（例如寫檔失敗）另外寫入日誌。
func (s *Shell) writeErr(err error) {
	switch {
	case errors.Is(err, bank.ErrAlreadyExists):
		s.writeFail("Account already exists!")
	case errors.Is(err, bank.ErrNotFound):
		s.writeFail("Account not found!")
	case errors.Is(err, bank.ErrInsufficient):
		s.writeFail("Insufficient balance!")
	case errors.Is(err, bank.ErrBadAmount):
		s.writeFail("Invalid amount! Please enter a valid number.")
	default:
		s.logger.Error("operation failed", zap.Error(err))
		s.writeFail("Could not save accounts: " + err.Error())
	}
}

// money 以設定的貨幣符號格式化金額，僅供顯示。
func (s *Shell) money(d decimal.Decimal) string {
	return s.currency + d.String()
}

var upper = cases.Upper(language.Und)

// displayName 只將正規化後名稱的第一個字元轉為大寫（"mary jane" → "Mary jane"）；
// 名稱已 case folding，其餘字元維持小寫。
func displayName(holder string) string {
	_, size := utf8.DecodeRuneInString(holder)
	return upper.String(holder[:size]) + holder[size:]
}
