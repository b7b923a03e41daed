// Package bank 定義核心領域模型與業務規則。
// 本檔定義 Account（單一帳戶的餘額與交易紀錄），不含任何主控台或儲存細節。

package bank

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// 交易紀錄的固定前綴；金額以 decimal 的標準字串表示，不含貨幣符號。
const (
	createdPrefix   = "Account created with balance: "
	depositPrefix   = "Deposited: "
	withdrawnPrefix = "Withdrawn: "
)

// folder 為 Unicode case folding，比 strings.ToLower 更適合做識別碼比對。
var folder = cases.Fold()

// Account represents a bank account.
type Account struct {
	Holder  string          `json:"holder"`
	Balance decimal.Decimal `json:"balance"`
	History []string        `json:"transactions"`
}

// Normalize 將帳戶名稱去除前後空白並做 case folding，作為帳戶表的唯一鍵。
func Normalize(holder string) string {
	return folder.String(strings.TrimSpace(holder))
}

// CreatedRecord 回傳開戶時的第一筆交易紀錄。
func CreatedRecord(balance decimal.Decimal) string {
	return createdPrefix + balance.String()
}

// newAccount 建立帳戶，交易紀錄以開戶紀錄開頭。
func newAccount(holder string, balance decimal.Decimal) *Account {
	return &Account{
		Holder:  holder,
		Balance: balance,
		History: []string{CreatedRecord(balance)},
	}
}

// Deposit 存款：金額需 > 0，否則回傳 ErrBadAmount 且不改變任何狀態。
func (a *Account) Deposit(amt decimal.Decimal) error {
	if !amt.IsPositive() {
		return ErrBadAmount
	}
	a.Balance = a.Balance.Add(amt)
	a.History = append(a.History, depositPrefix+amt.String())
	return nil
}

// Withdraw 提款。檢查順序固定：先檢查餘額是否足夠，再檢查金額是否為正。
// 因此「非正數且大於餘額」的金額會得到 ErrInsufficient 而非 ErrBadAmount。
func (a *Account) Withdraw(amt decimal.Decimal) error {
	if amt.GreaterThan(a.Balance) {
		return ErrInsufficient
	}
	if !amt.IsPositive() {
		return ErrBadAmount
	}
	a.Balance = a.Balance.Sub(amt)
	a.History = append(a.History, withdrawnPrefix+amt.String())
	return nil
}

// DisplayBalance 回傳帳戶名稱與目前餘額（唯讀）。
func (a *Account) DisplayBalance() (string, decimal.Decimal) {
	return a.Holder, a.Balance
}

// Transactions 回傳交易紀錄的拷貝，避免外部修改內部切片。
func (a *Account) Transactions() []string {
	out := make([]string, len(a.History))
	copy(out, a.History)
	return out
}

// clone 回傳深拷貝（含交易紀錄切片）。
func (a *Account) clone() *Account {
	cp := *a
	cp.History = a.Transactions()
	return &cp
}
