// internal/shell/handler.go
//
// Package shell
// ─────────────────────────────────────────────
// 提供互動式主控台介面，作為 ledger 的應用層 (Application Layer)。
// 每個 handler 僅負責：
//  1. 提示並讀取使用者輸入
//  2. 呼叫 ledger 執行操作（持久化由 ledger 負責）
//  3. 輸出結果或錯誤訊息
package shell

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"bankinfo/internal/bank"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ledger 為 shell 所需的帳戶操作。
type Ledger interface {
	CreateAccount(holder, amount string) (*bank.Account, error)
	FindAccount(holder string) (*bank.Account, error)
	DepositMoney(holder, amount string) (*bank.Account, error)
	WithdrawMoney(holder, amount string) (*bank.Account, error)
	CheckBalance(holder string) (string, decimal.Decimal, error)
	ShowTransactionHistory(holder string) ([]string, error)
}

// Shell 為主控台核心結構：
// - ledger：注入帳戶操作層。
// - in / out：輸入與輸出，測試時可替換為 bytes.Buffer。
// - currency：顯示金額時的貨幣符號，只影響呈現。
type Shell struct {
	ledger   Ledger
	in       *bufio.Reader
	out      io.Writer
	currency string
	logger   *zap.Logger
}

// NewShell 建立新的主控台。logger 可為 nil。
func NewShell(l Ledger, in io.Reader, out io.Writer, currency string, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		ledger:   l,
		in:       bufio.NewReader(in),
		out:      out,
		currency: currency,
		logger:   logger,
	}
}

// errEOF 代表輸入已結束，主迴圈視同選擇 Exit。
var errEOF = errors.New("end of input")

// prompt 輸出提示並讀取一行（去除前後空白）。
// 使用 ReadString 而非 bufio.Scanner：單行長度不設上限，超長輸入只影響當次操作。
// 最後一行沒有換行符號時照常回傳，下一次讀取才回報 errEOF。
func (s *Shell) prompt(label string) (string, error) {
	s.printf("%s", label)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", errEOF
		}
	}
	return strings.TrimSpace(line), nil
}

// createAccount：名稱 → 初始金額 → 開戶。
// 名稱重複時不再詢問金額。
func (s *Shell) createAccount() error {
	name, err := s.prompt("Enter Account Holder Name: ")
	if err != nil {
		return err
	}
	if s.exists(name) {
		s.writeErr(bank.ErrAlreadyExists)
		return nil
	}
	amount, err := s.prompt("Enter Initial Deposit Amount: ")
	if err != nil {
		return err
	}
	a, err := s.ledger.CreateAccount(name, amount)
	if err != nil {
		s.writeErr(err)
		return nil
	}
	s.writeOK("Account created successfully for %s", displayName(a.Holder))
	return nil
}

// deposit：名稱 → 確認帳戶存在 → 金額 → 存款。
func (s *Shell) deposit() error {
	name, ok, err := s.findAccount()
	if err != nil || !ok {
		return err
	}
	amount, err := s.prompt("Enter Deposit Amount: ")
	if err != nil {
		return err
	}
	amt, _ := bank.ParseAmount(amount)
	if _, err := s.ledger.DepositMoney(name, amount); err != nil {
		if errors.Is(err, bank.ErrBadAmount) && isNumeric(amount) {
			s.writeFail("Invalid deposit amount!")
			return nil
		}
		s.writeErr(err)
		return nil
	}
	s.writeOK("Successfully deposited %s", s.money(amt))
	return nil
}

// withdraw：名稱 → 確認帳戶存在 → 金額 → 提款。
func (s *Shell) withdraw() error {
	name, ok, err := s.findAccount()
	if err != nil || !ok {
		return err
	}
	amount, err := s.prompt("Enter Withdrawal Amount: ")
	if err != nil {
		return err
	}
	amt, _ := bank.ParseAmount(amount)
	if _, err := s.ledger.WithdrawMoney(name, amount); err != nil {
		if errors.Is(err, bank.ErrBadAmount) && isNumeric(amount) {
			s.writeFail("Invalid withdrawal amount!")
			return nil
		}
		s.writeErr(err)
		return nil
	}
	s.writeOK("Successfully withdrawn %s", s.money(amt))
	return nil
}

// checkBalance：顯示帳戶名稱與餘額。
func (s *Shell) checkBalance() error {
	name, err := s.prompt("Enter Account Holder Name: ")
	if err != nil {
		return err
	}
	holder, bal, err := s.ledger.CheckBalance(name)
	if err != nil {
		s.writeErr(err)
		return nil
	}
	s.printf("\nAccount Holder: %s\n", holder)
	s.printf("Balance: %s\n", s.money(bal))
	return nil
}

// showHistory：依序列出帳戶的交易紀錄。
func (s *Shell) showHistory() error {
	name, err := s.prompt("Enter Account Holder Name: ")
	if err != nil {
		return err
	}
	logs, err := s.ledger.ShowTransactionHistory(name)
	if err != nil {
		s.writeErr(err)
		return nil
	}
	s.printf("\nTransaction History for %s:\n", bank.Normalize(name))
	for _, line := range logs {
		s.printf("%s\n", line)
	}
	return nil
}

// findAccount 讀取名稱並確認帳戶存在；不存在時輸出訊息並回傳 ok=false。
func (s *Shell) findAccount() (string, bool, error) {
	name, err := s.prompt("Enter Account Holder Name: ")
	if err != nil {
		return "", false, err
	}
	if _, err := s.ledger.FindAccount(name); err != nil {
		s.writeErr(err)
		return "", false, nil
	}
	return name, true, nil
}

// exists 判斷帳戶是否已存在。
func (s *Shell) exists(name string) bool {
	_, err := s.ledger.FindAccount(name)
	return err == nil
}

// isNumeric 判斷輸入是否為可接受的數字（用於區分「格式錯誤」與「非正數」）。
func isNumeric(s string) bool {
	_, err := bank.ParseAmount(s)
	return err == nil
}
