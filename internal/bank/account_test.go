// internal/bank/account_test.go
//
// Account 單一帳戶規則的表格測試。
// 重點為提款的檢查順序：先檢查餘額，再檢查金額正負。

package bank

import (
	"errors"
	"testing"
)

func TestAccountDeposit(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
		wantBal string
		wantLen int
	}{
		{"positive", "50", nil, "150", 2},
		{"fraction", "0.1", nil, "100.1", 2},
		{"zero", "0", ErrBadAmount, "100", 1},
		{"negative", "-5", ErrBadAmount, "100", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newAccount("alice", d(t, "100"))
			err := a.Deposit(d(t, tc.amount))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err=%v want=%v", err, tc.wantErr)
			}
			if !a.Balance.Equal(d(t, tc.wantBal)) {
				t.Fatalf("balance=%s want=%s", a.Balance, tc.wantBal)
			}
			if len(a.History) != tc.wantLen {
				t.Fatalf("history len=%d want=%d", len(a.History), tc.wantLen)
			}
		})
	}
}

func TestAccountWithdraw(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		wantErr error
		wantBal string
	}{
		{"partial", "100", "30", nil, "70"},
		{"exact", "100", "100", nil, "0"},
		{"over balance", "100", "100.01", ErrInsufficient, "100"},
		{"zero", "100", "0", ErrBadAmount, "100"},
		{"negative", "100", "-1", ErrBadAmount, "100"},
		// 餘額為負時，非正數金額也可能「大於餘額」：應回報餘額不足。
		{"negative exceeds negative balance", "-10", "-5", ErrInsufficient, "-10"},
		{"zero exceeds negative balance", "-10", "0", ErrInsufficient, "-10"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newAccount("alice", d(t, tc.balance))
			err := a.Withdraw(d(t, tc.amount))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err=%v want=%v", err, tc.wantErr)
			}
			if !a.Balance.Equal(d(t, tc.wantBal)) {
				t.Fatalf("balance=%s want=%s", a.Balance, tc.wantBal)
			}
			if tc.wantErr == nil && a.History[len(a.History)-1] != "Withdrawn: "+tc.amount {
				t.Fatalf("last record=%q", a.History[len(a.History)-1])
			}
			if tc.wantErr != nil && len(a.History) != 1 {
				t.Fatalf("rejected withdraw should not log, got %q", a.History)
			}
		})
	}
}

func TestAccountDisplayBalanceAndTransactions(t *testing.T) {
	a := newAccount("alice", d(t, "12.5"))
	holder, bal := a.DisplayBalance()
	if holder != "alice" || !bal.Equal(d(t, "12.5")) {
		t.Fatalf("DisplayBalance=(%s,%s)", holder, bal)
	}

	tx := a.Transactions()
	tx[0] = "changed"
	if a.History[0] != "Account created with balance: 12.5" {
		t.Fatalf("Transactions must return a copy, history=%q", a.History)
	}
}
