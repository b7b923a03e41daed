// internal/storage/jsonstore_test.go
//
// 測試目標：驗證 JSON 快照的序列化與反序列化。
//  1. SaveSnapshot() 寫出縮排 JSON，balance 為 JSON number。
//  2. LoadSnapshot() 完整讀回資料。
//  3. 檔案不存在時回傳空快照；格式錯誤時回傳錯誤。
//  4. 使用 t.TempDir() 確保測試不汙染本機環境。
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestJSONSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accounts.json")

	orig := Snapshot{
		"alice": {
			Balance:      decimal.RequireFromString("150.5"),
			Transactions: []string{"Account created with balance: 100", "Deposited: 50.5"},
		},
		"bob": {
			Balance:      decimal.RequireFromString("0"),
			Transactions: []string{"Account created with balance: 0"},
		},
	}

	// 1️⃣ 寫入 JSON 檔案
	if err := SaveSnapshot(path, orig); err != nil {
		t.Fatalf("SaveSnapshot err=%v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file should be renamed away, stat err=%v", err)
	}

	// 2️⃣ 重新載入
	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot err=%v", err)
	}

	// 3️⃣ 驗證內容一致
	if len(loaded) != len(orig) {
		t.Fatalf("accounts=%d want=%d", len(loaded), len(orig))
	}
	for name, want := range orig {
		got, ok := loaded[name]
		if !ok {
			t.Fatalf("missing account %q", name)
		}
		if !got.Balance.Equal(want.Balance) {
			t.Fatalf("%s balance=%s want=%s", name, got.Balance, want.Balance)
		}
		if !reflect.DeepEqual(got.Transactions, want.Transactions) {
			t.Fatalf("%s transactions=%q want=%q", name, got.Transactions, want.Transactions)
		}
	}
}

// TestSnapshotFileFormat 驗證檔案格式：縮排、名稱為 key、balance 為數字。
func TestSnapshotFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	snap := Snapshot{"alice": {
		Balance:      decimal.RequireFromString("100"),
		Transactions: []string{"Account created with balance: 100"},
	}}
	if err := SaveSnapshot(path, snap); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "\n  \"alice\": {") {
		t.Fatalf("expected indented output, got:\n%s", raw)
	}

	var generic map[string]map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatal(err)
	}
	if bal, ok := generic["alice"]["balance"].(float64); !ok || bal != 100 {
		t.Fatalf("balance should be a JSON number, got %#v", generic["alice"]["balance"])
	}
	if _, ok := generic["alice"]["transactions"].([]any); !ok {
		t.Fatalf("transactions should be a list, got %#v", generic["alice"]["transactions"])
	}
}

// TestLoadMissingFile 驗證檔案不存在時以空快照啟動。
func TestLoadMissingFile(t *testing.T) {
	snap, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if len(snap) != 0 {
		t.Fatalf("want empty snapshot, got %v", snap)
	}
}

// TestLoadMalformedFile 驗證格式錯誤的檔案回傳錯誤。
func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(path); err == nil {
		t.Fatal("expected decode error")
	}
}

// TestLoadLegacyQuotedBalance 驗證 balance 為字串時也能讀入。
func TestLoadLegacyQuotedBalance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	body := `{"alice": {"balance": "42.5", "transactions": []}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	snap, err := LoadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}
	if !snap["alice"].Balance.Equal(decimal.RequireFromString("42.5")) {
		t.Fatalf("balance=%s want=42.5", snap["alice"].Balance)
	}
}

// TestBalanceEncodingIsLocal 驗證 balance 的數字格式只作用於 PersistAccount，
// 其他地方序列化 decimal 仍維持函式庫預設（加引號的字串）。
func TestBalanceEncodingIsLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	snap := Snapshot{"alice": {Balance: decimal.RequireFromString("-12.5")}}
	if err := SaveSnapshot(path, snap); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"balance": -12.5`) {
		t.Fatalf("balance should be a bare number:\n%s", raw)
	}

	if decimal.MarshalJSONWithoutQuotes {
		t.Fatal("decimal.MarshalJSONWithoutQuotes must not be changed")
	}
	plain, err := json.Marshal(decimal.RequireFromString("1.5"))
	if err != nil {
		t.Fatal(err)
	}
	if string(plain) != `"1.5"` {
		t.Fatalf("plain decimal=%s want quoted", plain)
	}
}
