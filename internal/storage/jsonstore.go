// internal/storage/jsonstore.go
//
// 提供 JSON 快照 (Snapshot) 的序列化與反序列化實作。
// 寫入時先寫 .tmp 檔，再以 rename() 取代原檔；
// 本系統不保證中途崩潰時的完整性，此作法僅縮小檔案損壞的時間窗。
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadSnapshot 讀取指定路徑的 JSON 快照。
// 檔案不存在時回傳空快照與 nil（以空銀行啟動）；
// 格式錯誤時回傳錯誤給上層。
func LoadSnapshot(path string) (Snapshot, error) {
	snap := Snapshot{}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return snap, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return snap, nil
}

// SaveSnapshot 將 Snapshot 以縮排 JSON 整份覆寫至 path。
// 流程：寫入 path+".tmp" → 關閉 → os.Rename() 取代正式檔案。
func SaveSnapshot(path string, snap Snapshot) error {
	if snap == nil {
		snap = Snapshot{}
	}
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	// 使用縮排格式輸出，方便人類閱讀或手動檢視
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
