// internal/shell/menu.go
//
// 本檔負責選單註冊與主迴圈。
// 與 handler.go 分離：handler.go 定義「如何處理每個選項」，
// menu.go 定義「選項如何被導向」。
package shell

import (
	"errors"

	"go.uber.org/zap"
)

// menuItem 為單一選單項目；run 為 nil 代表離開。
type menuItem struct {
	key   string
	label string
	run   func(*Shell) error
}

// menu 採明確註冊（依顯示順序），避免反射式路由。
var menu = []menuItem{
	{"1", "Create Account", (*Shell).createAccount},
	{"2", "Deposit Money", (*Shell).deposit},
	{"3", "Withdraw Money", (*Shell).withdraw},
	{"4", "Check Balance", (*Shell).checkBalance},
	{"5", "Show Transaction History", (*Shell).showHistory},
	{"6", "Exit", nil},
}

const goodbye = "Thank you for using the Banking Information System. Goodbye!"

// Run 執行主迴圈直到使用者選擇 Exit 或輸入結束 (EOF)。
// 只有讀取輸入本身失敗時才回傳錯誤。
func (s *Shell) Run() error {
	for {
		s.printMenu()
		choice, err := s.prompt("Enter your choice: ")
		if errors.Is(err, errEOF) {
			s.writeOK(goodbye)
			return nil
		}
		if err != nil {
			return err
		}

		item, ok := lookup(choice)
		if !ok {
			s.writeFail("Invalid choice! Please try again.")
			continue
		}
		if item.run == nil {
			s.writeOK(goodbye)
			return nil
		}

		s.logger.Debug("menu selected", zap.String("choice", item.label))
		if err := item.run(s); err != nil {
			if errors.Is(err, errEOF) {
				s.writeOK(goodbye)
				return nil
			}
			return err
		}
	}
}

func (s *Shell) printMenu() {
	s.printf("\n")
	for _, it := range menu {
		s.printf("%s. %s\n", it.key, it.label)
	}
}

func lookup(choice string) (menuItem, bool) {
	for _, it := range menu {
		if it.key == choice {
			return it, true
		}
	}
	return menuItem{}, false
}
