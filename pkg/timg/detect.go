package timg

import (
	"os"
	"strings"
)

// Auto 利用可能な最適なグラフィックプロトコルを自動検出する。
// 何も検出できなければ nil を返す。
func Auto() Protocol {
	term, termProgram := termEnv()

	// Kittyを優先的にチェック（最も機能が豊富）
	if supportsKitty(term, termProgram) {
		return New(TypeKitty)
	}

	if strings.Contains(termProgram, "iterm") || os.Getenv("ITERM_SESSION_ID") != "" {
		return New(TypeITerm2)
	}

	if supportsSixel(term, termProgram) {
		return New(TypeSixel)
	}

	return nil
}

func termEnv() (term, termProgram string) {
	return os.Getenv("TERM"), strings.ToLower(os.Getenv("TERM_PROGRAM"))
}

func supportsKitty(term, termProgram string) bool {
	// tmux内ではグラフィックスパススルーが保証されないため無効化
	if os.Getenv("TMUX") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}

	kittyTerminals := []string{"kitty", "wezterm", "ghostty"}
	for _, supported := range kittyTerminals {
		if strings.Contains(term, supported) || strings.Contains(termProgram, supported) {
			return true
		}
	}

	return false
}

func supportsSixel(term, termProgram string) bool {
	sixelTerminals := []string{
		"xterm", "mlterm", "yaft", "rlogin", "wezterm",
		"foot", "contour", "mintty",
	}

	supported := false
	for _, st := range sixelTerminals {
		if strings.Contains(term, st) || strings.Contains(termProgram, st) {
			supported = true
			break
		}
	}
	if !supported {
		return false
	}

	// エンコーダがなければSixelは使えない
	cmd, _ := sixelEncoderCommand("", 0, 0)
	return cmd != ""
}
