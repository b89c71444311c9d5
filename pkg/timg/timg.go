// Package timg renders raster images inline in the terminal through the
// graphics protocol the terminal supports (Kitty, iTerm2, Sixel).
//
// プロトコルはカーソル位置に画像を描画する。呼び出し側がカーソルを
// 目的のセルへ移動してから Display を呼ぶこと。
package timg

import "io"

type Type int

const (
	TypeNone Type = iota
	TypeKitty
	TypeITerm2
	TypeSixel
)

// Protocol 端末グラフィックプロトコルのベースインターフェース。
// Display writes the full protocol framing for one image to w, declaring
// the given cell box; the terminal scales the pixels into it.
type Protocol interface {
	Type() Type
	Name() string
	Display(w io.Writer, imagePath string, widthCells, heightCells int) error
}

// New 指定プロトコルのインスタンスを作成
func New(protoType Type) Protocol {
	switch protoType {
	case TypeKitty:
		return &kitty{}
	case TypeITerm2:
		return &iterm2{}
	case TypeSixel:
		return &sixel{}
	default:
		return nil
	}
}
