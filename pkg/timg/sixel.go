package timg

import (
	"fmt"
	"io"
	"os/exec"
)

// sixel Sixelプロトコルの実装。エンコードは外部コマンドに任せる。
type sixel struct{}

func (s *sixel) Type() Type {
	return TypeSixel
}

func (s *sixel) Name() string {
	return "Sixel"
}

// セルサイズからピクセルサイズへの換算 (8x16セルを想定)
const (
	sixelCellWidthPx  = 8
	sixelCellHeightPx = 16
)

func (s *sixel) Display(w io.Writer, imagePath string, widthCells, heightCells int) error {
	encoder, args := sixelEncoderCommand(imagePath, widthCells*sixelCellWidthPx, heightCells*sixelCellHeightPx)
	if encoder == "" {
		return fmt.Errorf("no sixel encoder found (install ImageMagick or img2sixel)")
	}

	cmd := exec.Command(encoder, args...)
	output, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("failed to convert to sixel: %w", err)
	}

	_, err = w.Write(output)
	return err
}

// sixelEncoderCommand 利用可能なSixel変換コマンドと引数を返す
func sixelEncoderCommand(imagePath string, widthPx, heightPx int) (string, []string) {
	if _, err := exec.LookPath("convert"); err == nil {
		args := []string{imagePath}
		if widthPx > 0 && heightPx > 0 {
			args = append(args, "-geometry", fmt.Sprintf("%dx%d!", widthPx, heightPx))
		}
		return "convert", append(args, "sixel:-")
	}

	if _, err := exec.LookPath("img2sixel"); err == nil {
		var args []string
		if widthPx > 0 && heightPx > 0 {
			args = append(args, "-w", fmt.Sprintf("%d", widthPx), "-h", fmt.Sprintf("%d", heightPx))
		}
		return "img2sixel", append(args, imagePath)
	}

	return "", nil
}
