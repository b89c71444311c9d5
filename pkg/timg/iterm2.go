package timg

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

// iterm2 iTerm2 Inline Imagesプロトコルの実装
type iterm2 struct{}

func (i *iterm2) Type() Type {
	return TypeITerm2
}

func (i *iterm2) Name() string {
	return "iTerm2 Inline Images"
}

func (i *iterm2) Display(w io.Writer, imagePath string, widthCells, heightCells int) error {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	params := "inline=1"
	if widthCells > 0 && heightCells > 0 {
		// セル単位のサイズ指定。preserveAspectRatio=0 でボックスに合わせる
		params += fmt.Sprintf(";width=%d;height=%d;preserveAspectRatio=0", widthCells, heightCells)
	}

	_, err = fmt.Fprintf(w, "\x1b]1337;File=%s:%s\a", params, base64.StdEncoding.EncodeToString(data))
	return err
}
