package timg

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

// kitty Kitty Graphics Protocolの実装
type kitty struct{}

func (k *kitty) Type() Type {
	return TypeKitty
}

func (k *kitty) Name() string {
	return "Kitty Graphics Protocol"
}

// kittyChunkSize Kittyプロトコルが許容する1フレームあたりの最大ペイロード
// (base64エンコード後のバイト数)。
const kittyChunkSize = 4096

// Display transmits the image in bounded chunks (m=1 continuation frames,
// m=0 terminator) so payloads never exceed the protocol limit. The c=/r=
// parameters pin the displayed size to the requested cell box.
func (k *kitty) Display(w io.Writer, imagePath string, widthCells, heightCells int) error {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(data)

	cmd := "f=100,a=T"
	if widthCells > 0 && heightCells > 0 {
		cmd += fmt.Sprintf(",c=%d,r=%d", widthCells, heightCells)
	}

	if len(encoded) <= kittyChunkSize {
		_, err = fmt.Fprintf(w, "\x1b_G%s;%s\x1b\\", cmd, encoded)
		return err
	}

	// チャンク転送: 最初のフレームに全パラメータを含める
	first := true
	for len(encoded) > 0 {
		n := kittyChunkSize
		if n > len(encoded) {
			n = len(encoded)
		}
		chunk := encoded[:n]
		encoded = encoded[n:]

		more := 1
		if len(encoded) == 0 {
			more = 0
		}

		if first {
			_, err = fmt.Fprintf(w, "\x1b_G%s,m=%d;%s\x1b\\", cmd, more, chunk)
			first = false
		} else {
			_, err = fmt.Fprintf(w, "\x1b_Gm=%d;%s\x1b\\", more, chunk)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
