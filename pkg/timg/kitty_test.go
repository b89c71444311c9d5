package timg

import (
	"bytes"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeImageFile(t *testing.T, size int) string {
	t.Helper()
	data := make([]byte, size)
	if _, err := rand.Read(data); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "img.png")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// kittyFrames splits the output into the APC frames of the graphics
// protocol, stripped of their delimiters.
func kittyFrames(t *testing.T, out string) []string {
	t.Helper()
	var frames []string
	for _, part := range strings.Split(out, "\x1b\\") {
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, "\x1b_G") {
			t.Fatalf("frame does not start with the APC introducer: %q", part[:min(20, len(part))])
		}
		frames = append(frames, strings.TrimPrefix(part, "\x1b_G"))
	}
	return frames
}

func framePayload(frame string) string {
	_, payload, _ := strings.Cut(frame, ";")
	return payload
}

func TestKittySingleFrame(t *testing.T) {
	// 3000 raw bytes base64 to 4000, inside the single-frame limit.
	path := writeImageFile(t, 3000)

	var buf bytes.Buffer
	if err := (&kitty{}).Display(&buf, path, 24, 12); err != nil {
		t.Fatalf("Display: %v", err)
	}

	frames := kittyFrames(t, buf.String())
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	for _, param := range []string{"f=100", "a=T", "c=24", "r=12"} {
		if !strings.Contains(frames[0], param) {
			t.Errorf("frame missing %s: %q", param, frames[0][:40])
		}
	}
	if strings.Contains(frames[0], "m=") {
		t.Errorf("single frame carries a continuation flag")
	}
}

func TestKittyChunkedTransfer(t *testing.T) {
	// 64KiB raw forces many continuation frames.
	path := writeImageFile(t, 64*1024)

	var buf bytes.Buffer
	if err := (&kitty{}).Display(&buf, path, 40, 20); err != nil {
		t.Fatalf("Display: %v", err)
	}

	frames := kittyFrames(t, buf.String())
	if len(frames) < 2 {
		t.Fatalf("got %d frames, want a chunked transfer", len(frames))
	}

	for i, frame := range frames {
		if got := len(framePayload(frame)); got > kittyChunkSize {
			t.Errorf("frame %d payload is %d bytes, limit %d", i, got, kittyChunkSize)
		}

		last := i == len(frames)-1
		wantMore := "m=1"
		if last {
			wantMore = "m=0"
		}
		if !strings.Contains(frame, wantMore) {
			t.Errorf("frame %d missing %s", i, wantMore)
		}

		// Only the first frame declares the transfer parameters.
		hasParams := strings.Contains(frame, "a=T")
		if hasParams != (i == 0) {
			t.Errorf("frame %d transfer params present=%v", i, hasParams)
		}
	}

	if !strings.Contains(frames[0], "c=40") || !strings.Contains(frames[0], "r=20") {
		t.Errorf("first frame missing the cell box: %q", frames[0][:40])
	}
}

func TestKittyMissingFile(t *testing.T) {
	err := (&kitty{}).Display(&bytes.Buffer{}, "/nonexistent/img.png", 10, 5)
	if err == nil {
		t.Fatal("Display on a missing file returned nil error")
	}
}

func TestITerm2Frame(t *testing.T) {
	path := writeImageFile(t, 1000)

	var buf bytes.Buffer
	if err := (&iterm2{}).Display(&buf, path, 30, 15); err != nil {
		t.Fatalf("Display: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\x1b]1337;File=") {
		t.Errorf("output does not start with the OSC 1337 header")
	}
	if !strings.HasSuffix(out, "\a") {
		t.Errorf("output does not end with BEL")
	}
	for _, param := range []string{"inline=1", "width=30", "height=15"} {
		if !strings.Contains(out, param) {
			t.Errorf("output missing %s", param)
		}
	}
}
