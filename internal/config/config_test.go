package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/haryoiro/slowfetch/internal/structures"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if cfg != Default() {
		t.Errorf("fallback config differs from Default()")
	}
}

func TestLoadMalformedFileFallsBack(t *testing.T) {
	path := writeConfig(t, "os_art = [this is not toml")
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if cfg != Default() {
		t.Errorf("fallback config differs from Default()")
	}
}

func TestLoadOSArtVariants(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    structures.OSArtSetting
	}{
		{"absent", "", structures.OSArtSetting{Mode: structures.OSArtDisabled}},
		{"false", "os_art = false", structures.OSArtSetting{Mode: structures.OSArtDisabled}},
		{"true", "os_art = true", structures.OSArtSetting{Mode: structures.OSArtAuto}},
		{"named", `os_art = "arch"`, structures.OSArtSetting{Mode: structures.OSArtSpecific, Name: "arch"}},
		{"empty string", `os_art = ""`, structures.OSArtSetting{Mode: structures.OSArtDisabled}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.OSArt != tt.want {
				t.Errorf("OSArt = %+v, want %+v", cfg.OSArt, tt.want)
			}
		})
	}
}

func TestLoadColorsMergeAndValidate(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[colors]
key = "123456"
value = "purple"
art_3 = "#abCDef"
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Colors.Key != "#123456" {
		t.Errorf("Key = %q, want bare hex normalized to %q", cfg.Colors.Key, "#123456")
	}
	if want := Default().Colors.Value; cfg.Colors.Value != want {
		t.Errorf("Value = %q, want invalid color to keep default %q", cfg.Colors.Value, want)
	}
	if cfg.Colors.Art[3] != "#ABCDEF" {
		t.Errorf("Art[3] = %q, want %q", cfg.Colors.Art[3], "#ABCDEF")
	}
	if want := Default().Colors.Border; cfg.Colors.Border != want {
		t.Errorf("Border = %q, want untouched default %q", cfg.Colors.Border, want)
	}
}

func TestLoadImageSettings(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
image = true
image_path = "~/pics/shot.png"
custom_art = "/etc/art.txt"
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.Image {
		t.Error("Image = false, want true")
	}
	if filepath.IsAbs(cfg.ImagePath) == false {
		t.Errorf("ImagePath = %q, want ~ expanded to an absolute path", cfg.ImagePath)
	}
	if cfg.CustomArt != "/etc/art.txt" {
		t.Errorf("CustomArt = %q", cfg.CustomArt)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if cfg != Default() {
		t.Errorf("saved template does not load back as the defaults")
	}
}

func TestPaletteColorFallback(t *testing.T) {
	p := Default().Colors
	if got := p.Color(3); got != p.Art[3] {
		t.Errorf("Color(3) = %q, want %q", got, p.Art[3])
	}
	for _, index := range []int{0, -1, 42} {
		if got := p.Color(index); got != p.Value {
			t.Errorf("Color(%d) = %q, want fallback %q", index, got, p.Value)
		}
	}
}
