package sysinfo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeHomeConfig(t *testing.T, rel, content string) {
	t.Helper()
	home := os.Getenv("HOME")
	path := filepath.Join(home, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestIsNerdFont(t *testing.T) {
	tests := []struct {
		font string
		want bool
	}{
		{"JetBrainsMono Nerd Font", true},
		{"FiraCode NF", true},
		{"JetBrains Mono", false},
		{"Hack", false},
		{"unknown", false},
	}
	for _, tt := range tests {
		if got := IsNerdFont(tt.font); got != tt.want {
			t.Errorf("IsNerdFont(%q) = %v, want %v", tt.font, got, tt.want)
		}
	}
}

func TestCleanFontName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"JetBrains Mono Regular", "JetBrains Mono"},
		{"Fira Code SemiBold", "Fira Code"},
		{"  Hack  ", "Hack"},
		{"Iosevka", "Iosevka"},
	}
	for _, tt := range tests {
		if got := cleanFontName(tt.in); got != tt.want {
			t.Errorf("cleanFontName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFontFromKitty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	writeHomeConfig(t, ".config/kitty/kitty.conf", `
# font_family Commented Out
font_size 12.0
font_family JetBrainsMono Nerd Font
`)
	if got := fontFromKitty(); got != "JetBrainsMono Nerd Font" {
		t.Errorf("fontFromKitty() = %q", got)
	}
}

func TestFontFromFoot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	writeHomeConfig(t, ".config/foot/foot.ini", `
[main]
font=Fira Code:size=11
`)
	if got := fontFromFoot(); got != "Fira Code" {
		t.Errorf("fontFromFoot() = %q", got)
	}
}

func TestFontFromGhostty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	writeHomeConfig(t, ".config/ghostty/config", `
font-size = 13
font-family = Iosevka Term
`)
	if got := fontFromGhostty(); got != "Iosevka Term" {
		t.Errorf("fontFromGhostty() = %q", got)
	}
}

func TestFontFromKonsole(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	writeHomeConfig(t, ".local/share/konsole/Main.profile", `
[Appearance]
Font=Hack Nerd Font,12,-1,5,50,0,0,0,0,0
`)
	if got := fontFromKonsole(); got != "Hack Nerd Font" {
		t.Errorf("fontFromKonsole() = %q", got)
	}
}

func TestParseAlacrittyTOML(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			"font.normal",
			"[font.normal]\nfamily = \"JetBrainsMono Nerd Font\"\n",
			"JetBrainsMono Nerd Font",
		},
		{
			"font table family",
			"[font]\nfamily = \"Fira Code\"\n",
			"Fira Code",
		},
		{
			"no font section",
			"[window]\nopacity = 0.9\n",
			"",
		},
		{
			"not toml",
			"::nope::",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseAlacrittyTOML(tt.content); got != tt.want {
				t.Errorf("parseAlacrittyTOML = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseAlacrittyYAML(t *testing.T) {
	content := `
window:
  opacity: 0.9
font:
  normal:
    family: "Hack Nerd Font"
    style: Regular
`
	if got := parseAlacrittyYAML(content); got != "Hack Nerd Font" {
		t.Errorf("parseAlacrittyYAML = %q", got)
	}

	// family outside the font block must not match.
	if got := parseAlacrittyYAML("other:\n  normal:\n    family: Nope\n"); got != "" {
		t.Errorf("parseAlacrittyYAML matched outside font block: %q", got)
	}
}

func TestDetectFontFallsBackToUnknown(t *testing.T) {
	// Empty home: no terminal config anywhere.
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TERM", "dumb")
	t.Setenv("TERM_PROGRAM", "")
	t.Setenv("KITTY_PID", "")
	t.Setenv("KONSOLE_VERSION", "")
	t.Setenv("GNOME_TERMINAL_SCREEN", "")

	// A machine-wide font may still answer through gsettings; the
	// contract is only that detection never comes back empty.
	if got := detectFont(); got == "" {
		t.Errorf("detectFont() = %q, want a non-empty fallback", got)
	}
}
