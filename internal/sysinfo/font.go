package sysinfo

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// TerminalFont returns the font configured in the terminal emulator,
// found by parsing its config file. Detected once per process; the
// answer only steers glyph choices, so "unknown" is always acceptable.
func TerminalFont() string {
	fontOnce.Do(func() { fontName = detectFont() })
	return fontName
}

var (
	fontOnce sync.Once
	fontName string
)

// IsNerdFont reports whether a font name advertises nerd-font glyphs.
// Name matching is not airtight, but a false negative only costs the
// fancy bar while a false positive would garble the output.
func IsNerdFont(font string) bool {
	return strings.Contains(font, "NF") || strings.Contains(font, "Nerd Font")
}

func usesNerdFont() bool {
	return IsNerdFont(TerminalFont())
}

// detectFont asks the detected terminal's config first, then sweeps the
// other known configs.
func detectFont() string {
	parsers := []struct {
		terminal string
		probe    func() string
	}{
		{"kitty", fontFromKitty},
		{"alacritty", fontFromAlacritty},
		{"foot", fontFromFoot},
		{"ghostty", fontFromGhostty},
		{"konsole", fontFromKonsole},
		{"gnome terminal", fontFromGnomeTerminal},
	}

	term := strings.ToLower(Terminal())
	for _, p := range parsers {
		if p.terminal == term {
			if font := p.probe(); font != "" {
				return font
			}
			break
		}
	}

	for _, p := range parsers {
		if font := p.probe(); font != "" {
			return font
		}
	}

	return unknown
}

func readConfig(rel string) (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	data, err := os.ReadFile(filepath.Join(home, rel))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// fontFromKitty parses ~/.config/kitty/kitty.conf: "font_family Name".
func fontFromKitty() string {
	content, ok := readConfig(".config/kitty/kitty.conf")
	if !ok {
		return ""
	}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if name, found := strings.CutPrefix(line, "font_family"); found {
			if name = strings.TrimSpace(name); name != "" {
				return cleanFontName(name)
			}
		}
	}
	return ""
}

// fontFromAlacritty reads the TOML config, falling back to the legacy
// YAML one.
func fontFromAlacritty() string {
	if content, ok := readConfig(".config/alacritty/alacritty.toml"); ok {
		if font := parseAlacrittyTOML(content); font != "" {
			return font
		}
	}
	if content, ok := readConfig(".config/alacritty/alacritty.yml"); ok {
		if font := parseAlacrittyYAML(content); font != "" {
			return font
		}
	}
	return ""
}

func parseAlacrittyTOML(content string) string {
	var conf struct {
		Font struct {
			Family string `toml:"family"`
			Normal struct {
				Family string `toml:"family"`
			} `toml:"normal"`
		} `toml:"font"`
	}
	if err := toml.Unmarshal([]byte(content), &conf); err != nil {
		return ""
	}
	if conf.Font.Normal.Family != "" {
		return cleanFontName(conf.Font.Normal.Family)
	}
	if conf.Font.Family != "" {
		return cleanFontName(conf.Font.Family)
	}
	return ""
}

// parseAlacrittyYAML scans for the font: / normal: / family: ladder. A
// three-state walk covers the one shape alacritty ever wrote; pulling in
// a YAML dependency for it would be overkill.
func parseAlacrittyYAML(content string) string {
	inFont, inNormal := false, false

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		if strings.HasPrefix(line, "font:") {
			inFont = true
			continue
		}
		if inFont && line != "" && !strings.HasPrefix(line, " ") {
			inFont, inNormal = false, false
		}

		if inFont && strings.Contains(line, "normal:") {
			inNormal = true
			continue
		}
		if inFont && inNormal && strings.Contains(line, "family:") {
			_, value, _ := strings.Cut(line, ":")
			if name := strings.Trim(strings.TrimSpace(value), `"'`); name != "" {
				return cleanFontName(name)
			}
		}
	}
	return ""
}

// fontFromFoot parses ~/.config/foot/foot.ini: "font=Name:size=12".
func fontFromFoot() string {
	content, ok := readConfig(".config/foot/foot.ini")
	if !ok {
		return ""
	}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if name, found := strings.CutPrefix(line, "font="); found {
			name, _, _ = strings.Cut(name, ":")
			if name != "" {
				return cleanFontName(name)
			}
		}
	}
	return ""
}

// fontFromGhostty parses ~/.config/ghostty/config: "font-family = Name".
func fontFromGhostty() string {
	content, ok := readConfig(".config/ghostty/config")
	if !ok {
		return ""
	}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if name, found := strings.CutPrefix(line, "font-family"); found {
			name = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(name), "="))
			if name != "" {
				return cleanFontName(name)
			}
		}
	}
	return ""
}

// fontFromKonsole scans ~/.local/share/konsole/*.profile for
// "Font=Name,12,...".
func fontFromKonsole() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, ".local", "share", "konsole")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".profile" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		for _, line := range strings.Split(string(data), "\n") {
			if name, found := strings.CutPrefix(line, "Font="); found {
				name, _, _ = strings.Cut(name, ",")
				if name != "" {
					return cleanFontName(name)
				}
			}
		}
	}
	return ""
}

// fontFromGnomeTerminal asks dconf for the profile font, falling back to
// the system monospace font GNOME Terminal defaults to.
func fontFromGnomeTerminal() string {
	if out, err := exec.Command("dconf", "dump", "/org/gnome/terminal/legacy/profiles:/").Output(); err == nil {
		for _, line := range strings.Split(string(out), "\n") {
			line = strings.TrimSpace(line)
			if name, found := strings.CutPrefix(line, "font="); found {
				if name = stripFontSize(strings.Trim(name, "'")); name != "" {
					return cleanFontName(name)
				}
			}
		}
	}

	out, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "monospace-font-name").Output()
	if err != nil {
		return ""
	}
	if name := stripFontSize(strings.Trim(strings.TrimSpace(string(out)), "'")); name != "" {
		return cleanFontName(name)
	}
	return ""
}

// stripFontSize drops the trailing point size of "Name Size" values.
func stripFontSize(font string) string {
	if i := strings.LastIndexByte(font, ' '); i >= 0 {
		return font[:i]
	}
	return font
}

var fontStyleSuffixes = []string{
	" Regular", " Medium", " Bold", " Italic", " Light",
	" Thin", " SemiBold", " ExtraBold", " Black",
}

// cleanFontName resolves generic aliases and strips one trailing style
// suffix.
func cleanFontName(font string) string {
	font = resolveFontAlias(strings.TrimSpace(font))

	for _, suffix := range fontStyleSuffixes {
		if trimmed, found := strings.CutSuffix(font, suffix); found {
			return trimmed
		}
	}
	return font
}

// resolveFontAlias maps generic names like "monospace" to the real font
// via fc-match.
func resolveFontAlias(font string) string {
	switch strings.ToLower(font) {
	case "monospace", "sans-serif", "serif", "mono", "system-ui":
	default:
		return font
	}

	out, err := exec.Command("fc-match", font, "-f", "%{family}").Output()
	if err != nil {
		return font
	}
	if resolved := strings.TrimSpace(string(out)); resolved != "" {
		return resolved
	}
	return font
}
