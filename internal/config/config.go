package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/haryoiro/slowfetch/internal/structures"
	"github.com/pelletier/go-toml/v2"
)

var hexColor = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// Load loads the configuration from a TOML file. Any error (missing file,
// bad TOML) is returned so the caller can log it and fall back to Default;
// a config problem never stops the run.
func Load(path string) (structures.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), err
	}

	var fc structures.FileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Default(), err
	}

	return resolve(fc), nil
}

// Save writes the default config template to a TOML file so users have
// something to edit on first run.
func Save(path string) error {
	fc := structures.FileConfig{
		OSArt:  false,
		Colors: defaultColors(),
	}

	data, err := toml.Marshal(fc)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Default returns the built-in configuration: no OS art, glyph logo,
// Dracula theme colors with a rainbow art palette.
func Default() structures.Config {
	return structures.Config{
		OSArt:  structures.OSArtSetting{Mode: structures.OSArtDisabled},
		Colors: defaultColors().Palette(),
	}
}

func defaultColors() structures.ColorConfig {
	return structures.ColorConfig{
		// Dracula-inspired theme colors
		Border: "#FF79C6",
		Title:  "#FF79C6",
		Key:    "#BD93F9",
		Value:  "#8BE9FD",
		// Rainbow spectrum for art indices 1-9
		Art1: "#FF0000",
		Art2: "#FF8000",
		Art3: "#FFFF00",
		Art4: "#00FF00",
		Art5: "#00FFFF",
		Art6: "#00BFFF",
		Art7: "#5555FF",
		Art8: "#AA55FF",
		Art9: "#FF55FF",
	}
}

// resolve turns the raw file schema into a usable Config, filling in
// defaults for anything missing or malformed.
func resolve(fc structures.FileConfig) structures.Config {
	cfg := Default()

	switch v := fc.OSArt.(type) {
	case bool:
		if v {
			cfg.OSArt = structures.OSArtSetting{Mode: structures.OSArtAuto}
		}
	case string:
		if v != "" {
			cfg.OSArt = structures.OSArtSetting{Mode: structures.OSArtSpecific, Name: v}
		}
	}

	cfg.CustomArt = expandHome(fc.CustomArt)
	cfg.Image = fc.Image
	cfg.ImagePath = expandHome(fc.ImagePath)

	cfg.Colors = mergeColors(cfg.Colors, fc.Colors)

	return cfg
}

// mergeColors overlays valid hex values from the file onto the defaults.
// Invalid colors are silently kept at their default.
func mergeColors(base structures.Palette, c structures.ColorConfig) structures.Palette {
	set := func(dst *string, v string) {
		if hexColor.MatchString(strings.TrimSpace(v)) {
			*dst = normalizeHex(v)
		}
	}

	set(&base.Border, c.Border)
	set(&base.Title, c.Title)
	set(&base.Key, c.Key)
	set(&base.Value, c.Value)
	for i, v := range []string{
		c.Art1, c.Art2, c.Art3, c.Art4, c.Art5, c.Art6, c.Art7, c.Art8, c.Art9,
	} {
		set(&base.Art[i+1], v)
	}

	return base
}

func normalizeHex(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	return strings.ToUpper(v)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}
