package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/term"

	"github.com/haryoiro/slowfetch/internal/art"
	"github.com/haryoiro/slowfetch/internal/cache"
	"github.com/haryoiro/slowfetch/internal/config"
	"github.com/haryoiro/slowfetch/internal/layout"
	"github.com/haryoiro/slowfetch/internal/logger"
	"github.com/haryoiro/slowfetch/internal/render"
	"github.com/haryoiro/slowfetch/internal/structures"
	"github.com/haryoiro/slowfetch/internal/sysinfo"
	"github.com/haryoiro/slowfetch/internal/version"
	"github.com/haryoiro/slowfetch/pkg/timg"
)

// osArtFlag backs --os: bare form requests auto-detection from the
// collected OS fact, --os=name forces a specific logo.
type osArtFlag struct {
	set  bool
	name string
}

func (f *osArtFlag) String() string { return f.name }

func (f *osArtFlag) Set(v string) error {
	f.set = true
	if v != "true" {
		f.name = v
	}
	return nil
}

func (f *osArtFlag) IsBoolFlag() bool { return true }

func main() {
	var osArt osArtFlag
	flag.Var(&osArt, "os", "display OS-specific art; optionally --os=name to override detection")

	var (
		imagePath   = flag.String("i", "", "render a raster image instead of glyph art")
		refresh     = flag.Bool("refresh", false, "bypass the probe cache")
		debugMode   = flag.Bool("debug", false, "enable debug logging")
		showVersion = flag.Bool("version", false, "show version")
		showFiles   = flag.Bool("files", false, "show file locations")
	)
	flag.Parse()

	configDir, cacheDir, dataDir := getDirectories()
	logFile := filepath.Join(dataDir, "slowfetch.log")

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	if *showFiles {
		fmt.Println("# slowfetch file locations:")
		fmt.Printf("  Config: %s\n", filepath.Join(configDir, "config.toml"))
		fmt.Printf("  Cache:  %s\n", filepath.Join(cacheDir, "probes.db"))
		fmt.Printf("  Logs:   %s\n", logFile)
		return
	}

	if err := logger.InitLogger(logFile, logLevel(*debugMode), *debugMode); err != nil {
		// No log file is no reason not to fetch.
		fmt.Fprintf(os.Stderr, "slowfetch: logging disabled: %v\n", err)
	}
	defer logger.CloseLogger()

	cfg := loadConfiguration(filepath.Join(configDir, "config.toml"))

	probeCache := openCache(filepath.Join(cacheDir, "probes.db"), *refresh)
	defer probeCache.Close()

	sections := sysinfo.Collect(probeCache)

	// CLI flags override config.
	if *imagePath == "" && cfg.Image && cfg.ImagePath != "" {
		*imagePath = cfg.ImagePath
	}

	termSize := terminalSize()
	logger.Debug("terminal size: %dx%d", termSize.Columns, termSize.Rows)

	var err error
	if *imagePath != "" {
		err = renderImage(termSize, *imagePath, cfg.Colors, sections)
	} else {
		err = renderGlyph(termSize, osArt, cfg, sections)
	}
	if err != nil {
		logger.Error("render failed: %v", err)
		logger.CloseLogger()
		fmt.Fprintf(os.Stderr, "slowfetch: %v\n", err)
		os.Exit(1)
	}
}

func logLevel(debug bool) logger.LogLevel {
	if debug {
		return logger.DEBUG
	}
	return logger.INFO
}

// getDirectories resolves the XDG config, cache and data directories.
func getDirectories() (configDir, cacheDir, dataDir string) {
	home, _ := os.UserHomeDir()

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "slowfetch")
	} else {
		configDir = filepath.Join(home, ".config", "slowfetch")
	}

	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		cacheDir = filepath.Join(xdg, "slowfetch")
	} else {
		cacheDir = filepath.Join(home, ".cache", "slowfetch")
	}

	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		dataDir = filepath.Join(xdg, "slowfetch")
	} else {
		dataDir = filepath.Join(home, ".local", "share", "slowfetch")
	}

	os.MkdirAll(configDir, 0755)
	os.MkdirAll(cacheDir, 0755)
	os.MkdirAll(dataDir, 0755)

	return
}

func loadConfiguration(configPath string) structures.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := config.Save(configPath); err != nil {
				logger.Warn("failed to save default config: %v", err)
			} else {
				logger.Info("created default config at: %s", configPath)
			}
		} else {
			logger.Warn("failed to load config, using defaults: %v", err)
		}
	}
	return cfg
}

func openCache(path string, refresh bool) *cache.Cache {
	c, err := cache.Open(path)
	if err != nil {
		logger.Warn("probe cache unavailable: %v", err)
		return nil
	}
	c.SetForceRefresh(refresh)
	return c
}

// terminalSize samples the terminal once. There is no resize handling:
// the frame is laid out for whatever size we see here.
func terminalSize() layout.TerminalSize {
	if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 && rows > 0 {
		return layout.TerminalSize{Columns: cols, Rows: rows}
	}

	// Piped output or odd environments: try stty, then the classic vars.
	cmd := exec.Command("stty", "size")
	cmd.Stdin = os.Stdin
	if out, err := cmd.Output(); err == nil {
		var rows, cols int
		if _, err := fmt.Sscanf(string(out), "%d %d", &rows, &cols); err == nil && cols > 0 && rows > 0 {
			return layout.TerminalSize{Columns: cols, Rows: rows}
		}
	}

	var cols, rows int
	fmt.Sscanf(os.Getenv("COLUMNS"), "%d", &cols)
	fmt.Sscanf(os.Getenv("LINES"), "%d", &rows)
	if cols > 0 && rows > 0 {
		return layout.TerminalSize{Columns: cols, Rows: rows}
	}

	return layout.TerminalSize{Columns: 80, Rows: 24}
}

// renderImage renders the raster path: decode must succeed and a
// graphics protocol must exist before anything is written, so a failure
// never leaves a partial frame.
func renderImage(termSize layout.TerminalSize, path string, palette structures.Palette, sections []structures.Section) error {
	img, err := art.LoadImage(path)
	if err != nil {
		return err
	}

	proto := timg.Auto()
	if proto == nil {
		return fmt.Errorf("terminal does not support inline images")
	}
	logger.Debug("image protocol: %s", proto.Name())

	plan := layout.Compute(termSize, img, sections)
	return render.New(os.Stdout, palette, proto).Render(plan, img, sections)
}

// renderGlyph picks the largest art variant the terminal can host
// side-by-side, falling back to the smallest variant stacked.
func renderGlyph(termSize layout.TerminalSize, osArt osArtFlag, cfg structures.Config, sections []structures.Section) error {
	candidates := glyphCandidates(osArt, cfg, sections)

	var (
		chosen *art.GlyphArt
		plan   layout.Plan
	)
	for _, g := range candidates {
		plan = layout.Compute(termSize, g, sections)
		chosen = g
		if plan.Mode == layout.ModeWide {
			break
		}
		// Not wide: keep trying smaller variants; the last (smallest)
		// one also serves as the stacked fallback.
	}

	return render.New(os.Stdout, cfg.Colors, nil).Render(plan, chosen, sections)
}

// glyphCandidates resolves which art to try, widest first.
func glyphCandidates(osArt osArtFlag, cfg structures.Config, sections []structures.Section) []*art.GlyphArt {
	if cfg.CustomArt != "" {
		g, err := art.LoadGlyphFile(cfg.CustomArt)
		if err == nil {
			return []*art.GlyphArt{g}
		}
		logger.Warn("custom art unavailable, using default: %v", err)
	}

	setting := cfg.OSArt
	if osArt.set {
		if osArt.name != "" {
			setting = structures.OSArtSetting{Mode: structures.OSArtSpecific, Name: osArt.name}
		} else {
			setting = structures.OSArtSetting{Mode: structures.OSArtAuto}
		}
	}

	if setting.Mode != structures.OSArtDisabled {
		name := setting.Name
		if setting.Mode == structures.OSArtAuto {
			name = detectedOS(sections)
		}
		if full, smol, ok := art.Lookup(name); ok {
			return []*art.GlyphArt{full, smol}
		}
		logger.Info("no art for %q, using default logo", name)
	}

	set := art.Default()
	return []*art.GlyphArt{set.Wide, set.Medium, set.Narrow, set.Smol}
}

// detectedOS pulls the collected OS fact back out of the sections.
func detectedOS(sections []structures.Section) string {
	for _, s := range sections {
		for _, line := range s.Lines {
			if line.Label == "OS" {
				return line.Value
			}
		}
	}
	return ""
}
