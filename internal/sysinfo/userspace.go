package sysinfo

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Shell returns the login shell with its version where obtainable.
func Shell() string {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		return unknown
	}
	name := filepath.Base(shellPath)

	out, err := exec.Command(shellPath, "--version").Output()
	if err != nil {
		return capitalize(name)
	}

	firstLine, _, _ := strings.Cut(string(out), "\n")
	for _, word := range strings.Fields(firstLine) {
		if word == "" || word[0] < '0' || word[0] > '9' {
			continue
		}
		// "5.2.26(1)-release" -> "5.2.26"
		if i := strings.IndexAny(word, "(-"); i >= 0 {
			word = word[:i]
		}
		return fmt.Sprintf("%s %s", capitalize(name), word)
	}

	return capitalize(name)
}

// Packages counts installed packages per detected package manager.
func Packages() string {
	var counts []string

	if n := countDirEntries("/var/lib/pacman/local"); n > 0 {
		counts = append(counts, fmt.Sprintf("%d (pacman)", n))
	}

	if data, err := os.ReadFile("/var/lib/dpkg/status"); err == nil {
		n := strings.Count(string(data), "\nStatus: install ok installed\n")
		if n > 0 {
			counts = append(counts, fmt.Sprintf("%d (dpkg)", n))
		}
	}

	if fileExists("/var/lib/rpm/rpmdb.sqlite") || fileExists("/var/lib/rpm/Packages") {
		if out, err := exec.Command("rpm", "-qa").Output(); err == nil {
			if n := strings.Count(string(out), "\n"); n > 0 {
				counts = append(counts, fmt.Sprintf("%d (rpm)", n))
			}
		}
	}

	if n := countDirEntries("/var/lib/flatpak/app"); n > 0 {
		counts = append(counts, fmt.Sprintf("%d (flatpak)", n))
	}

	if n := countDirEntries("/var/db/xbps"); n > 0 {
		counts = append(counts, fmt.Sprintf("%d (xbps)", n))
	}

	if len(counts) == 0 {
		return unknown
	}
	return strings.Join(counts, " | ")
}

// Terminal identifies the terminal emulator from its env fingerprints.
func Terminal() string {
	switch {
	case os.Getenv("KITTY_PID") != "":
		return "Kitty"
	case os.Getenv("KONSOLE_VERSION") != "":
		return "Konsole"
	case os.Getenv("GNOME_TERMINAL_SCREEN") != "":
		return "Gnome Terminal"
	}

	term := os.Getenv("TERM_PROGRAM")
	if term == "" {
		term = os.Getenv("TERM")
	}
	if term == "" {
		return unknown
	}

	// xterm-256color -> xterm
	term, _, _ = strings.Cut(term, "-256color")
	term, _, _ = strings.Cut(term, "-color")
	return capitalize(term)
}

// wmNames maps XDG_CURRENT_DESKTOP values to their window managers.
var wmNames = map[string]string{
	"hyprland": "Hyprland",
	"sway":     "Sway",
	"kde":      "KWin",
	"plasma":   "KWin",
	"gnome":    "Mutter",
	"xfce":     "Xfwm4",
	"i3":       "i3",
	"bspwm":    "bspwm",
	"awesome":  "Awesome",
	"qtile":    "Qtile",
	"niri":     "Niri",
}

// WM returns the window manager.
func WM() string {
	if desktop := os.Getenv("XDG_CURRENT_DESKTOP"); desktop != "" {
		if wm, ok := wmNames[strings.ToLower(desktop)]; ok {
			return wm
		}
		return desktop
	}

	if session := os.Getenv("DESKTOP_SESSION"); session != "" {
		return capitalize(session)
	}

	return unknown
}

// Desktop returns the desktop shell / UI layer.
func Desktop() string {
	switch strings.ToLower(os.Getenv("XDG_CURRENT_DESKTOP")) {
	case "kde", "plasma":
		return "Plasma Shell"
	case "gnome":
		return "Gnome Shell"
	}

	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return "Wayland"
	}
	if os.Getenv("DISPLAY") != "" {
		return "X11"
	}

	return unknown
}

func countDirEntries(path string) int {
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}
	return len(entries)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
