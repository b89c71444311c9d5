package sysinfo

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/haryoiro/slowfetch/internal/cache"
)

// OS returns the distro name from /etc/os-release (cached).
func OS(c *cache.Cache) string {
	return cached(c, cache.KeyOS, osFresh)
}

func osFresh() string {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return "Linux"
	}

	for _, line := range strings.Split(string(data), "\n") {
		if name, ok := strings.CutPrefix(line, "PRETTY_NAME="); ok {
			return strings.Trim(name, `"'`)
		}
	}
	return "Linux"
}

// Kernel returns the running kernel release.
func Kernel() string {
	if line, ok := readFirstLine("/proc/sys/kernel/osrelease"); ok {
		return line
	}
	return unknown
}

// Uptime returns the humanized system uptime ("3h 42m").
func Uptime() string {
	data, err := os.ReadFile("/proc/uptime")
	if err != nil {
		return unknown
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return unknown
	}

	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return unknown
	}

	return FormatUptime(uint64(seconds))
}

func readFirstLine(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), true
	}
	return "", false
}
