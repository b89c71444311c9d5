package sysinfo

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/haryoiro/slowfetch/internal/cache"
)

// CPU returns the CPU model with its boost clock (cached).
func CPU(c *cache.Cache) string {
	return cached(c, cache.KeyCPU, cpuFresh)
}

func cpuFresh() string {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return unknown
	}
	defer f.Close()

	model := ""
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "model name") {
			continue
		}
		_, name, ok := strings.Cut(line, ":")
		if !ok {
			break
		}

		// Drop the integrated-GPU suffix and marketing filler, e.g.
		// "AMD Ryzen 7 5800X 8-Core Processor with Radeon Graphics".
		words := strings.Fields(name)
		for i, w := range words {
			if strings.EqualFold(w, "with") || strings.EqualFold(w, "w/") {
				words = words[:i]
				break
			}
		}
		kept := words[:0]
		for _, w := range words {
			if strings.HasSuffix(w, "-Core") || w == "Processor" {
				continue
			}
			kept = append(kept, w)
		}
		model = strings.Join(kept, " ")
		break
	}

	if model == "" {
		return unknown
	}

	if line, ok := readFirstLine("/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq"); ok {
		if khz, err := strconv.ParseUint(line, 10, 64); err == nil {
			model += fmt.Sprintf(" @ %.2fGHz", float64(khz)/1_000_000.0)
		}
	}

	return model
}

// Memory returns a usage bar plus used/total gigabytes.
func Memory() string {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return unknown
	}
	defer f.Close()

	var total, available uint64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if v, ok := meminfoValue(line, "MemTotal:"); ok {
			total = v
		} else if v, ok := meminfoValue(line, "MemAvailable:"); ok {
			available = v
		}
		if total > 0 && available > 0 {
			break
		}
	}

	if total == 0 {
		return unknown
	}

	used := total - available
	percent := float64(used) / float64(total) * 100

	// meminfo reports kB; display decimal GB like the rest of the world
	return fmt.Sprintf("%s %.0fGB/%.0fGB",
		UsageBar(percent), float64(used)/1_000_000, float64(total)/1_000_000)
}

func meminfoValue(line, prefix string) (uint64, bool) {
	if !strings.HasPrefix(line, prefix) {
		return 0, false
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, false
	}
	v, err := strconv.ParseUint(fields[1], 10, 64)
	return v, err == nil
}

// GPU returns the GPU model (cached; the probe shells out).
func GPU(c *cache.Cache) string {
	return cached(c, cache.KeyGPU, gpuFresh)
}

func gpuFresh() string {
	// lspci is the reliable road; sysfs only has PCI IDs.
	out, err := exec.Command("lspci", "-mm").Output()
	if err != nil {
		return unknown
	}

	scanner := bufio.NewScanner(strings.NewReader(string(out)))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "VGA") && !strings.Contains(line, "3D controller") &&
			!strings.Contains(line, "Display controller") {
			continue
		}
		// -mm quotes fields: slot "class" "vendor" "device" ...
		fields := strings.Split(line, `"`)
		if len(fields) >= 6 {
			return strings.TrimSpace(fields[3] + " " + fields[5])
		}
	}

	return unknown
}

// Storage sums usage over real disks listed in /proc/mounts.
func Storage() string {
	f, err := os.Open("/proc/mounts")
	if err != nil {
		return unknown
	}
	defer f.Close()

	var totalBytes, usedBytes uint64
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		device, mount := fields[0], fields[1]

		if !strings.HasPrefix(device, "/dev/") || strings.Contains(device, "/loop") || seen[device] {
			continue
		}
		seen[device] = true

		var st unix.Statfs_t
		if err := unix.Statfs(mount, &st); err != nil {
			continue
		}

		bsize := uint64(st.Bsize)
		totalBytes += st.Blocks * bsize
		usedBytes += (st.Blocks - st.Bfree) * bsize
	}

	if totalBytes == 0 {
		return unknown
	}

	percent := float64(usedBytes) / float64(totalBytes) * 100
	return fmt.Sprintf("%s %.0fGB/%.0fGB",
		UsageBar(percent), float64(usedBytes)/1e9, float64(totalBytes)/1e9)
}
