// Package sysinfo collects the host facts shown next to the art. Every
// probe degrades to "unknown" rather than failing; a fetch tool that
// errors out over a missing /proc file is useless.
package sysinfo

import (
	"sync"

	"github.com/haryoiro/slowfetch/internal/cache"
	"github.com/haryoiro/slowfetch/internal/structures"
)

const unknown = "unknown"

// Collect runs every probe in parallel and returns the display sections
// in their fixed order. c may be nil (no caching).
func Collect(c *cache.Cache) []structures.Section {
	var (
		osName, kernel, uptime     string
		cpu, gpu, memory, storage  string
		packages, shell, terminal  string
		wm, desktop                string
	)

	// One goroutine per probe, like the rest of the tool: sampling is
	// the slow part, so everything runs at once and joins here.
	probes := []struct {
		dst *string
		fn  func() string
	}{
		{&osName, func() string { return OS(c) }},
		{&kernel, Kernel},
		{&uptime, Uptime},
		{&cpu, func() string { return CPU(c) }},
		{&gpu, func() string { return GPU(c) }},
		{&memory, Memory},
		{&storage, Storage},
		{&packages, Packages},
		{&shell, Shell},
		{&terminal, Terminal},
		{&wm, WM},
		{&desktop, Desktop},
	}

	var wg sync.WaitGroup
	for _, p := range probes {
		wg.Add(1)
		go func(dst *string, fn func() string) {
			defer wg.Done()
			*dst = fn()
		}(p.dst, p.fn)
	}
	wg.Wait()

	return []structures.Section{
		{
			Title: "Core",
			Lines: []structures.InfoLine{
				{Label: "OS", Value: osName},
				{Label: "Kernel", Value: kernel},
				{Label: "Uptime", Value: uptime},
			},
		},
		{
			Title: "Hardware",
			Lines: []structures.InfoLine{
				{Label: "CPU", Value: cpu},
				{Label: "GPU", Value: gpu},
				{Label: "Memory", Value: memory},
				{Label: "Storage", Value: storage},
			},
		},
		{
			Title: "Userspace",
			Lines: []structures.InfoLine{
				{Label: "Packages", Value: packages},
				{Label: "Terminal", Value: terminal},
				{Label: "Shell", Value: shell},
				{Label: "WM", Value: wm},
				{Label: "UI", Value: desktop},
			},
		},
	}
}

// cached wraps a probe with the persistent cache: hit returns directly,
// miss probes fresh and stores the result for the next run.
func cached(c *cache.Cache, key string, probe func() string) string {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := probe()
	if v != unknown {
		_ = c.Put(key, v)
	}
	return v
}
