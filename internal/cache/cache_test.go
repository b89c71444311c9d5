package cache

import (
	"path/filepath"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "probes.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestPutGet(t *testing.T) {
	c := openTestCache(t)

	if _, ok := c.Get(KeyCPU); ok {
		t.Fatal("Get hit on an empty cache")
	}

	if err := c.Put(KeyCPU, "AMD Ryzen 7 5800X"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok := c.Get(KeyCPU)
	if !ok || got != "AMD Ryzen 7 5800X" {
		t.Errorf("Get = (%q, %v), want stored value", got, ok)
	}
}

func TestPutOverwrites(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put(KeyOS, "Arch Linux"); err != nil {
		t.Fatal(err)
	}
	if err := c.Put(KeyOS, "CachyOS Linux"); err != nil {
		t.Fatal(err)
	}

	got, ok := c.Get(KeyOS)
	if !ok || got != "CachyOS Linux" {
		t.Errorf("Get = (%q, %v), want the updated value", got, ok)
	}
}

func TestForceRefreshMissesEverything(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put(KeyGPU, "NVIDIA RTX 4070"); err != nil {
		t.Fatal(err)
	}

	c.SetForceRefresh(true)
	if _, ok := c.Get(KeyGPU); ok {
		t.Error("Get hit while refresh is forced")
	}

	// The value survives; only reads are bypassed.
	c.SetForceRefresh(false)
	if got, ok := c.Get(KeyGPU); !ok || got != "NVIDIA RTX 4070" {
		t.Errorf("Get = (%q, %v) after refresh cleared", got, ok)
	}
}

func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probes.db")

	c, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Put(KeyOS, "Fedora Linux"); err != nil {
		t.Fatal(err)
	}
	c.Close()

	c, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if got, ok := c.Get(KeyOS); !ok || got != "Fedora Linux" {
		t.Errorf("Get after reopen = (%q, %v)", got, ok)
	}
}

func TestNilCacheIsInert(t *testing.T) {
	var c *Cache

	if _, ok := c.Get(KeyOS); ok {
		t.Error("nil cache reported a hit")
	}
	if err := c.Put(KeyOS, "x"); err != nil {
		t.Errorf("nil Put: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}
