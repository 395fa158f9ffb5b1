// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package egl

import (
	"errors"
	"testing"
)

// stubDriver satisfies Driver for registry tests; only Name is callable.
type stubDriver struct {
	Driver
	name string
}

func (s stubDriver) Name() string { return s.name }

func stubFactory(name string) DriverFactory {
	return func() (Driver, error) { return stubDriver{name: name}, nil }
}

// TestRegistryRegister tests driver registration.
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, stubFactory("test"), nil)

	entry, ok := r.Get("test")
	if !ok {
		t.Fatal("registered driver not found")
	}
	if entry.Name != "test" {
		t.Errorf("Name = %s, want test", entry.Name)
	}
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50", entry.Priority)
	}
	if !entry.Available() {
		t.Error("driver should be available (nil Available func)")
	}
}

// TestRegistryUnregister tests driver removal.
func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("temp", 10, stubFactory("temp"), nil)
	r.Unregister("temp")

	if _, ok := r.Get("temp"); ok {
		t.Error("driver should not exist after unregister")
	}
}

// TestRegistryList tests priority ordering with name tie-break.
func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, stubFactory("low"), nil)
	r.Register("high", 100, stubFactory("high"), nil)
	r.Register("b-mid", 50, stubFactory("b-mid"), nil)
	r.Register("a-mid", 50, stubFactory("a-mid"), nil)

	got := r.List()
	want := []string{"high", "a-mid", "b-mid", "low"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

// TestRegistryAvailable tests filtering by availability.
func TestRegistryAvailable(t *testing.T) {
	r := NewRegistry()
	r.Register("yes", 10, stubFactory("yes"), func() bool { return true })
	r.Register("no", 100, stubFactory("no"), func() bool { return false })

	got := r.Available()
	if len(got) != 1 || got[0] != "yes" {
		t.Errorf("Available() = %v, want [yes]", got)
	}
}

// TestRegistryOpen tests opening drivers by name.
func TestRegistryOpen(t *testing.T) {
	r := NewRegistry()
	r.Register("ok", 10, stubFactory("ok"), nil)
	r.Register("off", 10, stubFactory("off"), func() bool { return false })

	d, err := r.Open("ok")
	if err != nil {
		t.Fatalf("Open(ok) error = %v", err)
	}
	if d.Name() != "ok" {
		t.Errorf("Name() = %s, want ok", d.Name())
	}

	_, err = r.Open("missing")
	var notFound *DriverNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Open(missing) error = %v, want *DriverNotFoundError", err)
	}

	_, err = r.Open("off")
	var unavailable *DriverUnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("Open(off) error = %v, want *DriverUnavailableError", err)
	}
}

// TestRegistryOpenDefault tests fallback down the priority list.
func TestRegistryOpenDefault(t *testing.T) {
	r := NewRegistry()
	if _, err := r.OpenDefault(); !errors.Is(err, ErrNoDriverAvailable) {
		t.Errorf("empty OpenDefault() error = %v, want ErrNoDriverAvailable", err)
	}

	broken := errors.New("no libEGL")
	r.Register("platform", 100, func() (Driver, error) { return nil, broken }, nil)
	r.Register("fallback", 10, stubFactory("fallback"), nil)

	d, err := r.OpenDefault()
	if err != nil {
		t.Fatalf("OpenDefault() error = %v", err)
	}
	if d.Name() != "fallback" {
		t.Errorf("OpenDefault() = %s, want fallback", d.Name())
	}

	r.Unregister("fallback")
	if _, err := r.OpenDefault(); !errors.Is(err, broken) {
		t.Errorf("OpenDefault() error = %v, want %v", err, broken)
	}
}
