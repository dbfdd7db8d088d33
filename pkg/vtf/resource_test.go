package vtf

import (
	"errors"
	"testing"
)

func TestScanResources(t *testing.T) {
	f := newConsoleFile(4, 4, nil)
	f.resources = []ResourceEntry{
		{Type: ResourceLowResImage, DataOrOffset: 0x00000100},
		{Type: ResourceImage, DataOrOffset: 0x00012345},
		{Type: ResourceType{'C', 'R', 'C', ResourceFlagNoDataChunk}, DataOrOffset: 0xDEADBEEF},
	}
	data := f.bytes(t)

	h, err := ParseConsoleHeader(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	entries, err := ScanResources(data, h)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(entries) != len(f.resources) {
		t.Fatalf("expected %d entries, got %d", len(f.resources), len(entries))
	}
	for i, want := range f.resources {
		if entries[i] != want {
			t.Errorf("entry %d: expected %+v, got %+v", i, want, entries[i])
		}
	}
	if !entries[2].HasNoDataChunk() || entries[1].HasNoDataChunk() {
		t.Error("no-data-chunk flag misreported")
	}
}

func TestScanResourcesEmpty(t *testing.T) {
	f := newConsoleFile(4, 4, nil)
	f.resources = nil
	data := f.bytes(t)

	h, _ := ParseConsoleHeader(data)
	entries, err := ScanResources(data, h)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestScanResourcesExceedsBuffer(t *testing.T) {
	f := newConsoleFile(4, 4, nil)
	f.numResources = 200 // header claims far more entries than exist
	data := f.bytes(t)

	h, _ := ParseConsoleHeader(data)
	_, err := ScanResources(data, h)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected format error, got %v", err)
	}

	// One byte short of the last entry.
	f = newConsoleFile(4, 4, nil)
	data = f.bytes(t)[:ConsoleHeaderSize+ResourceEntrySize-1]
	h, _ = ParseConsoleHeader(data)
	if _, err := ScanResources(data, h); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected format error for partial entry, got %v", err)
	}
}

func TestResourceTypeString(t *testing.T) {
	tests := []struct {
		typ  ResourceType
		want string
	}{
		{ResourceImage, "image"},
		{ResourceLowResImage, "low-res image"},
		{ResourceSheet, "sheet"},
		{ResourceType{0x30, 0, 0, ResourceFlagNoDataChunk}, "image"},
		{ResourceType{'C', 'R', 'C', 0}, "unknown(435243)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("%x: expected %q, got %q", tt.typ, tt.want, got)
		}
	}
}
