package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"logbay/internal/services"
)

func TestLoadParsesDescriptors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "services.json")
	payload := `[
		{"type": {"artifact": "metadata"}, "disabled": false},
		{"type": {"artifact": "ingest"}, "disabled": true}
	]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write services file: %v", err)
	}

	descriptors, err := services.Load(path)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if len(descriptors) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(descriptors))
	}
	if descriptors[0].Type.Artifact != "metadata" || descriptors[0].Disabled {
		t.Fatalf("unexpected first descriptor: %+v", descriptors[0])
	}
	if !descriptors[1].Disabled {
		t.Fatal("expected second descriptor to be disabled")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := services.Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing services file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "services.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write services file: %v", err)
	}
	if _, err := services.Load(path); err == nil {
		t.Fatal("expected error for malformed services file")
	}
}

func TestEnabledFiltersDisabled(t *testing.T) {
	descriptors := []services.Descriptor{
		{Type: services.Type{Artifact: "metadata"}},
		{Type: services.Type{Artifact: "ingest"}, Disabled: true},
		{Type: services.Type{Artifact: "search"}},
	}
	enabled := services.Enabled(descriptors)
	if len(enabled) != 2 {
		t.Fatalf("expected 2 enabled descriptors, got %d", len(enabled))
	}
	if enabled[0].Type.Artifact != "metadata" || enabled[1].Type.Artifact != "search" {
		t.Fatalf("unexpected enabled set: %+v", enabled)
	}
}
