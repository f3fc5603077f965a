package main

import (
	"testing"

	"grindpad.dev/grindpad/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"dataFile": "settings.txt",
			"listen":   ":8080",
			"trace":    "true",
		},
		Args: []string{"--trace"},
	}
	payload := startupTracePayload(cfg)
	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload, got %T", payload["flags"])
	}
	for key, want := range cfg.Flags {
		if got := flags[key]; got != want {
			t.Fatalf("expected flag %q = %q, got %v", key, want, got)
		}
	}
	argv, ok := payload["argv"].([]string)
	if !ok || len(argv) != 1 || argv[0] != "--trace" {
		t.Fatalf("expected argv preserved, got %v", payload["argv"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details, got %T", payload["tty"])
	}
}
