package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("RANDOM_SEED", "7")
	t.Setenv("LOG_LEVEL", "error")
	var out bytes.Buffer
	rootCMD.SetOut(&out)
	rootCMD.SetErr(&out)
	rootCMD.SetArgs(append([]string{"--env", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := rootCMD.Execute()
	return out.String(), err
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "catalog", "ozon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Ozon (ozon)") || !strings.Contains(out, "oz-5") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "Wildberries") {
		t.Errorf("expected only the requested platform:\n%s", out)
	}
	if _, err := run(t, "catalog", "ebay"); err == nil {
		t.Error("expected error for unknown platform")
	}
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, "show", "wb-4", "--window", "week", "--rows", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Dyson Supersonic HD07", "Window: week", "Average price:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if _, err := run(t, "show", "wb-4", "--window", "decade"); err == nil {
		t.Error("expected error for unknown window")
	}
}
