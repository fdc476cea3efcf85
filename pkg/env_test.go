package pkg

import (
	"testing"
	"time"
)

func TestGetenvDefault(t *testing.T) {
	t.Setenv("CEP_CACHE_TABLE", "")
	if got := GetenvDefault("CEP_CACHE_TABLE", "cep_address_cache"); got != "cep_address_cache" {
		t.Fatalf("expected default, got %q", got)
	}
	t.Setenv("CEP_CACHE_TABLE", "addresses")
	if got := GetenvDefault("CEP_CACHE_TABLE", "cep_address_cache"); got != "addresses" {
		t.Fatalf("expected env value, got %q", got)
	}
}

func TestDurationFromEnv(t *testing.T) {
	t.Setenv("VIACEP_TIMEOUT", "")
	if d := DurationFromEnv("VIACEP_TIMEOUT", 3*time.Second); d != 3*time.Second {
		t.Fatalf("expected default, got %s", d)
	}
	t.Setenv("VIACEP_TIMEOUT", "250ms")
	if d := DurationFromEnv("VIACEP_TIMEOUT", 3*time.Second); d != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", d)
	}
	t.Setenv("VIACEP_TIMEOUT", "soon")
	if d := DurationFromEnv("VIACEP_TIMEOUT", 3*time.Second); d != 3*time.Second {
		t.Fatalf("expected fallback, got %s", d)
	}
	t.Setenv("VIACEP_TIMEOUT", "-1s")
	if d := DurationFromEnv("VIACEP_TIMEOUT", 3*time.Second); d != 3*time.Second {
		t.Fatalf("expected fallback for negative, got %s", d)
	}
}
