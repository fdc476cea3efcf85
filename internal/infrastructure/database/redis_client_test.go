package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestConnectRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_URL", "redis://"+mr.Addr()+"/2")

	client, err := ConnectRedis(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()

	if client.Options().DB != 2 {
		t.Fatalf("expected db 2, got %d", client.Options().DB)
	}
}

func TestConnectRedis_Errors(t *testing.T) {
	t.Setenv("REDIS_URL", "not-a-url")
	if _, err := ConnectRedis(context.Background()); err == nil {
		t.Fatalf("expected parse error")
	}

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	t.Setenv("REDIS_URL", "redis://"+addr)
	if _, err := ConnectRedis(context.Background()); err == nil {
		t.Fatalf("expected ping error")
	}
}

func TestAddressCacheBackend(t *testing.T) {
	for v, want := range map[string]string{"": CacheBackendDynamoDB, "dynamodb": CacheBackendDynamoDB, " Redis ": CacheBackendRedis} {
		t.Setenv("CEP_CACHE_BACKEND", v)
		if got := AddressCacheBackend(); got != want {
			t.Fatalf("CEP_CACHE_BACKEND=%q: got %s want %s", v, got, want)
		}
	}
}
