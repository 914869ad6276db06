package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockCmdable struct {
	values map[string]string
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{values: map[string]string{}}
}

func (m *mockCmdable) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	m.values[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	value, ok := m.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := m.values[key]; ok {
			delete(m.values, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func TestSetGetDelRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := &Client{store: newMockCmdable()}

	if err := client.Set(ctx, "cart-key", `[{"cake_id":1}]`, time.Hour); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	payload, err := client.Get(ctx, "cart-key")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if payload != `[{"cake_id":1}]` {
		t.Fatalf("unexpected payload %q", payload)
	}

	if err := client.Del(ctx, "cart-key"); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	if _, err := client.Get(ctx, "cart-key"); err != Nil {
		t.Fatalf("expected redis.Nil after delete, got %v", err)
	}
}

func TestCartKeyBuilder(t *testing.T) {
	client := &Client{}
	if got := client.CartKey("sweet-layers-cart", "sess-1"); got != "sweetlayers:cart:sweet-layers-cart:sess-1" {
		t.Fatalf("unexpected cart key %s", got)
	}
	if got := client.CartKey("", "sess-1"); got != "sweetlayers:cart:sess-1" {
		t.Fatalf("empty namespace should be skipped, got %s", got)
	}
}

func TestUninitializedClientErrors(t *testing.T) {
	client := &Client{}
	if err := client.Ping(context.Background()); err == nil {
		t.Fatal("expected error from uninitialized client")
	}
	if _, err := client.Get(context.Background(), "k"); err == nil {
		t.Fatal("expected error from uninitialized client")
	}
}
