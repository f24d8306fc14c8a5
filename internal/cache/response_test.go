// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, responseKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestNilResponseCache(t *testing.T) {
	var rc *ResponseCache
	ctx := context.Background()

	// Every operation on a nil cache is a safe no-op.
	if _, ok := rc.Get(ctx, "settings"); ok {
		t.Error("nil cache should always miss")
	}
	rc.Set(ctx, "settings", []byte(`{}`))
	rc.Invalidate(ctx, "settings")
}

func TestResponseCacheRoundTrip(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResponseCache(client, DefaultResponseTTL)
	ctx := context.Background()

	if _, ok := rc.Get(ctx, "faqs:general"); ok {
		t.Fatal("expected miss before Set")
	}

	body := []byte(`{"success":true,"data":[]}`)
	rc.Set(ctx, "faqs:general", body)

	got, ok := rc.Get(ctx, "faqs:general")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(got) != string(body) {
		t.Errorf("body: got %q, want %q", got, body)
	}
}

func TestResponseCacheInvalidate(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResponseCache(client, DefaultResponseTTL)
	ctx := context.Background()

	rc.Set(ctx, "faqs:general", []byte(`[]`))
	rc.Set(ctx, "faqs:licencing", []byte(`[]`))
	rc.Set(ctx, "portals:", []byte(`[]`))

	rc.Invalidate(ctx, "faqs")

	if _, ok := rc.Get(ctx, "faqs:general"); ok {
		t.Error("faqs:general should be invalidated")
	}
	if _, ok := rc.Get(ctx, "faqs:licencing"); ok {
		t.Error("faqs:licencing should be invalidated")
	}
	if _, ok := rc.Get(ctx, "portals:"); !ok {
		t.Error("portals entry should survive a faqs invalidation")
	}
}
