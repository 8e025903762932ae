package db_test

import (
	"context"
	"testing"
	"time"

	"ep-server/db"
)

// Test the Set and Get methods against the RedisClient interface.
func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient(context.Background())},
		// Replace with a real Redis client configuration for integration testing
		// {"CacheRedisClient", db.NewCacheRedisClient(context.Background(), realRedisClient)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key := "test-key"
			value := "test-value"

			// Act
			err := test.client.Set(key, value)
			if err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			retrieved, err := test.client.Get(key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}

			// Assert
			if retrieved != value {
				t.Errorf("Expected %s, got %s", value, retrieved)
			}
		})
	}
}

func TestMockRedisClient_GetMissingKey(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	if _, err := client.Get("missing"); err == nil {
		t.Error("Expected error for missing key, got nil")
	}
}

func TestMockRedisClient_SetWithTTL(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	if err := client.SetWithTTL("ttl-key", "value", time.Minute); err != nil {
		t.Fatalf("SetWithTTL failed: %v", err)
	}
	got, err := client.Get("ttl-key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "value" {
		t.Errorf("Expected 'value', got %s", got)
	}
}

func TestMockRedisClient_KeysAndDel(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	_ = client.Set("prefix:a", "1")
	_ = client.Set("prefix:b", "2")
	_ = client.Set("other:c", "3")

	keys, err := client.Keys("prefix:*")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("Expected 2 matching keys, got %d", len(keys))
	}

	if err := client.Del("prefix:a"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if _, err := client.Get("prefix:a"); err == nil {
		t.Error("Expected error after delete, got nil")
	}
}
