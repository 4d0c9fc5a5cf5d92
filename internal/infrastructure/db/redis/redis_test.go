package redis

import (
	"context"
	"testing"
	"time"
)

func TestConnectUnreachable(t *testing.T) {
	_, err := Connect(context.Background(), Config{
		Addr:           "127.0.0.1:1",
		ConnectTimeout: 500 * time.Millisecond,
	})
	if err == nil {
		t.Fatalf("expected connect to an unreachable address to fail")
	}
}
