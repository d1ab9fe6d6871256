package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/sales-dashboard/backend/config"
)

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "reachable server", url: "redis://" + server.Addr() + "/0"},
		{name: "malformed url", url: "http://" + server.Addr(), wantErr: true},
		{name: "nothing listening", url: "redis://127.0.0.1:1/0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewRedisClient(context.Background(), &config.RedisConfig{URL: tt.url})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_ = client.Close()
		})
	}
}
