package storage

import (
	"context"
	"testing"

	"salesdash/internal/config"
)

func TestNewClientLocal(t *testing.T) {
	cfg := &config.Config{LocalReportsDir: t.TempDir()}

	client, err := NewClient(context.Background(), DeploymentLocal, cfg)
	if err != nil {
		t.Fatalf("NewClient(local) failed: %v", err)
	}
	defer client.Close()

	if _, ok := client.(*LocalClient); !ok {
		t.Errorf("Expected *LocalClient, got %T", client)
	}
}

func TestNewClientUnsupportedMode(t *testing.T) {
	cfg := &config.Config{}

	if _, err := NewClient(context.Background(), DeploymentMode("ftp"), cfg); err == nil {
		t.Error("Expected error for unsupported deployment mode, got nil")
	}
}
